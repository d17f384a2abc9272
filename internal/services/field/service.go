package field

import (
	"context"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/protocol/envelope"
)

// Service sets user-defined field values.
type Service struct {
	exec   *platform.Executor
	routes platform.Routes
}

// New constructs a field Service.
func New(exec *platform.Executor, routes platform.Routes) *Service {
	return &Service{exec: exec, routes: routes}
}

// SetField posts value for the field called name with type tag fieldType.
// Value may be any JSON-encodable scalar; the server stores it as text.
func (s *Service) SetField(
	ctx context.Context,
	session *domain.Session,
	name string,
	value any,
	fieldType domain.FieldType,
) envelope.Many[domain.FieldValue] {
	if !session.Valid() {
		return envelope.FailureMany[domain.FieldValue](envelope.MsgNoSession)
	}
	records := platform.DoMany[domain.FieldValueRecord](ctx, s.exec, platform.Call{
		URL: platform.Expand(s.routes.CustomFields, session.GameID, session.CampaignID),
		Payload: domain.FieldValueRequest{
			Name:   name,
			Value:  value,
			TypeID: fieldType,
		},
		Token: session.PersonalToken,
	})
	return envelope.Map(records, domain.FieldValueRecord.Flatten)
}

var _ domain.FieldService = (*Service)(nil)
