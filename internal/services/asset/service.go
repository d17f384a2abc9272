package asset

import (
	"context"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/protocol/envelope"
)

// Service reads campaign assets for established sessions.
type Service struct {
	exec   *platform.Executor
	routes platform.Routes
}

// New constructs an asset Service.
func New(exec *platform.Executor, routes platform.Routes) *Service {
	return &Service{exec: exec, routes: routes}
}

// ListAssets returns the campaign's assets in server order.
func (s *Service) ListAssets(
	ctx context.Context,
	session *domain.Session,
) envelope.Many[domain.Asset] {
	if !session.Valid() {
		return envelope.FailureMany[domain.Asset](envelope.MsgNoSession)
	}
	return platform.DoMany[domain.Asset](ctx, s.exec, platform.Call{
		URL:   platform.Expand(s.routes.Assets, session.GameID, session.CampaignID),
		Token: session.PersonalToken,
	})
}

// FetchContent downloads the bytes of asset id.
func (s *Service) FetchContent(
	ctx context.Context,
	session *domain.Session,
	id domain.AssetID,
) envelope.Envelope[domain.AssetData] {
	if !session.Valid() {
		return envelope.Failure[domain.AssetData](envelope.MsgNoSession)
	}
	return s.exec.Fetch(ctx, platform.Call{
		URL:   platform.ExpandAsset(s.routes.AssetContent, id),
		Token: session.PersonalToken,
	})
}

var _ domain.AssetService = (*Service)(nil)
