package activity

import (
	"context"
	"log/slog"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/protocol/envelope"
)

// Service reads and writes activity status for established sessions.
type Service struct {
	exec   *platform.Executor
	routes platform.Routes
	log    *slog.Logger
}

// New constructs an activity Service.
func New(exec *platform.Executor, routes platform.Routes, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{exec: exec, routes: routes, log: log}
}

// FetchStatus reads the player's activity and stores the returned status on
// session.
func (s *Service) FetchStatus(
	ctx context.Context,
	session *domain.Session,
) envelope.Envelope[domain.ActivityDetail] {
	if !session.Valid() {
		return envelope.Failure[domain.ActivityDetail](envelope.MsgNoSession)
	}
	env := platform.Do[domain.ActivityDetail](ctx, s.exec, platform.Call{
		URL:   s.url(session),
		Token: session.PersonalToken,
	})
	if env.OK() {
		session.Status = env.Content.Status
	}
	return env
}

// UpdateStatus asks the server to set status. The envelope content reports
// whether the server applied exactly the requested status; session.Status
// takes the server's value either way.
func (s *Service) UpdateStatus(
	ctx context.Context,
	session *domain.Session,
	status domain.ActivityStatus,
) envelope.Envelope[bool] {
	if !session.Valid() {
		return envelope.Failure[bool](envelope.MsgNoSession)
	}
	env := platform.Do[domain.ActivityDetail](ctx, s.exec, platform.Call{
		URL: s.url(session),
		Payload: domain.ActivityDetail{
			Game:     session.GameID,
			Player:   session.Player,
			Status:   status,
			Campaign: session.CampaignID,
		},
		Token: session.PersonalToken,
	})
	if !env.OK() {
		return envelope.Forward[bool](env)
	}

	session.Status = env.Content.Status
	if env.Content.Status != status {
		s.log.Info("server applied a different status",
			"requested", status, "applied", env.Content.Status)
	}
	return envelope.Success(env.Content.Status == status)
}

func (s *Service) url(session *domain.Session) string {
	return platform.Expand(s.routes.Activity, session.GameID, session.CampaignID)
}

var _ domain.ActivityService = (*Service)(nil)
