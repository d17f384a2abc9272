// Package player registers new players for the configured game.
package player

import (
	"context"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/protocol/envelope"
)

// Service registers players. It needs no session.
type Service struct {
	exec     *platform.Executor
	routes   platform.Routes
	appToken string
}

func New(exec *platform.Executor, routes platform.Routes, appToken string) *Service {
	return &Service{exec: exec, routes: routes, appToken: appToken}
}

// RegisterPlayer posts req with the application token filled in. The
// content is true only when the server returned a positive player id; a
// zero or missing id is a refused registration, not a malformed reply.
func (s *Service) RegisterPlayer(
	ctx context.Context,
	req domain.RegisterRequest,
) envelope.Envelope[bool] {
	req.GameToken = s.appToken
	env := platform.Do[registration](ctx, s.exec, platform.Call{
		URL:     s.routes.Register,
		Payload: req,
	})
	if !env.OK() {
		return envelope.Forward[bool](env)
	}
	return envelope.Success(env.Content.ID > 0)
}

// registration decodes the register reply. Unlike domain.Player it accepts
// an absent id so the outcome can be reported through the content.
type registration domain.Player

func (registration) Check() bool { return true }

var _ domain.PlayerService = (*Service)(nil)
