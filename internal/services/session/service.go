package session

import (
	"context"
	"log/slog"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/protocol/envelope"
)

// Service performs the authentication handshake and builds sessions.
//
// A session ties the player's personal token to one game and campaign.
// This service handles:
//   - Exchanging phone and password for a personal token.
//   - Identifying the game behind the configured application token.
//   - Reading the player's activity to learn their id and current status.
type Service struct {
	exec     *platform.Executor
	routes   platform.Routes
	appToken string
	log      *slog.Logger
}

// New constructs a Session Service for the game identified by appToken.
func New(
	exec *platform.Executor,
	routes platform.Routes,
	appToken string,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		exec:     exec,
		routes:   routes,
		appToken: appToken,
		log:      log,
	}
}

// BuildSession authenticates the player and returns the established session.
func (s *Service) BuildSession(
	ctx context.Context,
	phone string,
	password string,
) envelope.Envelope[domain.Session] {
	env, _ := s.Handshake(ctx, phone, password)
	return env
}

// Handshake runs the handshake and also reports the state it ended in.
//
// Steps:
//  1. POST phone, password and application token to the auth endpoint and
//     record the issued personal token on the executor.
//  2. POST the application token to the identify endpoint to learn the game
//     and campaign ids.
//  3. GET the activity for that game and campaign to learn the player id and
//     current status.
//
// Any failing step moves to Failed and its envelope error is returned as-is.
func (s *Service) Handshake(
	ctx context.Context,
	phone string,
	password string,
) (envelope.Envelope[domain.Session], State) {
	state := Unauthenticated

	// Exchange credentials for a personal token.
	auth := platform.Do[domain.TokenPayload](ctx, s.exec, platform.Call{
		URL: s.routes.Auth,
		Payload: domain.AuthRequest{
			GameToken: s.appToken,
			Phone:     phone,
			Password:  password,
		},
	})
	if !auth.OK() {
		return s.fail(state, auth.Error), Failed
	}
	token := auth.Content.Token
	s.exec.SetToken(token)
	state = s.advance(state, TokenIssued)

	// Resolve the game and campaign behind our application token.
	game := platform.Do[domain.GameDetail](ctx, s.exec, platform.Call{
		URL:     s.routes.Identify,
		Payload: domain.GameTokenPayload{GameToken: s.appToken},
		Token:   token,
	})
	if !game.OK() {
		return s.fail(state, game.Error), Failed
	}
	state = s.advance(state, GameIdentified)

	// Read the player's activity within that campaign.
	activity := platform.Do[domain.ActivityDetail](ctx, s.exec, platform.Call{
		URL:   platform.Expand(s.routes.Activity, game.Content.ID, game.Content.Campaign),
		Token: token,
	})
	if !activity.OK() {
		return s.fail(state, activity.Error), Failed
	}
	state = s.advance(state, Established)

	session := domain.Session{
		AppToken:      s.appToken,
		PersonalToken: token,
		GameID:        game.Content.ID,
		CampaignID:    game.Content.Campaign,
		Player:        activity.Content.Player,
		Status:        activity.Content.Status,
	}
	s.log.Info("play session established",
		"game_id", session.GameID, "campaign_id", session.CampaignID, "player", session.Player)
	return envelope.Success(session), state
}

func (s *Service) advance(from, to State) State {
	s.log.Debug("handshake transition", "from", from, "to", to)
	return to
}

func (s *Service) fail(at State, msg string) envelope.Envelope[domain.Session] {
	s.log.Info("handshake failed", "state", at, "error", msg)
	return envelope.Failure[domain.Session](msg)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
