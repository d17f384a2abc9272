package app

import (
	"context"
	"fmt"

	"gamiclient/internal/domain"
	"gamiclient/internal/protocol/envelope"
)

// App holds the current play session on top of the wired services.
type App struct {
	*Wire
	session *domain.Session
}

func New(w *Wire) *App {
	return &App{Wire: w}
}

// Session returns the current session, or nil before Login or Resume.
func (a *App) Session() *domain.Session { return a.session }

// Login runs the handshake and, when passphrase is set, stores the session.
// The returned error only reports a storage failure.
func (a *App) Login(ctx context.Context, phone, password, passphrase string) (envelope.Envelope[domain.Session], error) {
	env := a.Sessions.BuildSession(ctx, phone, password)
	if !env.OK() {
		return env, nil
	}
	s := env.Content
	a.session = &s
	a.Executor.SetToken(s.PersonalToken)
	if passphrase == "" {
		return env, nil
	}
	if err := a.Store.SaveSession(passphrase, s); err != nil {
		return env, fmt.Errorf("store session: %w", err)
	}
	return env, nil
}

// Resume loads a previously stored session. It reports false when none
// was stored.
func (a *App) Resume(passphrase string) (bool, error) {
	s, ok, err := a.Store.LoadSession(passphrase)
	if err != nil || !ok {
		return false, err
	}
	if !s.Valid() {
		return false, fmt.Errorf("stored session has no player")
	}
	a.session = &s
	a.Executor.SetToken(s.PersonalToken)
	return true, nil
}

// Persist writes the current session, e.g. after its status changed.
func (a *App) Persist(passphrase string) error {
	if a.session == nil || passphrase == "" {
		return nil
	}
	return a.Store.SaveSession(passphrase, *a.session)
}

// Logout forgets the session in memory and on disk.
func (a *App) Logout() error {
	a.session = nil
	a.Executor.SetToken("")
	return a.Store.DeleteSession()
}

// FetchStatus reads the activity status of the current session.
func (a *App) FetchStatus(ctx context.Context) envelope.Envelope[domain.ActivityDetail] {
	return a.Activity.FetchStatus(ctx, a.session)
}

// SetCompletionStatus updates the activity status of the current session.
func (a *App) SetCompletionStatus(ctx context.Context, status domain.ActivityStatus) envelope.Envelope[bool] {
	return a.Activity.UpdateStatus(ctx, a.session, status)
}

// ListAssets lists the assets of the current session's campaign.
func (a *App) ListAssets(ctx context.Context) envelope.Many[domain.Asset] {
	return a.Assets.ListAssets(ctx, a.session)
}

// FetchAsset downloads one asset.
func (a *App) FetchAsset(ctx context.Context, id domain.AssetID) envelope.Envelope[domain.AssetData] {
	return a.Assets.FetchContent(ctx, a.session, id)
}

// SetField sets a user-defined field on the current session's player.
func (a *App) SetField(ctx context.Context, name string, value any, fieldType domain.FieldType) envelope.Many[domain.FieldValue] {
	return a.Fields.SetField(ctx, a.session, name, value, fieldType)
}

// RegisterPlayer registers a new player for the configured game.
func (a *App) RegisterPlayer(ctx context.Context, req domain.RegisterRequest) envelope.Envelope[bool] {
	return a.Players.RegisterPlayer(ctx, req)
}
