package app_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamiclient/internal/app"
	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/platform/platformtest"
	"gamiclient/internal/protocol/envelope"
)

var routes = platform.NewRoutes(platformtest.Host)

func newApp(t *testing.T, tr *platformtest.Transport) *app.App {
	t.Helper()
	cfg := app.Default()
	cfg.Home = t.TempDir()
	cfg.Host = platformtest.Host
	cfg.GameToken = "game-token"

	w, err := app.NewWire(cfg, tr, nil)
	require.NoError(t, err)
	return app.New(w)
}

func platformTransport() *platformtest.Transport {
	return platformtest.New().
		JSON(http.MethodPost, routes.Auth, `{"token":"abc"}`).
		JSON(http.MethodPost, routes.Identify, `{"id":7,"campaign":3}`).
		JSON(http.MethodGet, platform.Expand(routes.Activity, 7, 3), `{"game":7,"player":42,"status":10,"campaign":3}`).
		JSON(http.MethodPost, platform.Expand(routes.Activity, 7, 3), `{"game":7,"player":42,"status":30,"campaign":3}`)
}

func TestApp_RefusesCallsWithoutSession(t *testing.T) {
	tr := platformTransport()
	a := newApp(t, tr)

	assert.Nil(t, a.Session())
	assert.Equal(t, envelope.MsgNoSession, a.FetchStatus(context.Background()).Error)
	assert.Equal(t, envelope.MsgNoSession, a.ListAssets(context.Background()).Error)
	assert.Empty(t, tr.Requests())
}

func TestApp_LoginPersistResume(t *testing.T) {
	tr := platformTransport()
	a := newApp(t, tr)
	ctx := context.Background()

	env, err := a.Login(ctx, "555", "pw", "pass")
	require.NoError(t, err)
	require.True(t, env.OK(), env.Error)
	require.NotNil(t, a.Session())

	updated := a.SetCompletionStatus(ctx, domain.StatusCompleted)
	require.True(t, updated.OK())
	assert.True(t, updated.Content)
	require.NoError(t, a.Persist("pass"))

	// A fresh process resumes the stored session, status included.
	b := newAppAt(t, tr, a)
	ok, err := b.Resume("pass")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, b.Session().Status)
	assert.Equal(t, "abc", b.Executor.Token())

	require.NoError(t, b.Logout())
	ok, err = b.Resume("pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApp_LoginFailureKeepsNoSession(t *testing.T) {
	tr := platformTransport().JSON(http.MethodPost, routes.Auth, `{"token":""}`)
	a := newApp(t, tr)

	env, err := a.Login(context.Background(), "555", "pw", "pass")

	require.NoError(t, err)
	assert.Equal(t, envelope.MsgFormat, env.Error)
	assert.Nil(t, a.Session())
	ok, err := a.Resume("pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewWire_InvalidConfig(t *testing.T) {
	_, err := app.NewWire(app.Default(), platformtest.New(), nil)
	assert.Error(t, err)
}

// newAppAt builds a second App sharing prev's session store directory.
func newAppAt(t *testing.T, tr *platformtest.Transport, prev *app.App) *app.App {
	t.Helper()
	next := newApp(t, tr)
	next.Store = prev.Store
	return next
}
