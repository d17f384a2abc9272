package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/platform/platformtest"
	"gamiclient/internal/protocol/envelope"
	"gamiclient/internal/services/session"
)

const appToken = "game-token"

var routes = platform.NewRoutes(platformtest.Host)

var activityURL = platform.Expand(routes.Activity, 7, 3)

func newService(tr *platformtest.Transport) (*session.Service, *platform.Executor) {
	exec := platform.NewExecutor(tr, nil)
	return session.New(exec, routes, appToken, nil), exec
}

func happyTransport() *platformtest.Transport {
	return platformtest.New().
		JSON(http.MethodPost, routes.Auth, `{"token":"abc"}`).
		JSON(http.MethodPost, routes.Identify, `{"id":7,"name":"Quest","content_url":"","status":1,"campaign":3}`).
		JSON(http.MethodGet, activityURL, `{"game":7,"player":42,"status":10,"campaign":3,"last_modified":"2024-05-01T10:00:00Z"}`)
}

func TestHandshake_Established(t *testing.T) {
	tr := happyTransport()
	svc, exec := newService(tr)

	env, state := svc.Handshake(context.Background(), "555", "pw")

	require.True(t, env.OK(), env.Error)
	assert.Equal(t, session.Established, state)
	assert.Equal(t, domain.Session{
		AppToken:      appToken,
		PersonalToken: "abc",
		GameID:        7,
		CampaignID:    3,
		Player:        42,
		Status:        10,
	}, env.Content)
	assert.True(t, env.Content.Valid())
	assert.Equal(t, "abc", exec.Token())
}

func TestHandshake_RequestsInOrderWithAuth(t *testing.T) {
	tr := happyTransport()
	svc, _ := newService(tr)

	svc.BuildSession(context.Background(), "555", "pw")

	reqs := tr.Requests()
	require.Len(t, reqs, 3)

	assert.Equal(t, routes.Auth, reqs[0].URL)
	assert.JSONEq(t, `{"game_token":"game-token","phone":"555","password":"pw"}`, string(reqs[0].Body))
	assert.Empty(t, reqs[0].Header.Get("Authorization"))

	assert.Equal(t, routes.Identify, reqs[1].URL)
	assert.JSONEq(t, `{"game_token":"game-token"}`, string(reqs[1].Body))
	assert.Equal(t, "Token abc", reqs[1].Header.Get("Authorization"))

	assert.Equal(t, activityURL, reqs[2].URL)
	assert.Equal(t, http.MethodGet, reqs[2].Method)
	assert.Equal(t, "Token abc", reqs[2].Header.Get("Authorization"))
}

func TestHandshake_AuthFailureShortCircuits(t *testing.T) {
	tr := happyTransport().Fail(http.MethodPost, routes.Auth, errors.New("no route to host"))
	svc, exec := newService(tr)

	env, state := svc.Handshake(context.Background(), "555", "pw")

	assert.Equal(t, session.Failed, state)
	assert.False(t, env.OK())
	assert.Equal(t, envelope.MsgConnect, env.Error)
	assert.Zero(t, env.Content)
	assert.Equal(t, 0, tr.Calls(http.MethodPost, routes.Identify))
	assert.Equal(t, 0, tr.Calls(http.MethodGet, activityURL))
	assert.Empty(t, exec.Token())
}

func TestHandshake_BadCredentials(t *testing.T) {
	tr := happyTransport().On(http.MethodPost, routes.Auth, platformtest.Reply{
		Status: http.StatusBadRequest,
		Body:   `{"non_field_errors":["Unable to log in with provided credentials."]}`,
	})
	svc, _ := newService(tr)

	env, state := svc.Handshake(context.Background(), "555", "wrong")

	assert.Equal(t, session.Failed, state)
	assert.Equal(t, envelope.MsgFormat, env.Error)
	assert.Len(t, tr.Requests(), 1)
}

func TestHandshake_IdentifyFailure(t *testing.T) {
	tr := happyTransport().JSON(http.MethodPost, routes.Identify, `{"id":0}`)
	svc, _ := newService(tr)

	env, state := svc.Handshake(context.Background(), "555", "pw")

	assert.Equal(t, session.Failed, state)
	assert.Equal(t, envelope.MsgFormat, env.Error)
	assert.Equal(t, 0, tr.Calls(http.MethodGet, activityURL))
}

func TestHandshake_ActivityFailure(t *testing.T) {
	tr := happyTransport().Fail(http.MethodGet, activityURL, errors.New("EOF"))
	svc, _ := newService(tr)

	env, state := svc.Handshake(context.Background(), "555", "pw")

	assert.Equal(t, session.Failed, state)
	assert.Equal(t, envelope.MsgConnect, env.Error)
	assert.False(t, env.Content.Valid())
	assert.Len(t, tr.Requests(), 3)
}

func TestState(t *testing.T) {
	assert.True(t, session.Established.Terminal())
	assert.True(t, session.Failed.Terminal())
	assert.False(t, session.TokenIssued.Terminal())
	assert.Equal(t, "game-identified", session.GameIdentified.String())
}
