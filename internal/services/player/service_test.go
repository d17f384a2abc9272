package player_test

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
	"gamiclient/internal/services/player"
)

var routes = platform.NewRoutes(platformtest.Host)

func register(t *testing.T, tr *platformtest.Transport) envelope.Envelope[bool] {
	t.Helper()
	svc := player.New(platform.NewExecutor(tr, nil), routes, "game-token")
	return svc.RegisterPlayer(context.Background(), domain.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Company:   "Engines",
		Phone:     "555",
		Password:  "pw",
	})
}

func TestRegisterPlayer_Created(t *testing.T) {
	tr := platformtest.New().JSON(http.MethodPost, routes.Register,
		`{"id":5,"username":"555","email":"","first_name":"Ada","last_name":"Lovelace","full_name":"Ada Lovelace"}`)

	env := register(t, tr)

	require.True(t, env.OK())
	assert.True(t, env.Content)

	reqs := tr.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{
		"first_name":"Ada","last_name":"Lovelace","company":"Engines",
		"phone":"555","password":"pw","game_token":"game-token"
	}`, string(reqs[0].Body))
}

func TestRegisterPlayer_ZeroIDIsRefused(t *testing.T) {
	for _, body := range []string{`{"id":0}`, `{"username":"555"}`} {
		tr := platformtest.New().JSON(http.MethodPost, routes.Register, body)

		env := register(t, tr)

		assert.True(t, env.OK(), body)
		assert.False(t, env.Content, body)
	}
}

func TestRegisterPlayer_Failures(t *testing.T) {
	tr := platformtest.New().Fail(http.MethodPost, routes.Register, errors.New("refused"))
	env := register(t, tr)
	assert.Equal(t, envelope.MsgConnect, env.Error)

	tr = platformtest.New().JSON(http.MethodPost, routes.Register, `<html>`)
	env = register(t, tr)
	assert.Equal(t, envelope.MsgFormat, env.Error)
}
