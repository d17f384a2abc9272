package field_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	"gamiclient/internal/platform/platformtest"
	"gamiclient/internal/protocol/envelope"
	"gamiclient/internal/services/field"
)

var routes = platform.NewRoutes(platformtest.Host)

var fieldsURL = platform.Expand(routes.CustomFields, 7, 3)

func newSession() *domain.Session {
	return &domain.Session{PersonalToken: "abc", GameID: 7, CampaignID: 3, Player: 42}
}

func TestSetField_FlattensRecords(t *testing.T) {
	tr := platformtest.New().JSON(http.MethodPost, fieldsURL, `[
		{"id":5005,"field_type":{"id":114,"name":"Game Score","type_id":20,"options":"","project":655},"value":7,"target_object_id":3},
		{"id":5006,"field_type":{"id":115,"name":"Nickname","type_id":10},"value":"ace","target_object_id":3}
	]`)
	svc := field.New(platform.NewExecutor(tr, nil), routes)

	env := svc.SetField(context.Background(), newSession(), "Game Score", json.Number("7"), domain.FieldNumber)

	require.True(t, env.OK(), env.Error)
	assert.Equal(t, []domain.FieldValue{
		{ID: 5005, Name: "Game Score", TypeID: domain.FieldNumber, TargetObjectID: 3, Value: "7"},
		{ID: 5006, Name: "Nickname", TypeID: domain.FieldText, TargetObjectID: 3, Value: "ace"},
	}, env.Content)
	assert.Equal(t, "5005::Game Score::7::20", env.Content[0].String())

	reqs := tr.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"name":"Game Score","value":7,"type_id":20}`, string(reqs[0].Body))
	assert.Equal(t, "Token abc", reqs[0].Header.Get("Authorization"))
}

func TestSetField_TextValue(t *testing.T) {
	tr := platformtest.New().JSON(http.MethodPost, fieldsURL,
		`[{"id":1,"field_type":{"name":"Joined","type_id":50},"value":"2024-05-01","target_object_id":3}]`)
	svc := field.New(platform.NewExecutor(tr, nil), routes)

	env := svc.SetField(context.Background(), newSession(), "Joined", "2024-05-01", domain.FieldDate)

	require.True(t, env.OK())
	assert.Equal(t, "2024-05-01", env.Content[0].Value)
	assert.JSONEq(t, `{"name":"Joined","value":"2024-05-01","type_id":50}`, string(tr.Requests()[0].Body))
}

func TestSetField_ErrorForwarded(t *testing.T) {
	tr := platformtest.New().JSON(http.MethodPost, fieldsURL, `{"detail":"Unknown field"}`)
	svc := field.New(platform.NewExecutor(tr, nil), routes)

	env := svc.SetField(context.Background(), newSession(), "Nope", "x", domain.FieldText)

	assert.False(t, env.OK())
	assert.Equal(t, envelope.MsgFormat, env.Error)
	assert.Nil(t, env.Content)
}

func TestSetField_RequiresSession(t *testing.T) {
	tr := platformtest.New()
	svc := field.New(platform.NewExecutor(tr, nil), routes)

	env := svc.SetField(context.Background(), nil, "Game Score", 1, domain.FieldNumber)

	assert.Equal(t, envelope.MsgNoSession, env.Error)
	assert.Empty(t, tr.Requests())
}
