package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gamiclient/internal/platform"
)

func TestNewRoutes(t *testing.T) {
	r := platform.NewRoutes("https://play.example.com/")

	assert.Equal(t, "https://play.example.com/gamification/api/auth/", r.Auth)
	assert.Equal(t, "https://play.example.com/gamification/api/game/identify/", r.Identify)
	assert.Equal(t, "https://play.example.com/gamification/api/register/", r.Register)
}

func TestExpand(t *testing.T) {
	r := platform.NewRoutes("https://play.example.com")

	assert.Equal(t,
		"https://play.example.com/gamification/api/game/7/activity/3/",
		platform.Expand(r.Activity, 7, 3))
	assert.Equal(t,
		"https://play.example.com/gamification/api/game/7/assets/3/",
		platform.Expand(r.Assets, 7, 3))
	assert.Equal(t,
		"https://play.example.com/gamification/api/game/12/custom-fields/40/",
		platform.Expand(r.CustomFields, 12, 40))
	assert.Equal(t,
		"https://play.example.com/gamification/api/game-asset/99/content/",
		platform.ExpandAsset(r.AssetContent, 99))
}
