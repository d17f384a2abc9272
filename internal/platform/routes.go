package platform

import (
	"strings"

	"gamiclient/internal/domain"
)

const apiPrefix = "/gamification/api"

// Routes holds the endpoint URL templates for one host. Templates contain
// <game_id>, <campaign_id> and <pk> placeholders.
type Routes struct {
	Auth         string
	Identify     string
	Activity     string
	Register     string
	Assets       string
	AssetContent string
	CustomFields string
}

// NewRoutes builds the templates for host, e.g. https://play.example.com.
func NewRoutes(host string) Routes {
	base := strings.TrimRight(host, "/") + apiPrefix
	return Routes{
		Auth:         base + "/auth/",
		Identify:     base + "/game/identify/",
		Activity:     base + "/game/<game_id>/activity/<campaign_id>/",
		Register:     base + "/register/",
		Assets:       base + "/game/<game_id>/assets/<campaign_id>/",
		AssetContent: base + "/game-asset/<pk>/content/",
		CustomFields: base + "/game/<game_id>/custom-fields/<campaign_id>/",
	}
}

// Expand substitutes the game and campaign placeholders in tmpl.
func Expand(tmpl string, game domain.GameID, campaign domain.CampaignID) string {
	return strings.NewReplacer(
		"<game_id>", game.String(),
		"<campaign_id>", campaign.String(),
	).Replace(tmpl)
}

// ExpandAsset substitutes the asset primary key in tmpl.
func ExpandAsset(tmpl string, id domain.AssetID) string {
	return strings.ReplaceAll(tmpl, "<pk>", id.String())
}
