package types

// Session is an authenticated, game and campaign scoped play session.
//
// Only Status changes after the handshake; it always holds the last status
// the server reported. Sessions carry no locking: callers that issue
// concurrent status-affecting calls against one Session must serialize them.
type Session struct {
	AppToken      string         `json:"app_token"`
	PersonalToken string         `json:"personal_token"`
	GameID        GameID         `json:"game_id"`
	CampaignID    CampaignID     `json:"campaign_id"`
	Player        PlayerID       `json:"player"`
	Status        ActivityStatus `json:"status"`
}

// Valid reports whether the handshake completed for this session.
func (s *Session) Valid() bool {
	return s != nil && s.Player != 0
}
