package types

// AuthRequest is posted to the auth endpoint to obtain a personal token.
type AuthRequest struct {
	GameToken string `json:"game_token"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (p AuthRequest) Check() bool { return p.Phone != "" }

// TokenPayload carries the personal token issued by the auth endpoint.
type TokenPayload struct {
	Token string `json:"token"`
}

func (p TokenPayload) Check() bool { return p.Token != "" }

// GameTokenPayload identifies the game by its application token.
type GameTokenPayload struct {
	GameToken string `json:"game_token"`
}

func (p GameTokenPayload) Check() bool { return p.GameToken != "" }

// GameDetail is returned by the identify endpoint.
type GameDetail struct {
	ID         GameID     `json:"id"`
	Name       string     `json:"name"`
	ContentURL string     `json:"content_url"`
	Status     int        `json:"status"`
	Campaign   CampaignID `json:"campaign"`
}

func (p GameDetail) Check() bool { return p.ID != 0 }
