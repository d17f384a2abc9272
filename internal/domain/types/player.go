package types

// RegisterRequest is posted to the register endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	GameToken string `json:"game_token"`
}

func (p RegisterRequest) Check() bool { return p.Phone != "" }

// Player is the account created by registration.
type Player struct {
	ID        PlayerID `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	FullName  string   `json:"full_name"`
}

func (p Player) Check() bool { return p.ID != 0 }
