package request

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the request body for rotating a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Faction      string `json:"faction"`
	Difficulty   string `json:"difficulty"`
	GalaxySize   string `json:"galaxySize"`
	WinCondition string `json:"winCondition"`
	Mode         string `json:"mode"`
}
