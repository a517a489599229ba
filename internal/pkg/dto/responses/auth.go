package responses

type RegisterUser struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LoginUser struct {
	Token     string `json:"token"`
	ProfileID string `json:"profile_id"`
	Role      string `json:"role"`
}
