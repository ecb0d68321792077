package dto

/* =========================
   REGISTER
========================= */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

/* =========================
   LOGIN
========================= */

type LoginRequest struct {
	// identifier boleh username atau email
	Identifier string `json:"identifier" validate:"required,max=100"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // detik
}
