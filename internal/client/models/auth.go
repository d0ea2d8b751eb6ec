package models

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Role  string `json:"role,omitempty"`
}

// AuthResponse is the body returned by a successful login. Older backend
// builds omit the role field, so callers should treat it as optional.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Nome   string `json:"nome"`
	Role   string `json:"role"`
}
