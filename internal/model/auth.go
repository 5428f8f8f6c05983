package model

// LoginRequest exchanges the operator key for a token.
type LoginRequest struct {
	Key string `json:"key"`
}

// AuthResponse represents an authentication response with a JWT token.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
