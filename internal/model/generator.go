package model

import "github.com/vaultpass/passgen/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> form default) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string        `json:"password"`
	Length   int           `json:"length"`
	Strength crypto.Rating `json:"strength"`
	Score    int           `json:"score"`
}

// StrengthRequest asks for the rating of a caller-supplied password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the heuristic score and its rating.
type StrengthResponse struct {
	Score    int           `json:"score"`
	Strength crypto.Rating `json:"strength"`
}
