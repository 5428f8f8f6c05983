package model

import (
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
)

// GenerationEvent records that a password was generated. It never holds the password itself.
type GenerationEvent struct {
	ID        string
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Rating    crypto.Rating
	CreatedAt time.Time
}

// RatingCount is the number of generation events with a given rating.
type RatingCount struct {
	Rating crypto.Rating `json:"rating"`
	Count  int64         `json:"count"`
}

// StatsResponse summarizes recorded generation events.
type StatsResponse struct {
	Total    int64         `json:"total"`
	ByRating []RatingCount `json:"by_rating"`
}
