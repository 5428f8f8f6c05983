package service

import (
	"context"
	"errors"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrInvalidKey  = errors.New("invalid operator key")
	ErrKeyRequired = errors.New("key is required")
)

// OperatorSubject is the token subject issued to the operator.
const OperatorSubject = "operator"

// AuthService exchanges the operator key for a JWT.
type AuthService struct {
	keyHash   string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. keyHash is the argon2id PHC hash of the operator key.
func NewAuthService(keyHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		keyHash:   keyHash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login verifies the operator key and returns an auth token.
func (s *AuthService) Login(_ context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Key == "" {
		return model.AuthResponse{}, ErrKeyRequired
	}
	if s.keyHash == "" {
		return model.AuthResponse{}, ErrInvalidKey
	}

	match, err := crypto.VerifyKey(req.Key, s.keyHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidKey
	}

	token, err := crypto.GenerateToken(OperatorSubject, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry / time.Second),
	}, nil
}
