package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// EventRecorder stores anonymous generation events.
type EventRecorder interface {
	Create(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	recorder EventRecorder
}

// GeneratorOption configures a GeneratorService.
type GeneratorOption func(*GeneratorService)

// WithGenerator replaces the crypto/rand backed generator.
func WithGenerator(g *crypto.Generator) GeneratorOption {
	return func(s *GeneratorService) { s.gen = g }
}

// WithRecorder records an event for every generated password.
func WithRecorder(r EventRecorder) GeneratorOption {
	return func(s *GeneratorService) { s.recorder = r }
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(opts ...GeneratorOption) *GeneratorService {
	s := &GeneratorService{gen: crypto.NewGenerator(nil)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password and its strength based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	def := crypto.DefaultSelection()
	sel := crypto.Selection{
		Uppercase: boolOrDefault(req.Uppercase, def.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, def.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, def.Numbers),
		Symbols:   boolOrDefault(req.Symbols, def.Symbols),
	}

	length := req.Length
	if length == 0 {
		length = crypto.DefaultLength
	}
	if length < crypto.MinLength || length > crypto.MaxLength {
		return model.GenerateResponse{}, crypto.ErrInvalidLength
	}

	password, err := s.gen.Generate(length, sel)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	points := crypto.Points(password)
	rating := crypto.RatingFor(points)

	if s.recorder != nil {
		event := &model.GenerationEvent{
			Length:    length,
			Uppercase: sel.Uppercase,
			Lowercase: sel.Lowercase,
			Numbers:   sel.Numbers,
			Symbols:   sel.Symbols,
			Rating:    rating,
		}
		if err := s.recorder.Create(ctx, event); err != nil {
			slog.Warn("recording generation event failed", "error", err)
		}
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: rating,
		Score:    points,
	}, nil
}

// Strength rates a caller-supplied password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	points := crypto.Points(req.Password)
	return model.StrengthResponse{
		Score:    points,
		Strength: crypto.RatingFor(points),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
