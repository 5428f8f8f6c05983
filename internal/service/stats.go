package service

import (
	"context"

	"github.com/vaultpass/passgen/internal/model"
)

// RatingCounter aggregates generation events by rating.
type RatingCounter interface {
	CountByRating(ctx context.Context) ([]model.RatingCount, error)
}

// StatsService reports on recorded generation events.
type StatsService struct {
	repo RatingCounter
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo RatingCounter) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns per-rating counts and their total.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	counts, err := s.repo.CountByRating(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	return model.StatsResponse{
		Total:    total,
		ByRating: counts,
	}, nil
}
