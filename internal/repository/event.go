package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// EventRepository persists anonymous password generation events.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event, assigning an ID and timestamp when they are unset.
func (r *EventRepository) Create(ctx context.Context, event *model.GenerationEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO generation_events (id, length, uppercase, lowercase, numbers, symbols, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Length,
		event.Uppercase,
		event.Lowercase,
		event.Numbers,
		event.Symbols,
		event.Rating.String(),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert generation event: %w", err)
	}
	return nil
}

// CountByRating returns the number of events per rating, weakest first.
func (r *EventRepository) CountByRating(ctx context.Context) ([]model.RatingCount, error) {
	query := `SELECT rating, COUNT(*) FROM generation_events GROUP BY rating`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count generation events: %w", err)
	}
	defer rows.Close()

	counts := map[crypto.Rating]int64{}
	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		rating, ok := crypto.ParseRating(name)
		if !ok {
			slog.Warn("skipping unknown rating in generation_events", "rating", name)
			continue
		}
		counts[rating] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]model.RatingCount, 0, 3)
	for _, rating := range []crypto.Rating{crypto.Weak, crypto.Moderate, crypto.Strong} {
		result = append(result, model.RatingCount{Rating: rating, Count: counts[rating]})
	}
	return result, nil
}
