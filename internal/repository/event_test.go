package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

func setupEventMock(t *testing.T) (*EventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventRepository(db), mock
}

const insertEventQuery = `INSERT INTO generation_events (id, length, uppercase, lowercase, numbers, symbols, rating, created_at)`

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo, mock := setupEventMock(t)

	mock.ExpectExec(regexp.QuoteMeta(insertEventQuery)).
		WithArgs(sqlmock.AnyArg(), 12, true, true, true, true, "Strong", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &model.GenerationEvent{
		Length: 12, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
		Rating: crypto.Strong,
	}
	require.NoError(t, repo.Create(context.Background(), event))

	assert.Len(t, event.ID, 36)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_KeepsProvidedID(t *testing.T) {
	repo, mock := setupEventMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(insertEventQuery)).
		WithArgs("event-1", 8, false, true, false, false, "Weak", created).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &model.GenerationEvent{ID: "event-1", Length: 8, Lowercase: true, Rating: crypto.Weak, CreatedAt: created}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Error(t *testing.T) {
	repo, mock := setupEventMock(t)

	mock.ExpectExec(regexp.QuoteMeta(insertEventQuery)).
		WillReturnError(errors.New("insert failed"))

	err := repo.Create(context.Background(), &model.GenerationEvent{Length: 8, Numbers: true})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByRating(t *testing.T) {
	repo, mock := setupEventMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, COUNT(*) FROM generation_events GROUP BY rating`)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow("Strong", 4).
			AddRow("Weak", 2).
			AddRow("Bogus", 9))

	counts, err := repo.CountByRating(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.RatingCount{
		{Rating: crypto.Weak, Count: 2},
		{Rating: crypto.Moderate, Count: 0},
		{Rating: crypto.Strong, Count: 4},
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByRating_QueryError(t *testing.T) {
	repo, mock := setupEventMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, COUNT(*) FROM generation_events`)).
		WillReturnError(errors.New("query failed"))

	_, err := repo.CountByRating(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS generation_events")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDB_InvalidDSN(t *testing.T) {
	_, err := NewDB(context.Background(), "not a dsn")
	assert.Error(t, err)
}
