package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `
CREATE TABLE IF NOT EXISTS generation_events (
	id         CHAR(36)    NOT NULL PRIMARY KEY,
	length     SMALLINT    NOT NULL,
	uppercase  BOOLEAN     NOT NULL,
	lowercase  BOOLEAN     NOT NULL,
	numbers    BOOLEAN     NOT NULL,
	symbols    BOOLEAN     NOT NULL,
	rating     VARCHAR(16) NOT NULL,
	created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_generation_events_rating (rating)
)`

// NewDB creates a new MySQL connection pool with the given DSN and makes sure
// the generation_events table exists.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the tables used by the repositories if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
