package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const leaderboardSchema = `
CREATE TABLE IF NOT EXISTS leaderboard_entries (
	id         BIGSERIAL PRIMARY KEY,
	day_key    TEXT        NOT NULL,
	name       TEXT        NOT NULL,
	tries      INTEGER     NOT NULL,
	won        BOOLEAN     NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_day_key ON leaderboard_entries (day_key);
`

// PostgresStore is a LeaderboardStore backed by a pgx connection pool.
// Appends are single INSERTs, so concurrent writes rely on the
// database's own atomicity.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL, verifies the connection
// and ensures the leaderboard table exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, leaderboardSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure leaderboard schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Append inserts one entry under dayKey.
func (s *PostgresStore) Append(ctx context.Context, dayKey string, entry LeaderboardEntry) error {
	query := `
		INSERT INTO leaderboard_entries (day_key, name, tries, won, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.pool.Exec(ctx, query, dayKey, entry.Name, entry.Tries, entry.Won, entry.Timestamp); err != nil {
		return fmt.Errorf("failed to append leaderboard entry for %s: %w", dayKey, err)
	}
	return nil
}

// List returns all entries recorded under dayKey, in insertion order.
func (s *PostgresStore) List(ctx context.Context, dayKey string) ([]LeaderboardEntry, error) {
	query := `
		SELECT name, tries, won, created_at
		FROM leaderboard_entries
		WHERE day_key = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard entries for %s: %w", dayKey, err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.Tries, &entry.Won, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry for %s: %w", dayKey, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard entries for %s: %w", dayKey, err)
	}

	return entries, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
