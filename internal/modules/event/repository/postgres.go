package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// PostgresStorage implements event.Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the repository and bootstraps its table
func NewPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (Repository, error) {
	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, oops.With("context", "failed to create feed_event schema").Wrap(err)
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS feed_event (
    id BIGSERIAL PRIMARY KEY,
    source VARCHAR(64) NOT NULL,
    ts TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
CREATE INDEX IF NOT EXISTS idx_feed_event_source ON feed_event (source);
CREATE INDEX IF NOT EXISTS idx_feed_event_ts ON feed_event (ts)`)
	return err
}

func (s *PostgresStorage) Log(ctx context.Context, source string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO feed_event (source) VALUES ($1)`, source)
	if err != nil {
		return oops.With("source", source, "context", "failed to log feed event").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) CountBySource(ctx context.Context, since time.Time) (map[string]int64, error) {
	rows, err := s.pool.Query(ctx, `
SELECT source, COUNT(*) FROM feed_event WHERE ts >= $1 GROUP BY source ORDER BY source`, since)
	if err != nil {
		return nil, oops.With("since", since.Format(time.RFC3339), "context", "failed to count feed events").Wrap(err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return nil, oops.With("context", "failed to scan feed event count").Wrap(err)
		}
		counts[source] = count
	}
	return counts, rows.Err()
}
