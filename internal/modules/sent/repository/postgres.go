package repository

import (
	"context"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/sent/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// PostgresStorage implements sent.Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the repository and bootstraps its table
func NewPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (Repository, error) {
	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, oops.With("context", "failed to create sent_job schema").Wrap(err)
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS sent_job (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    job_key TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    source TEXT NOT NULL DEFAULT '',
    sent_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_sent_job_user_job
    ON sent_job (user_id, job_key);
CREATE INDEX IF NOT EXISTS idx_sent_job_sent_at
    ON sent_job (sent_at)`)
	return err
}

func (s *PostgresStorage) MarkSent(ctx context.Context, record *domain.SentJob) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
INSERT INTO sent_job (user_id, job_key, title, url, source)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, job_key) DO NOTHING`,
		record.UserID, record.JobKey, record.Title, record.URL, record.Source)
	if err != nil {
		return false, oops.With("user_id", record.UserID, "job_key", record.JobKey, "context", "failed to mark job sent").Wrap(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStorage) Unmark(ctx context.Context, telegramID int64, jobKey string) error {
	_, err := s.pool.Exec(ctx, `
DELETE FROM sent_job WHERE user_id = $1 AND job_key = $2`, telegramID, jobKey)
	if err != nil {
		return oops.With("user_id", telegramID, "job_key", jobKey, "context", "failed to unmark sent job").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) GetRecent(ctx context.Context, telegramID int64, limit int) ([]*domain.SentJob, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, user_id, job_key, title, url, source, sent_at
FROM sent_job WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, telegramID, limit)
	if err != nil {
		return nil, oops.With("user_id", telegramID, "context", "failed to list sent jobs").Wrap(err)
	}
	defer rows.Close()

	var records []*domain.SentJob
	for rows.Next() {
		var r domain.SentJob
		if err := rows.Scan(&r.ID, &r.UserID, &r.JobKey, &r.Title, &r.URL, &r.Source, &r.SentAt); err != nil {
			return nil, oops.With("user_id", telegramID, "context", "failed to scan sent job").Wrap(err)
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

func (s *PostgresStorage) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sent_job WHERE sent_at < $1`, cutoff)
	if err != nil {
		return 0, oops.With("cutoff", cutoff.Format(time.RFC3339), "context", "failed to prune sent jobs").Wrap(err)
	}
	return tag.RowsAffected(), nil
}
