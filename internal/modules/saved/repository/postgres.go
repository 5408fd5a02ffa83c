package repository

import (
	"context"

	"github.com/apstld/freelance-alert-bot/internal/modules/saved/domain"
	sharederrors "github.com/apstld/freelance-alert-bot/internal/shared/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// PostgresStorage implements saved.Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the repository and bootstraps its table
func NewPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (Repository, error) {
	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, oops.With("context", "failed to create saved_job schema").Wrap(err)
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS saved_job (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
CREATE INDEX IF NOT EXISTS idx_saved_job_user ON saved_job (user_id)`)
	return err
}

func (s *PostgresStorage) Save(ctx context.Context, job *domain.SavedJob) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
INSERT INTO saved_job (user_id, title, url, description)
VALUES ($1, $2, $3, $4) RETURNING id`,
		job.UserID, job.Title, job.URL, job.Description).Scan(&id)
	if err != nil {
		return 0, oops.With("user_id", job.UserID, "context", "failed to save job").Wrap(err)
	}
	return id, nil
}

func (s *PostgresStorage) List(ctx context.Context, telegramID int64, limit int) ([]*domain.SavedJob, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, user_id, title, url, description, created_at
FROM saved_job WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, telegramID, limit)
	if err != nil {
		return nil, oops.With("user_id", telegramID, "context", "failed to list saved jobs").Wrap(err)
	}
	defer rows.Close()

	var jobs []*domain.SavedJob
	for rows.Next() {
		var j domain.SavedJob
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.URL, &j.Description, &j.CreatedAt); err != nil {
			return nil, oops.With("user_id", telegramID, "context", "failed to scan saved job").Wrap(err)
		}
		jobs = append(jobs, &j)
	}
	return jobs, rows.Err()
}

func (s *PostgresStorage) Delete(ctx context.Context, telegramID int64, savedID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM saved_job WHERE id = $1 AND user_id = $2`, savedID, telegramID)
	if err != nil {
		return oops.With("user_id", telegramID, "saved_id", savedID, "context", "failed to delete saved job").Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return sharederrors.ErrSavedJobNotFound
	}
	return nil
}

func (s *PostgresStorage) Clear(ctx context.Context, telegramID int64) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM saved_job WHERE user_id = $1`, telegramID)
	if err != nil {
		return 0, oops.With("user_id", telegramID, "context", "failed to clear saved jobs").Wrap(err)
	}
	return tag.RowsAffected(), nil
}
