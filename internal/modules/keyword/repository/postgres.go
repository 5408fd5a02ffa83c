package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// PostgresStorage implements keyword.Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the repository and bootstraps its table
func NewPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (Repository, error) {
	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, oops.With("context", "failed to create user_keywords schema").Wrap(err)
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS user_keywords (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    keyword TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_user_keywords_user_id_keyword
    ON user_keywords (user_id, keyword)`)
	return err
}

func (s *PostgresStorage) Add(ctx context.Context, telegramID int64, keywords []string) error {
	for _, kw := range keywords {
		_, err := s.pool.Exec(ctx, `
INSERT INTO user_keywords (user_id, keyword) VALUES ($1, $2)
ON CONFLICT (user_id, keyword) DO NOTHING`, telegramID, kw)
		if err != nil {
			return oops.With("telegram_id", telegramID, "keyword", kw, "context", "failed to add keyword").Wrap(err)
		}
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, telegramID int64, keywords []string) error {
	for _, kw := range keywords {
		_, err := s.pool.Exec(ctx, `DELETE FROM user_keywords WHERE user_id = $1 AND keyword = $2`, telegramID, kw)
		if err != nil {
			return oops.With("telegram_id", telegramID, "keyword", kw, "context", "failed to delete keyword").Wrap(err)
		}
	}
	return nil
}

func (s *PostgresStorage) Clear(ctx context.Context, telegramID int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM user_keywords WHERE user_id = $1`, telegramID)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to clear keywords").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) Get(ctx context.Context, telegramID int64) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
SELECT keyword FROM user_keywords WHERE user_id = $1 ORDER BY keyword`, telegramID)
	if err != nil {
		return nil, oops.With("telegram_id", telegramID, "context", "failed to list keywords").Wrap(err)
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, oops.With("telegram_id", telegramID, "context", "failed to scan keyword").Wrap(err)
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

func (s *PostgresStorage) GetAll(ctx context.Context) (map[int64][]string, error) {
	rows, err := s.pool.Query(ctx, `
SELECT user_id, keyword FROM user_keywords ORDER BY user_id, keyword`)
	if err != nil {
		return nil, oops.With("context", "failed to list all keywords").Wrap(err)
	}
	defer rows.Close()

	all := map[int64][]string{}
	for rows.Next() {
		var userID int64
		var kw string
		if err := rows.Scan(&userID, &kw); err != nil {
			return nil, oops.With("context", "failed to scan keyword row").Wrap(err)
		}
		all[userID] = append(all[userID], kw)
	}
	return all, rows.Err()
}
