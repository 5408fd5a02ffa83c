package repository

import (
	"context"
	"errors"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/user/domain"
	sharederrors "github.com/apstld/freelance-alert-bot/internal/shared/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// PostgresStorage implements user.Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the repository and bootstraps its tables.
// The DDL is idempotent and safe to run on every start.
func NewPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (Repository, error) {
	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, oops.With("context", "failed to create users schema").Wrap(err)
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    telegram_id BIGINT NOT NULL UNIQUE,
    username TEXT NOT NULL DEFAULT '',
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
    trial_start TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC'),
    trial_end TIMESTAMPTZ NOT NULL,
    license_until TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC'),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
CREATE TABLE IF NOT EXISTS trial_notice (
    user_id BIGINT PRIMARY KEY,
    sent_day_before BOOLEAN NOT NULL DEFAULT FALSE,
    sent_on_expiry BOOLEAN NOT NULL DEFAULT FALSE,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
)`)
	return err
}

const userColumns = `id, telegram_id, username, is_admin, is_active, is_blocked,
trial_start, trial_end, license_until, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.IsAdmin, &u.IsActive, &u.IsBlocked,
		&u.TrialStart, &u.TrialEnd, &u.LicenseUntil, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStorage) GetOrCreate(ctx context.Context, telegramID int64, username string, trialDays int) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `
INSERT INTO users (telegram_id, username, trial_start, trial_end)
VALUES ($1, $2, NOW(), NOW() + make_interval(days => $3))
ON CONFLICT (telegram_id) DO UPDATE SET
    username = CASE WHEN EXCLUDED.username <> '' THEN EXCLUDED.username ELSE users.username END,
    updated_at = NOW()
RETURNING `+userColumns, telegramID, username, trialDays)

	u, err := scanUser(row)
	if err != nil {
		return nil, oops.With("telegram_id", telegramID, "context", "failed to get or create user").Wrap(err)
	}
	return u, nil
}

func (s *PostgresStorage) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sharederrors.ErrUserNotFound
		}
		return nil, oops.With("telegram_id", telegramID, "context", "failed to read user").Wrap(err)
	}
	return u, nil
}

func (s *PostgresStorage) GetAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, oops.With("context", "failed to list users").Wrap(err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, oops.With("context", "failed to scan user").Wrap(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStorage) EnsureAdmin(ctx context.Context, telegramID int64, username string) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO users (telegram_id, username, is_admin, is_active, trial_start, trial_end)
VALUES ($1, $2, TRUE, TRUE, NOW(), NOW())
ON CONFLICT (telegram_id) DO UPDATE SET
    username = CASE WHEN EXCLUDED.username <> '' THEN EXCLUDED.username ELSE users.username END,
    is_admin = TRUE,
    is_active = TRUE,
    updated_at = NOW()`, telegramID, username)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to ensure admin").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) SetBlocked(ctx context.Context, telegramID int64, blocked bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET is_blocked = $2, updated_at = NOW() WHERE telegram_id = $1`, telegramID, blocked)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to update blocked flag").Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return sharederrors.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) GrantLicense(ctx context.Context, telegramID int64, until time.Time) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET license_until = $2, updated_at = NOW() WHERE telegram_id = $1`, telegramID, until)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to grant license").Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return sharederrors.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) GetTrialNotice(ctx context.Context, telegramID int64) (*domain.TrialNotice, error) {
	var n domain.TrialNotice
	err := s.pool.QueryRow(ctx, `
SELECT user_id, sent_day_before, sent_on_expiry, updated_at
FROM trial_notice WHERE user_id = $1`, telegramID).
		Scan(&n.UserID, &n.SentDayBefore, &n.SentOnExpiry, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.TrialNotice{UserID: telegramID}, nil
		}
		return nil, oops.With("telegram_id", telegramID, "context", "failed to read trial notice").Wrap(err)
	}
	return &n, nil
}

func (s *PostgresStorage) MarkDayBeforeSent(ctx context.Context, telegramID int64) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO trial_notice (user_id, sent_day_before)
VALUES ($1, TRUE)
ON CONFLICT (user_id) DO UPDATE SET sent_day_before = TRUE, updated_at = NOW()`, telegramID)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to mark day-before notice").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) MarkOnExpirySent(ctx context.Context, telegramID int64) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO trial_notice (user_id, sent_on_expiry)
VALUES ($1, TRUE)
ON CONFLICT (user_id) DO UPDATE SET sent_on_expiry = TRUE, updated_at = NOW()`, telegramID)
	if err != nil {
		return oops.With("telegram_id", telegramID, "context", "failed to mark expiry notice").Wrap(err)
	}
	return nil
}
