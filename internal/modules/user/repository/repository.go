package repository

import (
	"context"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/user/domain"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// GetOrCreate returns the user with the given telegram id, registering a
	// fresh trial of trialDays when the user is seen for the first time.
	GetOrCreate(ctx context.Context, telegramID int64, username string, trialDays int) (*domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	// EnsureAdmin upserts an admin row keyed on telegram id. Running it twice
	// leaves exactly one row with is_admin set.
	EnsureAdmin(ctx context.Context, telegramID int64, username string) error
	SetBlocked(ctx context.Context, telegramID int64, blocked bool) error
	GrantLicense(ctx context.Context, telegramID int64, until time.Time) error

	GetTrialNotice(ctx context.Context, telegramID int64) (*domain.TrialNotice, error)
	MarkDayBeforeSent(ctx context.Context, telegramID int64) error
	MarkOnExpirySent(ctx context.Context, telegramID int64) error
}
