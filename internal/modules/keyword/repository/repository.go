package repository

import "context"

// Repository defines the interface for per-user keyword persistence
type Repository interface {
	// Add inserts keywords for a user; duplicates are ignored.
	Add(ctx context.Context, telegramID int64, keywords []string) error
	Delete(ctx context.Context, telegramID int64, keywords []string) error
	Clear(ctx context.Context, telegramID int64) error
	Get(ctx context.Context, telegramID int64) ([]string, error)
	// GetAll returns the keyword list of every user that has at least one.
	GetAll(ctx context.Context) (map[int64][]string, error)
}
