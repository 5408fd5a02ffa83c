package repository

import (
	"context"

	"github.com/apstld/freelance-alert-bot/internal/modules/saved/domain"
)

// Repository defines the interface for saved-job bookmarks
type Repository interface {
	Save(ctx context.Context, job *domain.SavedJob) (int64, error)
	List(ctx context.Context, telegramID int64, limit int) ([]*domain.SavedJob, error)
	Delete(ctx context.Context, telegramID int64, savedID int64) error
	Clear(ctx context.Context, telegramID int64) (int64, error)
}
