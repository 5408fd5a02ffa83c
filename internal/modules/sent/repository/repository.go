package repository

import (
	"context"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/sent/domain"
)

// Repository defines the interface for the delivery dedup table
type Repository interface {
	// MarkSent records a delivery and reports whether the (user, job key) pair
	// was new. A false result means the job was already sent to this user.
	MarkSent(ctx context.Context, record *domain.SentJob) (bool, error)
	// Unmark removes a delivery record so the job can be sent again.
	Unmark(ctx context.Context, telegramID int64, jobKey string) error
	// GetRecent returns a user's latest deliveries, newest first.
	GetRecent(ctx context.Context, telegramID int64, limit int) ([]*domain.SentJob, error)
	// Prune deletes records older than the cutoff and returns the row count.
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}
