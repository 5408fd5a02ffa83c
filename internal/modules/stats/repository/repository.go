package repository

import (
	"context"

	"github.com/apstld/freelance-alert-bot/internal/modules/stats/domain"
)

// Repository defines the interface for the last-cycle stats snapshot.
// This abstraction allows easy replacement of storage implementations
// (e.g., FileStorage -> Redis)
type Repository interface {
	Write(ctx context.Context, stats *domain.CycleStats) error
	// Read returns the last snapshot, or nil when none was written yet.
	Read(ctx context.Context) (*domain.CycleStats, error)
}
