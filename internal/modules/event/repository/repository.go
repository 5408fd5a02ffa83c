package repository

import (
	"context"
	"time"
)

// Repository defines the interface for per-platform feed event stats
type Repository interface {
	// Log records that a platform produced a delivered listing.
	Log(ctx context.Context, source string) error
	// CountBySource returns delivery counts per platform since the cutoff.
	CountBySource(ctx context.Context, since time.Time) (map[string]int64, error)
}
