package source

import (
	"context"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
)

// Fetcher pulls current listings from a single freelance platform.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	// Name is the platform identifier recorded in dedup keys and feed events.
	Name() string
	// Fetch returns current listings. The query is a comma-joined union of all
	// active keywords; platforms without query support ignore it.
	Fetch(ctx context.Context, query string) ([]*domain.Job, error)
}
