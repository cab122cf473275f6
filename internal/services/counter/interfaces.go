package counter

import (
	"context"

	"github.com/mauiplayer/radio-api/internal/models"
)

// CounterService defines the operations behind the shared counter
type CounterService interface {
	// Get returns the current counter value, creating it on first use
	Get(ctx context.Context) (Snapshot, error)

	// Add adds delta to the counter and returns the new value
	Add(ctx context.Context, delta int64) (Snapshot, error)
}

// CounterRepository defines data access for named counters
type CounterRepository interface {
	// GetOrCreate loads a counter, seeding it with initial when missing
	GetOrCreate(ctx context.Context, name string, initial int64) (*models.Counter, error)

	// Increment atomically adds delta to a counter seeded with initial when missing
	Increment(ctx context.Context, name string, initial, delta int64) (*models.Counter, error)
}
