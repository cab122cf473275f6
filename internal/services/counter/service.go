package counter

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mauiplayer/radio-api/internal/logging"
	"github.com/mauiplayer/radio-api/internal/models"
	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

const (
	// DefaultName is the counter exposed over the API
	DefaultName = "app"
	// InitialValue seeds a counter that does not exist yet
	InitialValue int64 = 3
)

// Snapshot is the counter state returned to clients
type Snapshot struct {
	Counter     int64     `json:"counter"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// service implements CounterService
type service struct {
	repo   CounterRepository
	name   string
	logger zerolog.Logger
}

// NewService creates a new counter service
func NewService(repo CounterRepository) CounterService {
	return &service{
		repo:   repo,
		name:   DefaultName,
		logger: logging.Component("counter"),
	}
}

// Get returns the current counter value
func (s *service) Get(ctx context.Context) (Snapshot, error) {
	c, err := s.repo.GetOrCreate(ctx, s.name, InitialValue)
	if err != nil {
		return Snapshot{}, apperrors.DatabaseError("counter lookup", err)
	}
	return snapshot(c), nil
}

// Add adds delta to the counter
func (s *service) Add(ctx context.Context, delta int64) (Snapshot, error) {
	c, err := s.repo.Increment(ctx, s.name, InitialValue, delta)
	if err != nil {
		return Snapshot{}, apperrors.DatabaseError("counter increment", err)
	}

	s.logger.Debug().Int64("delta", delta).Int64("counter", c.Value).Msg("counter updated")
	return snapshot(c), nil
}

func snapshot(c *models.Counter) Snapshot {
	return Snapshot{Counter: c.Value, LastUpdated: c.UpdatedAt.UTC()}
}
