package types

import (
	"context"

	"github.com/mauiplayer/radio-api/internal/database"
	"github.com/mauiplayer/radio-api/internal/metrics"
	"github.com/mauiplayer/radio-api/internal/services/counter"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// RadioService is the aggregation layer behind the /api/radios routes
type RadioService interface {
	Search(ctx context.Context, p radios.SearchParams) ([]radios.Radio, error)
	TopVoted(ctx context.Context, limit int) ([]radios.Radio, error)
	Random(ctx context.Context, limit int) ([]radios.Radio, error)
	Variety(ctx context.Context, p radios.VarietyParams) ([]radios.Radio, error)
	Comprehensive(ctx context.Context, limit int) ([]radios.Radio, error)
}

// DirectoryStatus reports which directory mirror is currently preferred
type DirectoryStatus interface {
	PreferredHost() string
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	RadioService   RadioService
	Directory      DirectoryStatus
	CounterService counter.CounterService
	Metrics        *metrics.Metrics
}
