package counter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauiplayer/radio-api/internal/models"
	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

type failingRepository struct {
	err error
}

func (f failingRepository) GetOrCreate(context.Context, string, int64) (*models.Counter, error) {
	return nil, f.err
}

func (f failingRepository) Increment(context.Context, string, int64, int64) (*models.Counter, error) {
	return nil, f.err
}

func TestService_GetAndAdd(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	snap, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, InitialValue, snap.Counter)
	assert.WithinDuration(t, time.Now(), snap.LastUpdated, time.Minute)
	assert.Equal(t, time.UTC, snap.LastUpdated.Location())

	snap, err = svc.Add(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.Counter)

	snap, err = svc.Add(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.Counter)

	snap, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.Counter)
}

func TestService_AddBeforeGet(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	snap, err := svc.Add(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), snap.Counter)
}

func TestService_RepositoryErrors(t *testing.T) {
	svc := NewService(failingRepository{err: errors.New("database is locked")})

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))

	_, err = svc.Add(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
