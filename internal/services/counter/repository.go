package counter

import (
	"context"

	"gorm.io/gorm"

	"github.com/mauiplayer/radio-api/internal/models"
)

// repository implements CounterRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new counter repository
func NewRepository(db *gorm.DB) CounterRepository {
	return &repository{db: db}
}

// GetOrCreate loads a counter, seeding it with initial when missing
func (r *repository) GetOrCreate(ctx context.Context, name string, initial int64) (*models.Counter, error) {
	return getOrCreate(r.db.WithContext(ctx), name, initial)
}

// Increment atomically adds delta to a counter
func (r *repository) Increment(ctx context.Context, name string, initial, delta int64) (*models.Counter, error) {
	var counter *models.Counter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := getOrCreate(tx, name, initial)
		if err != nil {
			return err
		}

		if err := tx.Model(c).Update("value", gorm.Expr("value + ?", delta)).Error; err != nil {
			return err
		}

		counter = &models.Counter{}
		return tx.First(counter, c.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return counter, nil
}

func getOrCreate(db *gorm.DB, name string, initial int64) (*models.Counter, error) {
	var counter models.Counter
	err := db.Where(models.Counter{Name: name}).
		Attrs(models.Counter{Value: initial}).
		FirstOrCreate(&counter).Error
	if err != nil {
		return nil, err
	}
	return &counter, nil
}
