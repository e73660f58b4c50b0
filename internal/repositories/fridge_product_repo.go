package repositories

import (
	"context"
	"fmt"

	"fridgeapi/internal/models"

	"github.com/google/uuid"
)

// FridgeProductRepository defines the interface for stocking record data access.
type FridgeProductRepository interface {
	Repository[models.FridgeProduct]
	// FindByFridge returns the detached stocking records of a fridge with their
	// product loaded.
	FindByFridge(ctx context.Context, fridgeID uuid.UUID) ([]*models.FridgeProduct, error)
	// ExecuteProcedure runs a database command immediately, outside of any
	// staged changes.
	ExecuteProcedure(ctx context.Context, command string) error
}

// GORMFridgeProductRepository is a GORM implementation of FridgeProductRepository.
type GORMFridgeProductRepository struct {
	*GORMRepository[models.FridgeProduct, *models.FridgeProduct]
}

// NewGORMFridgeProductRepository creates a stocking record repository bound to tracker.
func NewGORMFridgeProductRepository(tracker *ChangeTracker) *GORMFridgeProductRepository {
	return &GORMFridgeProductRepository{
		GORMRepository: NewGORMRepository[models.FridgeProduct]("fridge product", tracker),
	}
}

// FindByFridge retrieves every stocking record of a fridge.
func (r *GORMFridgeProductRepository) FindByFridge(ctx context.Context, fridgeID uuid.UUID) ([]*models.FridgeProduct, error) {
	var rows []*models.FridgeProduct
	err := r.query(ctx).
		Preload("Product").
		Where("fridge_id = ?", fridgeID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products of fridge %s: %w", fridgeID, err)
	}
	return rows, nil
}

// ExecuteProcedure executes command against the database.
func (r *GORMFridgeProductRepository) ExecuteProcedure(ctx context.Context, command string) error {
	if err := r.query(ctx).Exec(command).Error; err != nil {
		return fmt.Errorf("failed to execute procedure: %w", err)
	}
	return nil
}
