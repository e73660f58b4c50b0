package repositories

import "fridgeapi/internal/models"

// FridgeModelRepository defines the interface for fridge model data access.
type FridgeModelRepository interface {
	Repository[models.FridgeModel]
}

// NewGORMFridgeModelRepository creates a fridge model repository bound to tracker.
func NewGORMFridgeModelRepository(tracker *ChangeTracker) *GORMRepository[models.FridgeModel, *models.FridgeModel] {
	return NewGORMRepository[models.FridgeModel]("fridge model", tracker)
}
