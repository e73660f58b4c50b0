package repositories

import "fridgeapi/internal/models"

// FridgeRepository defines the interface for fridge data access.
type FridgeRepository interface {
	Repository[models.Fridge]
}

// NewGORMFridgeRepository creates a fridge repository bound to tracker.
func NewGORMFridgeRepository(tracker *ChangeTracker) *GORMRepository[models.Fridge, *models.Fridge] {
	return NewGORMRepository[models.Fridge]("fridge", tracker)
}
