package repositories

import "fridgeapi/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Repository[models.Product]
}

// NewGORMProductRepository creates a product repository bound to tracker.
func NewGORMProductRepository(tracker *ChangeTracker) *GORMRepository[models.Product, *models.Product] {
	return NewGORMRepository[models.Product]("product", tracker)
}
