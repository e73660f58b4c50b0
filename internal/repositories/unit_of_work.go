package repositories

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork groups the repositories that commit together and exposes the
// single commit point. A unit of work serves one request and is then dropped.
type UnitOfWork interface {
	FridgeModels() FridgeModelRepository
	Fridges() FridgeRepository
	FridgeProducts() FridgeProductRepository
	Products() ProductRepository
	// Save writes every change staged through the repositories in one
	// transaction. Either all of them persist or none do.
	Save(ctx context.Context) error
}

// UnitOfWorkFactory creates a fresh unit of work per operation.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// GORMUnitOfWork is the GORM implementation of UnitOfWork. All repositories
// share one ChangeTracker.
type GORMUnitOfWork struct {
	tracker        *ChangeTracker
	fridgeModels   FridgeModelRepository
	fridges        FridgeRepository
	fridgeProducts FridgeProductRepository
	products       ProductRepository
}

// NewGORMUnitOfWork creates a unit of work with all repositories constructed up front.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	tracker := NewChangeTracker(db)
	return &GORMUnitOfWork{
		tracker:        tracker,
		fridgeModels:   NewGORMFridgeModelRepository(tracker),
		fridges:        NewGORMFridgeRepository(tracker),
		fridgeProducts: NewGORMFridgeProductRepository(tracker),
		products:       NewGORMProductRepository(tracker),
	}
}

func (u *GORMUnitOfWork) FridgeModels() FridgeModelRepository     { return u.fridgeModels }
func (u *GORMUnitOfWork) Fridges() FridgeRepository               { return u.fridges }
func (u *GORMUnitOfWork) FridgeProducts() FridgeProductRepository { return u.fridgeProducts }
func (u *GORMUnitOfWork) Products() ProductRepository             { return u.products }

// Save commits the staged changes.
func (u *GORMUnitOfWork) Save(ctx context.Context) error {
	return u.tracker.SaveChanges(ctx)
}

// GORMUnitOfWorkFactory hands out GORM units of work over a shared connection pool.
type GORMUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGORMUnitOfWorkFactory creates a new GORMUnitOfWorkFactory.
func NewGORMUnitOfWorkFactory(db *gorm.DB) *GORMUnitOfWorkFactory {
	return &GORMUnitOfWorkFactory{db: db}
}

// New returns an empty unit of work.
func (f *GORMUnitOfWorkFactory) New() UnitOfWork {
	return NewGORMUnitOfWork(f.db)
}
