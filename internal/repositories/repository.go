package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup by identifier matches no row.
var ErrNotFound = errors.New("record not found")

// Tracking selects how a read binds its results to the unit of work.
type Tracking int

const (
	// Detached reads return plain values that the unit of work never persists.
	Detached Tracking = iota
	// Tracked reads register the results with the unit of work so that later
	// field changes are written on Save.
	Tracked
)

// Repository defines the data access operations shared by every entity type.
// Create, Update and Delete only stage changes; nothing reaches the database
// until the owning unit of work is saved.
type Repository[T any] interface {
	FindAll(ctx context.Context, tracking Tracking) ([]*T, error)
	FindByID(ctx context.Context, id uuid.UUID, tracking Tracking) (*T, error)
	Create(entity *T)
	Update(entity *T)
	Delete(entity *T)
}

// entity is the constraint satisfied by pointers to the persisted models.
type entity[T any] interface {
	*T
	Key() uuid.UUID
	AssignKey()
}
