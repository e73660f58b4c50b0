package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRepository is the GORM implementation of Repository. Tracked entities
// live in an identity map, so repeated tracked reads of the same row return
// the same pointer.
type GORMRepository[T any, PT entity[T]] struct {
	name    string
	tracker *ChangeTracker
	entries map[uuid.UUID]*entry[T, PT]
}

// NewGORMRepository creates a repository bound to tracker. name is used in
// error messages only.
func NewGORMRepository[T any, PT entity[T]](name string, tracker *ChangeTracker) *GORMRepository[T, PT] {
	r := &GORMRepository[T, PT]{
		name:    name,
		tracker: tracker,
		entries: make(map[uuid.UUID]*entry[T, PT]),
	}
	tracker.register(r)
	return r
}

// query returns a session for reads outside the save transaction.
func (r *GORMRepository[T, PT]) query(ctx context.Context) *gorm.DB {
	return r.tracker.db.WithContext(ctx)
}

// FindAll retrieves every row of the entity's table.
func (r *GORMRepository[T, PT]) FindAll(ctx context.Context, tracking Tracking) ([]*T, error) {
	var rows []*T
	if err := r.query(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %ss: %w", r.name, err)
	}
	return r.bind(rows, tracking), nil
}

// FindByID retrieves a single row by its identifier.
func (r *GORMRepository[T, PT]) FindByID(ctx context.Context, id uuid.UUID, tracking Tracking) (*T, error) {
	if tracking == Tracked {
		if e, ok := r.entries[id]; ok && e.state != stateDeleted {
			return e.entity, nil
		}
	}

	var row T
	if err := r.query(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %s not found: %w", r.name, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", r.name, id, err)
	}
	return r.bind([]*T{&row}, tracking)[0], nil
}

// bind attaches freshly loaded rows to the identity map when tracking is
// requested. Rows already tracked are replaced by the tracked instance.
func (r *GORMRepository[T, PT]) bind(rows []*T, tracking Tracking) []*T {
	if tracking != Tracked {
		return rows
	}
	for i, row := range rows {
		id := PT(row).Key()
		if e, ok := r.entries[id]; ok {
			rows[i] = e.entity
			continue
		}
		r.entries[id] = &entry[T, PT]{repo: r, entity: row, snapshot: *row, state: stateUnchanged}
	}
	return rows
}

// Create stages entity for insertion and assigns its identifier.
func (r *GORMRepository[T, PT]) Create(entity *T) {
	PT(entity).AssignKey()
	e := &entry[T, PT]{repo: r, entity: entity, state: stateAdded}
	r.entries[PT(entity).Key()] = e
	r.tracker.enqueue(e)
}

// Update marks entity as modified. Entities already staged are left as they are.
func (r *GORMRepository[T, PT]) Update(entity *T) {
	id := PT(entity).Key()
	e, ok := r.entries[id]
	if !ok {
		e = &entry[T, PT]{repo: r, entity: entity, state: stateModified}
		r.entries[id] = e
		r.tracker.enqueue(e)
		return
	}
	// A different instance with the same key replaces the tracked one.
	e.entity = entity
	if e.state == stateUnchanged {
		e.state = stateModified
		r.tracker.enqueue(e)
	}
}

// Delete stages entity for removal. Deleting an entity that was created in
// the same unit of work simply cancels the insertion.
func (r *GORMRepository[T, PT]) Delete(entity *T) {
	id := PT(entity).Key()
	e, ok := r.entries[id]
	if !ok {
		e = &entry[T, PT]{repo: r, entity: entity, state: stateDeleted}
		r.entries[id] = e
		r.tracker.enqueue(e)
		return
	}
	e.entity = entity
	switch e.state {
	case stateAdded:
		e.state = stateDetached
		delete(r.entries, id)
	case stateUnchanged:
		e.state = stateDeleted
		r.tracker.enqueue(e)
	case stateModified:
		e.state = stateDeleted
	}
}

// detectChanges stages tracked entities whose fields changed since loading.
func (r *GORMRepository[T, PT]) detectChanges() {
	for _, e := range r.entries {
		if e.state == stateUnchanged && !reflect.DeepEqual(*e.entity, e.snapshot) {
			e.state = stateModified
			r.tracker.enqueue(e)
		}
	}
}

type entry[T any, PT entity[T]] struct {
	repo     *GORMRepository[T, PT]
	entity   *T
	snapshot T
	state    entryState
}

func (e *entry[T, PT]) flush(tx *gorm.DB) error {
	switch e.state {
	case stateAdded:
		if err := tx.Omit(clause.Associations).Create(e.entity).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", e.repo.name, err)
		}
	case stateModified:
		res := tx.Model(e.entity).Select("*").Omit(clause.Associations).Updates(e.entity)
		if res.Error != nil {
			return fmt.Errorf("failed to update %s: %w", e.repo.name, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s with ID %s not found for update: %w", e.repo.name, PT(e.entity).Key(), ErrNotFound)
		}
	case stateDeleted:
		res := tx.Delete(e.entity)
		if res.Error != nil {
			return fmt.Errorf("failed to delete %s: %w", e.repo.name, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s with ID %s not found for deletion: %w", e.repo.name, PT(e.entity).Key(), ErrNotFound)
		}
	}
	return nil
}

func (e *entry[T, PT]) accept() {
	switch e.state {
	case stateAdded, stateModified:
		e.state = stateUnchanged
		e.snapshot = *e.entity
	case stateDeleted:
		e.state = stateDetached
		delete(e.repo.entries, PT(e.entity).Key())
	}
}
