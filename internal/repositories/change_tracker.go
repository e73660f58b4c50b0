package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type entryState int

const (
	stateUnchanged entryState = iota
	stateAdded
	stateModified
	stateDeleted
	stateDetached
)

// change is a staged write waiting for the next SaveChanges.
type change interface {
	flush(tx *gorm.DB) error
	accept()
}

// changeDetector is implemented by repositories that can find tracked
// entities mutated in place since they were loaded.
type changeDetector interface {
	detectChanges()
}

// ChangeTracker is the persistence context shared by the repositories of one
// unit of work. It is not safe for concurrent use.
type ChangeTracker struct {
	db        *gorm.DB
	pending   []change
	detectors []changeDetector
}

// NewChangeTracker creates an empty tracker over db.
func NewChangeTracker(db *gorm.DB) *ChangeTracker {
	return &ChangeTracker{db: db}
}

func (t *ChangeTracker) register(d changeDetector) {
	t.detectors = append(t.detectors, d)
}

func (t *ChangeTracker) enqueue(c change) {
	t.pending = append(t.pending, c)
}

// HasChanges reports whether anything is staged.
func (t *ChangeTracker) HasChanges() bool {
	for _, d := range t.detectors {
		d.detectChanges()
	}
	return len(t.pending) > 0
}

// SaveChanges writes every staged change inside a single transaction, in the
// order the changes were staged. If any write fails the transaction is rolled
// back, the staged changes are kept and the error is returned.
func (t *ChangeTracker) SaveChanges(ctx context.Context) error {
	if !t.HasChanges() {
		return nil
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range t.pending {
			if err := c.flush(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save changes: %w", err)
	}

	for _, c := range t.pending {
		c.accept()
	}
	t.pending = nil
	return nil
}
