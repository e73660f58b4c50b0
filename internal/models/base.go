package models

import "github.com/google/uuid"

// Base carries the identifier shared by every persisted entity.
// The identifier is assigned once, when the entity is staged for insertion.
type Base struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
}

// Key returns the entity identifier.
func (b Base) Key() uuid.UUID {
	return b.ID
}

// AssignKey sets the identifier if none has been assigned yet.
func (b *Base) AssignKey() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
}
