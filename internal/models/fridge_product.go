package models

import "github.com/google/uuid"

// FridgeProduct records that a fridge currently stocks a product at a quantity.
type FridgeProduct struct {
	Base
	FridgeID  uuid.UUID `json:"fridgeId" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity"`

	Fridge  *Fridge  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Product *Product `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
