package models

import "github.com/google/uuid"

// Fridge is a physical refrigerator of a given model.
type Fridge struct {
	Base
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	OwnerName string    `json:"ownerName" gorm:"type:varchar(100)"`
	ModelID   uuid.UUID `json:"modelId" gorm:"type:uuid;not null;index"`

	FridgeModel *FridgeModel `json:"-" gorm:"foreignKey:ModelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
