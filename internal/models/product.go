package models

// Product is something that can be stocked in a fridge.
type Product struct {
	Base
	Name            string `json:"name" gorm:"type:varchar(100);not null"`
	DefaultQuantity int    `json:"defaultQuantity"`
}
