package models

// FridgeModel is a refrigerator make/model that fridges are built from.
type FridgeModel struct {
	Base
	Name string `json:"name" gorm:"type:varchar(100);not null"`
	Year int    `json:"year"`
}
