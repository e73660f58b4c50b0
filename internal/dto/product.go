package dto

import "github.com/google/uuid"

// ProductRequest is the body accepted to create or update a product.
type ProductRequest struct {
	Name            string `json:"name" validate:"required,notblank"`
	DefaultQuantity int    `json:"defaultQuantity" validate:"gte=0"`
}

func (ProductRequest) validationMessages() map[string]string {
	return map[string]string{
		"name.required":       "Product name is a required field.",
		"name.notblank":       "Product name is a required field.",
		"defaultQuantity.gte": "Default quantity can't be less than 0.",
	}
}

// ProductResponse is the representation of a product returned to clients.
type ProductResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DefaultQuantity int       `json:"defaultQuantity"`
}
