package dto

import "github.com/google/uuid"

// FridgeProductRequest stocks a product in a fridge.
type FridgeProductRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

func (FridgeProductRequest) validationMessages() map[string]string {
	return map[string]string{
		"productId.required": "Product id is a required field.",
		"quantity.gte":       "Quantity can't be less than 0.",
	}
}

// FridgeProductResponse is a stocking record with the product name resolved
// at read time.
type FridgeProductResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
}
