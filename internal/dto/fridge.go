package dto

import "github.com/google/uuid"

// FridgeRequest is the body accepted to create or update a fridge.
type FridgeRequest struct {
	Name      string    `json:"name" validate:"required,notblank"`
	OwnerName string    `json:"ownerName"`
	ModelID   uuid.UUID `json:"modelId" validate:"required"`
}

func (FridgeRequest) validationMessages() map[string]string {
	return map[string]string{
		"name.required":    "Fridge name is a required field.",
		"name.notblank":    "Fridge name is a required field.",
		"modelId.required": "Fridge modelId is a required field.",
	}
}

// FridgeResponse is the representation of a fridge returned to clients.
type FridgeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"ownerName"`
	ModelID   uuid.UUID `json:"modelId"`
}
