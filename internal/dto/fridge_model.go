package dto

import "github.com/google/uuid"

// FridgeModelRequest is the body accepted to create or update a fridge model.
type FridgeModelRequest struct {
	Name string `json:"name" validate:"required,notblank"`
	Year int    `json:"year"`
}

func (FridgeModelRequest) validationMessages() map[string]string {
	return map[string]string{
		"name.required": "Fridge model name is a required field.",
		"name.notblank": "Fridge model name is a required field.",
	}
}

// FridgeModelResponse is the representation of a fridge model returned to clients.
type FridgeModelResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Year int       `json:"year"`
}
