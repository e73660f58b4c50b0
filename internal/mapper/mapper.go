// Package mapper copies fields between persisted models and the DTOs exposed
// over HTTP.
package mapper

import (
	"fridgeapi/internal/dto"
	"fridgeapi/internal/models"

	"github.com/google/uuid"
)

// mapAll converts every item, returning an empty (not nil) slice for no items.
func mapAll[S, D any](items []*S, fn func(*S) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// NewFridgeModel builds an unsaved fridge model from req.
func NewFridgeModel(req dto.FridgeModelRequest) *models.FridgeModel {
	m := &models.FridgeModel{}
	ApplyFridgeModel(req, m)
	return m
}

// ApplyFridgeModel copies the fields of req onto an existing fridge model.
func ApplyFridgeModel(req dto.FridgeModelRequest, m *models.FridgeModel) {
	m.Name = req.Name
	m.Year = req.Year
}

// FridgeModelResponse converts a fridge model to its API representation.
func FridgeModelResponse(m *models.FridgeModel) dto.FridgeModelResponse {
	return dto.FridgeModelResponse{ID: m.ID, Name: m.Name, Year: m.Year}
}

// FridgeModelResponses converts a list of fridge models.
func FridgeModelResponses(ms []*models.FridgeModel) []dto.FridgeModelResponse {
	return mapAll(ms, FridgeModelResponse)
}

// NewFridge builds an unsaved fridge from req.
func NewFridge(req dto.FridgeRequest) *models.Fridge {
	f := &models.Fridge{}
	ApplyFridge(req, f)
	return f
}

// ApplyFridge copies the fields of req onto an existing fridge.
func ApplyFridge(req dto.FridgeRequest, f *models.Fridge) {
	f.Name = req.Name
	f.OwnerName = req.OwnerName
	f.ModelID = req.ModelID
}

// FridgeResponse converts a fridge to its API representation.
func FridgeResponse(f *models.Fridge) dto.FridgeResponse {
	return dto.FridgeResponse{ID: f.ID, Name: f.Name, OwnerName: f.OwnerName, ModelID: f.ModelID}
}

// FridgeResponses converts a list of fridges.
func FridgeResponses(fs []*models.Fridge) []dto.FridgeResponse {
	return mapAll(fs, FridgeResponse)
}

// NewProduct builds an unsaved product from req.
func NewProduct(req dto.ProductRequest) *models.Product {
	p := &models.Product{}
	ApplyProduct(req, p)
	return p
}

// ApplyProduct copies the fields of req onto an existing product.
func ApplyProduct(req dto.ProductRequest, p *models.Product) {
	p.Name = req.Name
	p.DefaultQuantity = req.DefaultQuantity
}

// ProductResponse converts a product to its API representation.
func ProductResponse(p *models.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, DefaultQuantity: p.DefaultQuantity}
}

// ProductResponses converts a list of products.
func ProductResponses(ps []*models.Product) []dto.ProductResponse {
	return mapAll(ps, ProductResponse)
}

// NewFridgeProduct builds a stocking record of fridgeID.
func NewFridgeProduct(fridgeID uuid.UUID, req dto.FridgeProductRequest) *models.FridgeProduct {
	return &models.FridgeProduct{
		FridgeID:  fridgeID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
}

// FridgeProductResponse flattens the product name; it is empty when the
// product was not loaded.
func FridgeProductResponse(fp *models.FridgeProduct) dto.FridgeProductResponse {
	resp := dto.FridgeProductResponse{ID: fp.ID, ProductID: fp.ProductID, Quantity: fp.Quantity}
	if fp.Product != nil {
		resp.ProductName = fp.Product.Name
	}
	return resp
}

// FridgeProductResponses converts a list of stocking records.
func FridgeProductResponses(fps []*models.FridgeProduct) []dto.FridgeProductResponse {
	return mapAll(fps, FridgeProductResponse)
}
