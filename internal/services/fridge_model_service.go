package services

import (
	"context"
	"fmt"

	"fridgeapi/internal/dto"
	"fridgeapi/internal/mapper"
	"fridgeapi/internal/repositories"

	"github.com/google/uuid"
)

// FridgeModelService handles business logic related to fridge models.
type FridgeModelService struct {
	uow repositories.UnitOfWorkFactory
}

// NewFridgeModelService creates a new FridgeModelService.
func NewFridgeModelService(uow repositories.UnitOfWorkFactory) *FridgeModelService {
	return &FridgeModelService{uow: uow}
}

// Create stores a new fridge model and returns it with its assigned ID.
func (s *FridgeModelService) Create(ctx context.Context, req dto.FridgeModelRequest) (*dto.FridgeModelResponse, error) {
	uow := s.uow.New()
	model := mapper.NewFridgeModel(req)
	uow.FridgeModels().Create(model)
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create fridge model: %w", err)
	}
	resp := mapper.FridgeModelResponse(model)
	return &resp, nil
}

// GetAll retrieves all fridge models.
func (s *FridgeModelService) GetAll(ctx context.Context) ([]dto.FridgeModelResponse, error) {
	fridgeModels, err := s.uow.New().FridgeModels().FindAll(ctx, repositories.Detached)
	if err != nil {
		return nil, err
	}
	return mapper.FridgeModelResponses(fridgeModels), nil
}

// GetByID retrieves a single fridge model. It returns ErrNotFound for unknown IDs.
func (s *FridgeModelService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FridgeModelResponse, error) {
	model, err := s.uow.New().FridgeModels().FindByID(ctx, id, repositories.Detached)
	if err != nil {
		return nil, err
	}
	resp := mapper.FridgeModelResponse(model)
	return &resp, nil
}

// Update overwrites the fields of an existing fridge model.
func (s *FridgeModelService) Update(ctx context.Context, id uuid.UUID, req dto.FridgeModelRequest) error {
	uow := s.uow.New()
	model, err := uow.FridgeModels().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	mapper.ApplyFridgeModel(req, model)
	uow.FridgeModels().Update(model)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update fridge model %s: %w", id, err)
	}
	return nil
}

// Delete removes a fridge model.
func (s *FridgeModelService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uow.New()
	model, err := uow.FridgeModels().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	uow.FridgeModels().Delete(model)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete fridge model %s: %w", id, err)
	}
	return nil
}
