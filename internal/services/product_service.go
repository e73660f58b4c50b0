package services

import (
	"context"
	"fmt"

	"fridgeapi/internal/dto"
	"fridgeapi/internal/mapper"
	"fridgeapi/internal/repositories"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	uow repositories.UnitOfWorkFactory
}

// NewProductService creates a new ProductService.
func NewProductService(uow repositories.UnitOfWorkFactory) *ProductService {
	return &ProductService{uow: uow}
}

// Create stores a new product and returns it with its assigned ID.
func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	uow := s.uow.New()
	product := mapper.NewProduct(req)
	uow.Products().Create(product)
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	resp := mapper.ProductResponse(product)
	return &resp, nil
}

// GetAll retrieves all products.
func (s *ProductService) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.uow.New().Products().FindAll(ctx, repositories.Detached)
	if err != nil {
		return nil, err
	}
	return mapper.ProductResponses(products), nil
}

// GetByID retrieves a single product. It returns ErrNotFound for unknown IDs.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.uow.New().Products().FindByID(ctx, id, repositories.Detached)
	if err != nil {
		return nil, err
	}
	resp := mapper.ProductResponse(product)
	return &resp, nil
}

// Update overwrites the fields of an existing product.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) error {
	uow := s.uow.New()
	product, err := uow.Products().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	mapper.ApplyProduct(req, product)
	uow.Products().Update(product)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return nil
}

// Delete removes a product together with its stocking records.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uow.New()
	product, err := uow.Products().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	uow.Products().Delete(product)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
