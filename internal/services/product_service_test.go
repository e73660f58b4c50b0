package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fridgeapi/internal/dto"
	"fridgeapi/internal/models"
	"fridgeapi/internal/repositories"
	"fridgeapi/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProduct(name string, defaultQuantity int) *models.Product {
	p := &models.Product{Name: name, DefaultQuantity: defaultQuantity}
	p.AssignKey()
	return p
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	uow.products.On("Create", mock.AnythingOfType("*models.Product")).Run(assignKey[models.Product]).Once()
	uow.On("Save", ctx).Return(nil).Once()

	resp, err := service.Create(ctx, dto.ProductRequest{Name: "Milk", DefaultQuantity: 2})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Milk", resp.Name)
	assert.Equal(t, 2, resp.DefaultQuantity)
	uow.assertExpectations(t)
}

func TestProductService_Create_SaveFails(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	uow.products.On("Create", mock.Anything).Once()
	uow.On("Save", ctx).Return(errors.New("connection refused")).Once()

	resp, err := service.Create(ctx, dto.ProductRequest{Name: "Milk"})
	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "failed to create product")
	assert.ErrorContains(t, err, "connection refused")
	uow.assertExpectations(t)
}

func TestProductService_GetAll(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	milk, eggs := newProduct("Milk", 2), newProduct("Eggs", 10)
	uow.products.On("FindAll", ctx, repositories.Detached).Return([]*models.Product{milk, eggs}, nil).Once()

	resp, err := service.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, milk.ID, resp[0].ID)
	assert.Equal(t, "Eggs", resp[1].Name)
	uow.assertExpectations(t)

	// An empty table yields an empty list, not nil.
	uow.products.On("FindAll", ctx, repositories.Detached).Return([]*models.Product{}, nil).Once()
	resp, err = service.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	id := uuid.New()
	notFound := fmt.Errorf("product with ID %s not found: %w", id, repositories.ErrNotFound)
	uow.products.On("FindByID", ctx, id, repositories.Detached).Return(nil, notFound).Once()

	resp, err := service.GetByID(ctx, id)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrNotFound)
	uow.assertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	product := newProduct("Milk", 2)
	uow.products.On("FindByID", ctx, product.ID, repositories.Tracked).Return(product, nil).Once()
	uow.products.On("Update", product).Once()
	uow.On("Save", ctx).Return(nil).Once()

	err := service.Update(ctx, product.ID, dto.ProductRequest{Name: "Oat milk", DefaultQuantity: 0})
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", product.Name)
	assert.Equal(t, 0, product.DefaultQuantity)
	uow.assertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	id := uuid.New()
	uow.products.On("FindByID", ctx, id, repositories.Tracked).Return(nil, repositories.ErrNotFound).Once()

	err := service.Update(ctx, id, dto.ProductRequest{Name: "Milk"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	uow.products.AssertNotCalled(t, "Update", mock.Anything)
	uow.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	uow := newMockUnitOfWork()
	service := services.NewProductService(mockFactory{uow})

	product := newProduct("Milk", 2)
	uow.products.On("FindByID", ctx, product.ID, repositories.Tracked).Return(product, nil).Once()
	uow.products.On("Delete", product).Once()
	uow.On("Save", ctx).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, product.ID))
	uow.assertExpectations(t)

	// A second delete finds nothing.
	uow.products.On("FindByID", ctx, product.ID, repositories.Tracked).Return(nil, repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(ctx, product.ID), services.ErrNotFound)
	uow.AssertNumberOfCalls(t, "Save", 1)
}
