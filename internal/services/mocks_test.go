package services_test

import (
	"context"

	"fridgeapi/internal/models"
	"fridgeapi/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repositories.Repository.
// MethodCalled is used instead of Called because the caller name of a
// generic method cannot be resolved reliably.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindAll(ctx context.Context, tracking repositories.Tracking) ([]*T, error) {
	args := m.MethodCalled("FindAll", ctx, tracking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id uuid.UUID, tracking repositories.Tracking) (*T, error) {
	args := m.MethodCalled("FindByID", ctx, id, tracking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Create(entity *T) { m.MethodCalled("Create", entity) }
func (m *MockRepository[T]) Update(entity *T) { m.MethodCalled("Update", entity) }
func (m *MockRepository[T]) Delete(entity *T) { m.MethodCalled("Delete", entity) }

// MockFridgeProductRepository is a mock implementation of repositories.FridgeProductRepository.
type MockFridgeProductRepository struct {
	MockRepository[models.FridgeProduct]
}

func (m *MockFridgeProductRepository) FindByFridge(ctx context.Context, fridgeID uuid.UUID) ([]*models.FridgeProduct, error) {
	args := m.MethodCalled("FindByFridge", ctx, fridgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FridgeProduct), args.Error(1)
}

func (m *MockFridgeProductRepository) ExecuteProcedure(ctx context.Context, command string) error {
	args := m.MethodCalled("ExecuteProcedure", ctx, command)
	return args.Error(0)
}

// MockUnitOfWork is a mock implementation of repositories.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
	fridgeModels   *MockRepository[models.FridgeModel]
	fridges        *MockRepository[models.Fridge]
	fridgeProducts *MockFridgeProductRepository
	products       *MockRepository[models.Product]
}

func newMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		fridgeModels:   new(MockRepository[models.FridgeModel]),
		fridges:        new(MockRepository[models.Fridge]),
		fridgeProducts: new(MockFridgeProductRepository),
		products:       new(MockRepository[models.Product]),
	}
}

func (u *MockUnitOfWork) FridgeModels() repositories.FridgeModelRepository { return u.fridgeModels }
func (u *MockUnitOfWork) Fridges() repositories.FridgeRepository           { return u.fridges }
func (u *MockUnitOfWork) FridgeProducts() repositories.FridgeProductRepository {
	return u.fridgeProducts
}
func (u *MockUnitOfWork) Products() repositories.ProductRepository { return u.products }

func (u *MockUnitOfWork) Save(ctx context.Context) error {
	args := u.Called(ctx)
	return args.Error(0)
}

// assertExpectations checks the unit of work and every repository mock.
func (u *MockUnitOfWork) assertExpectations(t mock.TestingT) {
	u.AssertExpectations(t)
	u.fridgeModels.AssertExpectations(t)
	u.fridges.AssertExpectations(t)
	u.fridgeProducts.AssertExpectations(t)
	u.products.AssertExpectations(t)
}

// mockFactory hands out the same unit of work on every call.
type mockFactory struct {
	uow *MockUnitOfWork
}

func (f mockFactory) New() repositories.UnitOfWork { return f.uow }

// MockPublisher is a mock implementation of services.EventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

// assignKey mimics the key assignment a real repository does on Create.
func assignKey[T any, PT interface {
	*T
	AssignKey()
}](args mock.Arguments) {
	PT(args.Get(0).(*T)).AssignKey()
}
