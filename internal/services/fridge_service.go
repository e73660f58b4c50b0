package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fridgeapi/internal/dto"
	"fridgeapi/internal/mapper"
	"fridgeapi/internal/models"
	"fridgeapi/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Routing keys of the stocking events.
const (
	EventProductStocked    = "fridge.product.stocked"
	EventProductRemoved    = "fridge.product.removed"
	EventProductsRefreshed = "fridge.products.refreshed"
)

// StockEvent is published after a committed change to fridge contents.
type StockEvent struct {
	Type            string     `json:"type"`
	FridgeID        *uuid.UUID `json:"fridgeId,omitempty"`
	FridgeProductID *uuid.UUID `json:"fridgeProductId,omitempty"`
	ProductID       *uuid.UUID `json:"productId,omitempty"`
	Quantity        *int       `json:"quantity,omitempty"`
	OccurredAt      time.Time  `json:"occurredAt"`
}

// FridgeService handles business logic related to fridges and their contents.
type FridgeService struct {
	uow              repositories.UnitOfWorkFactory
	refreshProcedure string
	publisher        EventPublisher // optional
	log              *zap.Logger
}

// NewFridgeService creates a new FridgeService. refreshProcedure is the
// database command run by RefreshProducts. publisher may be nil.
func NewFridgeService(uow repositories.UnitOfWorkFactory, refreshProcedure string, publisher EventPublisher, log *zap.Logger) *FridgeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FridgeService{
		uow:              uow,
		refreshProcedure: refreshProcedure,
		publisher:        publisher,
		log:              log,
	}
}

// Create stores a new fridge and returns it with its assigned ID. The model
// reference is checked by the database when the change is saved.
func (s *FridgeService) Create(ctx context.Context, req dto.FridgeRequest) (*dto.FridgeResponse, error) {
	uow := s.uow.New()
	fridge := mapper.NewFridge(req)
	uow.Fridges().Create(fridge)
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create fridge: %w", err)
	}
	resp := mapper.FridgeResponse(fridge)
	return &resp, nil
}

// GetAll retrieves all fridges.
func (s *FridgeService) GetAll(ctx context.Context) ([]dto.FridgeResponse, error) {
	fridges, err := s.uow.New().Fridges().FindAll(ctx, repositories.Detached)
	if err != nil {
		return nil, err
	}
	return mapper.FridgeResponses(fridges), nil
}

// GetByID retrieves a single fridge. It returns ErrNotFound for unknown IDs.
func (s *FridgeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FridgeResponse, error) {
	fridge, err := s.uow.New().Fridges().FindByID(ctx, id, repositories.Detached)
	if err != nil {
		return nil, err
	}
	resp := mapper.FridgeResponse(fridge)
	return &resp, nil
}

// Update overwrites the fields of an existing fridge.
func (s *FridgeService) Update(ctx context.Context, id uuid.UUID, req dto.FridgeRequest) error {
	uow := s.uow.New()
	fridge, err := uow.Fridges().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	mapper.ApplyFridge(req, fridge)
	uow.Fridges().Update(fridge)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update fridge %s: %w", id, err)
	}
	return nil
}

// Delete removes a fridge together with its stocking records.
func (s *FridgeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uow.New()
	fridge, err := uow.Fridges().FindByID(ctx, id, repositories.Tracked)
	if err != nil {
		return err
	}
	uow.Fridges().Delete(fridge)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete fridge %s: %w", id, err)
	}
	return nil
}

// CreateProduct stocks a product in a fridge. It returns ErrNotFound when the
// fridge does not exist, without staging anything.
func (s *FridgeService) CreateProduct(ctx context.Context, fridgeID uuid.UUID, req dto.FridgeProductRequest) (*dto.FridgeProductResponse, error) {
	uow := s.uow.New()
	if _, err := uow.Fridges().FindByID(ctx, fridgeID, repositories.Detached); err != nil {
		return nil, err
	}

	stock := mapper.NewFridgeProduct(fridgeID, req)
	uow.FridgeProducts().Create(stock)
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to add product to fridge %s: %w", fridgeID, err)
	}

	product, err := uow.Products().FindByID(ctx, stock.ProductID, repositories.Detached)
	if err != nil {
		return nil, fmt.Errorf("failed to load stocked product: %w", err)
	}
	stock.Product = product

	s.publish(stockEvent(EventProductStocked, stock))
	resp := mapper.FridgeProductResponse(stock)
	return &resp, nil
}

// GetProducts lists the stocking records of a fridge with current product names.
func (s *FridgeService) GetProducts(ctx context.Context, fridgeID uuid.UUID) ([]dto.FridgeProductResponse, error) {
	uow := s.uow.New()
	if _, err := uow.Fridges().FindByID(ctx, fridgeID, repositories.Detached); err != nil {
		return nil, err
	}
	stock, err := uow.FridgeProducts().FindByFridge(ctx, fridgeID)
	if err != nil {
		return nil, err
	}
	return mapper.FridgeProductResponses(stock), nil
}

// GetProduct retrieves one stocking record of a fridge.
func (s *FridgeService) GetProduct(ctx context.Context, fridgeID, fridgeProductID uuid.UUID) (*dto.FridgeProductResponse, error) {
	uow := s.uow.New()
	stock, err := s.findStock(ctx, uow, fridgeID, fridgeProductID, repositories.Detached)
	if err != nil {
		return nil, err
	}
	product, err := uow.Products().FindByID(ctx, stock.ProductID, repositories.Detached)
	if err != nil {
		return nil, fmt.Errorf("failed to load stocked product: %w", err)
	}
	stock.Product = product

	resp := mapper.FridgeProductResponse(stock)
	return &resp, nil
}

// DeleteProduct removes one stocking record from a fridge.
func (s *FridgeService) DeleteProduct(ctx context.Context, fridgeID, fridgeProductID uuid.UUID) error {
	uow := s.uow.New()
	stock, err := s.findStock(ctx, uow, fridgeID, fridgeProductID, repositories.Tracked)
	if err != nil {
		return err
	}
	uow.FridgeProducts().Delete(stock)
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to remove product %s from fridge %s: %w", fridgeProductID, fridgeID, err)
	}

	s.publish(stockEvent(EventProductRemoved, stock))
	return nil
}

// RefreshProducts runs the configured replenishment procedure.
func (s *FridgeService) RefreshProducts(ctx context.Context) error {
	if err := s.uow.New().FridgeProducts().ExecuteProcedure(ctx, s.refreshProcedure); err != nil {
		return err
	}
	s.publish(StockEvent{Type: EventProductsRefreshed, OccurredAt: time.Now().UTC()})
	return nil
}

// findStock loads a stocking record and checks that it belongs to fridgeID.
func (s *FridgeService) findStock(ctx context.Context, uow repositories.UnitOfWork, fridgeID, fridgeProductID uuid.UUID, tracking repositories.Tracking) (*models.FridgeProduct, error) {
	stock, err := uow.FridgeProducts().FindByID(ctx, fridgeProductID, tracking)
	if err != nil {
		return nil, err
	}
	if stock.FridgeID != fridgeID {
		return nil, fmt.Errorf("fridge product %s not found in fridge %s: %w", fridgeProductID, fridgeID, ErrNotFound)
	}
	return stock, nil
}

func stockEvent(eventType string, stock *models.FridgeProduct) StockEvent {
	return StockEvent{
		Type:            eventType,
		FridgeID:        &stock.FridgeID,
		FridgeProductID: &stock.ID,
		ProductID:       &stock.ProductID,
		Quantity:        &stock.Quantity,
		OccurredAt:      time.Now().UTC(),
	}
}

// publish sends event if a publisher is configured. Failures are logged only;
// the change they describe is already committed.
func (s *FridgeService) publish(event StockEvent) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.log.Error("failed to marshal stock event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(event.Type, body); err != nil {
		s.log.Warn("failed to publish stock event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	s.log.Debug("published stock event", zap.String("type", event.Type))
}
