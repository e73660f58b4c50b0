package handlers

import (
	"fridgeapi/internal/dto"
	"fridgeapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	fridgeNotFound        = "Fridge not found"
	fridgeProductNotFound = "Product not found in fridge"
)

// FridgeHandler handles HTTP requests for fridges and their contents.
type FridgeHandler struct {
	service *services.FridgeService
	log     *zap.Logger
}

// NewFridgeHandler creates a new FridgeHandler.
func NewFridgeHandler(service *services.FridgeService, log *zap.Logger) *FridgeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FridgeHandler{service: service, log: log}
}

// RegisterRoutes registers the fridge routes with the Fiber app.
func (h *FridgeHandler) RegisterRoutes(router fiber.Router) {
	fridgeRoutes := router.Group("/fridges")
	// Must precede "/:id" so it is not taken for a fridge ID.
	fridgeRoutes.Get("/refresh-product", h.HandleRefreshProducts)

	fridgeRoutes.Get("/", h.HandleGetFridges)
	fridgeRoutes.Get("/:id", h.HandleGetFridgeByID)
	fridgeRoutes.Post("/", h.HandleCreateFridge)
	fridgeRoutes.Put("/:id", h.HandleUpdateFridge)
	fridgeRoutes.Delete("/:id", h.HandleDeleteFridge)

	fridgeRoutes.Get("/:id/products", h.HandleGetFridgeProducts)
	fridgeRoutes.Post("/:id/products", h.HandleAddFridgeProduct)
	fridgeRoutes.Get("/:id/products/:productId", h.HandleGetFridgeProduct)
	fridgeRoutes.Delete("/:id/products/:productId", h.HandleDeleteFridgeProduct)
}

// HandleGetFridges retrieves all fridges.
func (h *FridgeHandler) HandleGetFridges(c *fiber.Ctx) error {
	fridges, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.JSON(fridges)
}

// HandleGetFridgeByID retrieves a single fridge by its ID.
func (h *FridgeHandler) HandleGetFridgeByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	fridge, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	return c.JSON(fridge)
}

// HandleCreateFridge creates a new fridge. An unknown modelId fails the
// foreign key on save and surfaces as 500.
func (h *FridgeHandler) HandleCreateFridge(c *fiber.Ctx) error {
	var req dto.FridgeRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	fridge, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fridge)
}

// HandleUpdateFridge overwrites an existing fridge.
func (h *FridgeHandler) HandleUpdateFridge(c *fiber.Ctx) error {
	var req dto.FridgeRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	if err := h.service.Update(c.UserContext(), id, req); err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteFridge deletes a fridge and everything stocked in it.
func (h *FridgeHandler) HandleDeleteFridge(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetFridgeProducts lists what is stocked in a fridge.
func (h *FridgeHandler) HandleGetFridgeProducts(c *fiber.Ctx) error {
	fridgeID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	stock, err := h.service.GetProducts(c.UserContext(), fridgeID)
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	return c.JSON(stock)
}

// HandleAddFridgeProduct stocks a product in a fridge.
func (h *FridgeHandler) HandleAddFridgeProduct(c *fiber.Ctx) error {
	var req dto.FridgeProductRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	fridgeID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	stock, err := h.service.CreateProduct(c.UserContext(), fridgeID, req)
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

// HandleGetFridgeProduct retrieves one stocking record of a fridge.
func (h *FridgeHandler) HandleGetFridgeProduct(c *fiber.Ctx) error {
	fridgeID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	fridgeProductID, err := idParam(c, "productId")
	if err != nil {
		return serviceError(c, h.log, err, fridgeProductNotFound)
	}
	stock, err := h.service.GetProduct(c.UserContext(), fridgeID, fridgeProductID)
	if err != nil {
		return serviceError(c, h.log, err, fridgeProductNotFound)
	}
	return c.JSON(stock)
}

// HandleDeleteFridgeProduct removes one stocking record from a fridge.
func (h *FridgeHandler) HandleDeleteFridgeProduct(c *fiber.Ctx) error {
	fridgeID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, fridgeNotFound)
	}
	fridgeProductID, err := idParam(c, "productId")
	if err != nil {
		return serviceError(c, h.log, err, fridgeProductNotFound)
	}
	if err := h.service.DeleteProduct(c.UserContext(), fridgeID, fridgeProductID); err != nil {
		return serviceError(c, h.log, err, fridgeProductNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRefreshProducts runs the replenishment procedure.
func (h *FridgeHandler) HandleRefreshProducts(c *fiber.Ctx) error {
	if err := h.service.RefreshProducts(c.UserContext()); err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
