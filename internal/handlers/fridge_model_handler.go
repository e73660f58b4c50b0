package handlers

import (
	"fridgeapi/internal/dto"
	"fridgeapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FridgeModelHandler handles HTTP requests for fridge models.
type FridgeModelHandler struct {
	service *services.FridgeModelService
	log     *zap.Logger
}

// NewFridgeModelHandler creates a new FridgeModelHandler.
func NewFridgeModelHandler(service *services.FridgeModelService, log *zap.Logger) *FridgeModelHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FridgeModelHandler{service: service, log: log}
}

// RegisterRoutes registers the fridge model routes with the Fiber app.
func (h *FridgeModelHandler) RegisterRoutes(router fiber.Router) {
	modelRoutes := router.Group("/fridge-models")
	modelRoutes.Get("/", h.HandleGetFridgeModels)
	modelRoutes.Get("/:id", h.HandleGetFridgeModelByID)
	modelRoutes.Post("/", h.HandleCreateFridgeModel)
	modelRoutes.Put("/:id", h.HandleUpdateFridgeModel)
	modelRoutes.Delete("/:id", h.HandleDeleteFridgeModel)
}

// HandleGetFridgeModels retrieves all fridge models.
func (h *FridgeModelHandler) HandleGetFridgeModels(c *fiber.Ctx) error {
	fridgeModels, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.JSON(fridgeModels)
}

// HandleGetFridgeModelByID retrieves a single fridge model by its ID.
func (h *FridgeModelHandler) HandleGetFridgeModelByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	model, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	return c.JSON(model)
}

// HandleCreateFridgeModel creates a new fridge model.
func (h *FridgeModelHandler) HandleCreateFridgeModel(c *fiber.Ctx) error {
	var req dto.FridgeModelRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	model, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(model)
}

// HandleUpdateFridgeModel overwrites an existing fridge model.
func (h *FridgeModelHandler) HandleUpdateFridgeModel(c *fiber.Ctx) error {
	var req dto.FridgeModelRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	if err := h.service.Update(c.UserContext(), id, req); err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteFridgeModel deletes a fridge model.
func (h *FridgeModelHandler) HandleDeleteFridgeModel(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, h.log, err, "Fridge model not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
