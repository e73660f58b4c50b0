package handlers

import (
	"fridgeapi/internal/dto"
	"fridgeapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for the product catalogue.
type ProductHandler struct {
	service *services.ProductService
	log     *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *zap.Logger) *ProductHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductHandler{service: service, log: log}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	product, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	product, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return serviceError(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct overwrites an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if ok, err := bindBody(c, h.log, &req); !ok {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	if err := h.service.Update(c.UserContext(), id, req); err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, h.log, err, "Product not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
