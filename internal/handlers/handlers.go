package handlers

import (
	"bytes"
	"errors"
	"fmt"

	"fridgeapi/internal/dto"
	"fridgeapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var nullBody = []byte("null")

// bindBody decodes and validates the JSON body into req. When it returns
// false the error response has already been written.
func bindBody(c *fiber.Ctx, log *zap.Logger, req any) (bool, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, nullBody) {
		log.Warn("request body missing", zap.String("path", utils.CopyString(c.Path())))
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body is required",
		})
	}

	if err := c.App().Config().JSONDecoder(body, req); err != nil {
		log.Warn("request body malformed", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := dto.Validate(req); err != nil {
		var fieldErrors dto.FieldErrors
		if !errors.As(err, &fieldErrors) {
			return false, err
		}
		log.Warn("request body invalid", zap.String("path", utils.CopyString(c.Path())), zap.Error(fieldErrors))
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}
	return true, nil
}

// idParam parses a route parameter as an identifier. A malformed value can
// never name a stored entity, so it is reported as not found.
func idParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed id %q: %w", c.Params(name), services.ErrNotFound)
	}
	return id, nil
}

// serviceError writes the response for a failed service call. Absent
// entities become 404; anything else is logged and surfaced as a bare 500.
func serviceError(c *fiber.Ctx, log *zap.Logger, err error, notFoundMessage string) error {
	if errors.Is(err, services.ErrNotFound) {
		log.Info("entity not found", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMessage,
		})
	}
	log.Error("request failed",
		zap.String("method", utils.CopyString(c.Method())),
		zap.String("path", utils.CopyString(c.Path())),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
