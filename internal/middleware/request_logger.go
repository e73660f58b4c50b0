package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger logs one entry per processed request.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := []zap.Field{
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", statusOf(c, err)),
			zap.Int("bytes", len(c.Response().Body())),
			zap.String("latency", time.Since(start).String()),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		log.Info("http request processed", fields...)
		return err
	}
}

// statusOf reports the status the response will carry. Errors returned up the
// chain are only turned into a response by the app's error handler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if e, ok := err.(*fiber.Error); ok {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
