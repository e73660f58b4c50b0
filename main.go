package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fridgeapi/internal/config"
	"fridgeapi/internal/database"
	"fridgeapi/internal/handlers"
	"fridgeapi/internal/middleware"
	"fridgeapi/internal/repositories"
	"fridgeapi/internal/services"
	"fridgeapi/pkg/logger"
	"fridgeapi/pkg/rabbitmq"
)

const serviceName = "fridge-api"

func main() {
	// --- Configuration ---
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(serviceName, cfg.IsProduction())
	defer zlog.Sync()

	// --- Database ---
	db, err := database.Open(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			zlog.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
		}, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		zlog.Info("RABBITMQ_URL not set, stocking events are disabled")
	}

	app, err := NewApp(cfg, db, zlog, publisher)
	if err != nil {
		zlog.Fatal("failed to build app", zap.Error(err))
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	zlog.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		zlog.Error("error during fiber shutdown", zap.Error(err))
	}
	zlog.Info("server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, zlog *zap.Logger, publisher services.EventPublisher) (*fiber.App, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}
	if zlog == nil {
		zlog = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: errorHandler(zlog),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(zlog))
	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics(prometheus.NewRegistry(), serviceName)
		app.Use(metrics.Handler())
		app.Get("/metrics", metrics.Endpoint())
	}

	handlers.NewHealthHandler(db).RegisterRoutes(app)

	// --- Services ---
	uow := repositories.NewGORMUnitOfWorkFactory(db)
	fridgeModelService := services.NewFridgeModelService(uow)
	fridgeService := services.NewFridgeService(uow, cfg.RefreshProductsProcedure, publisher, zlog)
	productService := services.NewProductService(uow)

	// --- API Routes ---
	api := app.Group("/api")
	if cfg.JWTSecret != "" {
		api.Use(middleware.AuthRequired(cfg.JWTSecret, zlog))
	} else {
		zlog.Warn("JWT_SECRET not set, API routes are unauthenticated")
	}

	handlers.NewFridgeModelHandler(fridgeModelService, zlog).RegisterRoutes(api)
	handlers.NewFridgeHandler(fridgeService, zlog).RegisterRoutes(api)
	handlers.NewProductHandler(productService, zlog).RegisterRoutes(api)

	return app, nil
}

// errorHandler renders errors that escape the handlers. Fiber errors keep
// their status; everything else is an opaque 500.
func errorHandler(zlog *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		zlog.Error("unhandled error",
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
