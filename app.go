package main

import (
	"carpetstore/internal/handlers"
	"carpetstore/internal/i18n"
	"carpetstore/internal/mediator"
	"carpetstore/internal/middleware"
	"carpetstore/internal/repositories"
	"carpetstore/internal/services"
	"carpetstore/internal/validation"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the resources the application is assembled from.
type Deps struct {
	DB             *gorm.DB
	Alerts         services.Publisher
	Log            *zap.Logger
	DefaultCulture string
	// RequestLog enables the fiber access log.
	RequestLog bool
}

// NewApp wires repositories, services and handlers into a Fiber app.
func NewApp(deps Deps) (*fiber.App, error) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	if deps.DefaultCulture == "" {
		deps.DefaultCulture = i18n.DefaultLocale
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, err
	}
	validator, err := validation.NewValidator(catalog)
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	carpetRepo := repositories.NewGORMCarpetRepository(deps.DB)
	categoryRepo := repositories.NewGORMCategoryRepository(deps.DB)

	// --- Services ---
	carpetService := services.NewCarpetService(carpetRepo, deps.Alerts, log)
	categoryService := services.NewCategoryService(categoryRepo, catalog)

	m := mediator.New(log)
	services.Register(m, validator, categoryRepo, carpetService, categoryService)

	// --- Handlers ---
	carpetHandler := handlers.NewCarpetHandler(m, log)
	categoryHandler := handlers.NewCategoryHandler(m, log)
	cultureHandler := handlers.NewCultureHandler(catalog)

	app := fiber.New(fiber.Config{
		AppName: "carpetstore",
	})

	// --- Middleware ---
	app.Use(recover.New())
	if deps.RequestLog {
		app.Use(fiberlogger.New())
	}
	app.Use(middleware.Locale(catalog, deps.DefaultCulture))

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	carpetHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	cultureHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		code, status, database := fiber.StatusOK, "healthy", "connected"
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			code, status, database = fiber.StatusServiceUnavailable, "unhealthy", "unreachable"
		}
		alerts := "disabled"
		if deps.Alerts != nil {
			alerts = "enabled"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"alerts":   alerts,
		})
	})

	return app, nil
}
