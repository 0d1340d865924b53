package server

import (
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/voiceforher/report-intake/internal/config"
	"github.com/voiceforher/report-intake/internal/handlers"
	"github.com/voiceforher/report-intake/internal/middleware"
	"github.com/voiceforher/report-intake/internal/routes"
	"github.com/voiceforher/report-intake/internal/services"
	"gorm.io/gorm"
)

// New assembles the Fiber app: global middleware, handlers and routes.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             1 * 1024 * 1024,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Sentry middleware; a no-op hub when SENTRY_DSN is unset
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	reportService := services.NewReportService(db, cfg.ListIncludeDescription)

	routes.Setup(app, cfg,
		handlers.NewReportHandler(reportService),
		handlers.NewHealthHandler(db),
		handlers.NewStaticHandler(cfg.StaticDir),
	)

	return app
}
