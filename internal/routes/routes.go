package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceforher/report-intake/internal/config"
	"github.com/voiceforher/report-intake/internal/handlers"
	"github.com/voiceforher/report-intake/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	staticHandler *handlers.StaticHandler,
) {
	// Rate limit: RATE_LIMIT_MAX req per RATE_LIMIT_WINDOW per IP
	app.Use(middleware.RateLimit(cfg))

	app.Get("/health", healthHandler.Check)

	// Public submission and aggregate stats
	app.Post("/reports", reportHandler.SubmitReport)
	app.Get("/reports-summary", reportHandler.ReportSummary)

	// Full listing, gated when configured
	if cfg.ReportsRequireAuth {
		app.Get("/reports", middleware.JWTProtected(cfg), reportHandler.ListReports)
	} else {
		app.Get("/reports", reportHandler.ListReports)
	}

	// Bundled frontend: serve files, fall back to index.html
	if staticHandler != nil && staticHandler.Dir() != "" {
		app.Static("/", staticHandler.Dir())
		app.Get("/*", staticHandler.Index)
	}
}
