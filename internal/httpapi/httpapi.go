// Package httpapi exposes the analysis pipeline over HTTP.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/talentlens/talentlens/internal/contract"
)

// NewApp builds the Fiber application with all routes registered.
// It is exposed for unit testing via app.Test.
func NewApp(cfg *contract.Config, analyzer contract.FeedbackAnalyzer, store contract.HistoryStore) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "TalentLens API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	h := &apiHandler{
		cfg:      cfg,
		analyzer: analyzer,
		store:    store,
	}

	// Routes
	api := app.Group("/api/v1")
	api.Get("/health", h.handleHealth)
	api.Get("/dimensions", h.handleDimensions)
	api.Post("/analyze", h.handleAnalyze)
	api.Post("/notes", h.handleNotes)
	api.Get("/history", h.handleHistory)
	api.Get("/history/:candidate_id", h.handleCandidateHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentLens API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"GET /api/v1/dimensions",
				"POST /api/v1/analyze",
				"POST /api/v1/notes",
				"GET /api/v1/history",
				"GET /api/v1/history/:candidate_id",
			},
		})
	})

	return app
}

// StartServer builds the app and blocks serving on the configured address.
func StartServer(cfg *contract.Config, analyzer contract.FeedbackAnalyzer, store contract.HistoryStore) error {
	app := NewApp(cfg, analyzer, store)
	return app.Listen(cfg.ServeAddr)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
