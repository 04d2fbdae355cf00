package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/videostream-app/videostream-go/internal/handler"
	"github.com/videostream-app/videostream-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video        *handler.VideoHandler
	Submission   *handler.SubmissionHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Presentation and legacy routes
	app.Get("/", handler.GalleryPage())
	app.Get("/videos", h.Video.List)

	catalogLimit := middleware.NewCatalogRateLimiter().Handler()
	submitLimit := middleware.NewSubmitRateLimiter().Handler()

	// Public API routes
	api := app.Group("/api")
	api.Get("/videos", h.Video.List, catalogLimit)
	api.Get("/video/:id", h.Video.GetByID, catalogLimit)
	api.Get("/video/:id/recommended", h.Video.Recommended, catalogLimit)
	api.Get("/category/:name", h.Video.ByCategory, catalogLimit)
	api.Get("/search", h.Video.Search, catalogLimit)
	api.Post("/submit-video", h.Submission.Submit, submitLimit)

	// Admin routes
	admin := api.Group("/admin")
	admin.Get("/videos", h.Video.List)
	admin.Put("/videos/:id", h.Video.Update)
	admin.Delete("/videos/:id", h.Video.Delete)
	admin.Get("/submissions", h.Submission.ListPending)
	admin.Post("/submissions/:id/approve", h.Submission.Approve)
	admin.Post("/submissions/:id/reject", h.Submission.Reject)
	admin.Get("/notifications", h.Notification.List)
	admin.Post("/notifications/:id/read", h.Notification.MarkRead)
}
