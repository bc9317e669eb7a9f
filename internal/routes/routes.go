package routes

import (
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/handlers"
	"github.com/agencyworks/agency-cms/internal/middleware"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	columnHandler *handlers.ColumnHandler,
	pageContentHandler *handlers.PageContentHandler,
	mediaHandler *handlers.MediaHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	healthHandler *handlers.HealthHandler,
) {
	protected := middleware.Protected(cfg)
	adminOnly := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin)

	// Uploaded files are served straight from disk.
	app.Static("/"+cfg.UploadDir, "./"+cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", protected, authHandler.Me)
	auth.Post("/admins", protected, middleware.RequireRoles(models.RoleSuperAdmin), authHandler.CreateAdmin)

	// Categories — public reads, authenticated writes
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("/", protected, categoryHandler.Create)
	categories.Put("/:id", protected, categoryHandler.Update)
	categories.Delete("/:id", protected, adminOnly, categoryHandler.Delete)

	// Columns — public reads, authenticated writes
	columns := api.Group("/columns")
	columns.Get("/", columnHandler.List)
	columns.Get("/slug/:slug", columnHandler.GetBySlug)
	columns.Get("/:id", columnHandler.Get)
	columns.Post("/", protected, columnHandler.Create)
	columns.Put("/:id", protected, columnHandler.Update)
	columns.Patch("/:id/status", protected, columnHandler.UpdateStatus)
	columns.Delete("/:id", protected, adminOnly, columnHandler.Delete)

	// Page contents — public reads, authenticated writes
	pageContents := api.Group("/page-contents")
	pageContents.Get("/", pageContentHandler.List)
	pageContents.Get("/:key", pageContentHandler.Get)
	pageContents.Put("/:key", protected, pageContentHandler.Update)
	pageContents.Post("/", protected, pageContentHandler.Upsert)

	// Media — public reads, authenticated upload/delete
	media := api.Group("/media")
	media.Get("/", mediaHandler.List)
	media.Post("/upload", protected, mediaHandler.Upload)
	media.Get("/:id", mediaHandler.Get)
	media.Delete("/:id", protected, adminOnly, mediaHandler.Delete)

	// Subscriptions — public form submit and counter, admin management
	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/", subscriptionHandler.Create)
	subscriptions.Get("/count", subscriptionHandler.Count)
	subscriptions.Get("/", protected, subscriptionHandler.List)
	subscriptions.Get("/:id", protected, subscriptionHandler.Get)
	subscriptions.Patch("/:id/status", protected, subscriptionHandler.UpdateStatus)
	subscriptions.Delete("/:id", protected, adminOnly, subscriptionHandler.Delete)
}
