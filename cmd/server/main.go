package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/database"
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/handlers"
	"github.com/agencyworks/agency-cms/internal/logging"
	"github.com/agencyworks/agency-cms/internal/middleware"
	"github.com/agencyworks/agency-cms/internal/repository"
	"github.com/agencyworks/agency-cms/internal/routes"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/token"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Refuse to start without both signing secrets; issuing tokens under an
	// empty secret would be a silent security hole.
	codec, err := token.NewCodec(cfg)
	if err != nil {
		slog.Error("JWT configuration invalid", "error", err)
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Repositories
	adminRepo := repository.NewAdminRepository(database.DB)
	refreshTokenRepo := repository.NewRefreshTokenRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	columnRepo := repository.NewColumnRepository(database.DB)
	pageContentRepo := repository.NewPageContentRepository(database.DB)
	mediaRepo := repository.NewMediaRepository(database.DB)
	subscriptionRepo := repository.NewSubscriptionRepository(database.DB)

	// Services
	authService := services.NewAuthService(adminRepo, refreshTokenRepo, codec)
	categoryService := services.NewCategoryService(categoryRepo)
	columnService := services.NewColumnService(columnRepo, categoryRepo)
	pageContentService := services.NewPageContentService(pageContentRepo)
	mediaService := services.NewMediaService(mediaRepo, cfg)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	columnHandler := handlers.NewColumnHandler(columnService)
	pageContentHandler := handlers.NewPageContentHandler(pageContentService)
	mediaHandler := handlers.NewMediaHandler(mediaService, cfg)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.MaxUploadSize) + 1024*1024,
		ErrorHandler: errorHandler,
	})

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
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg,
		authHandler, categoryHandler, columnHandler,
		pageContentHandler, mediaHandler, subscriptionHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// errorHandler renders any error that escaped the handlers as the uniform
// {status, message} envelope. 5xx details stay server-side.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.Error(message))
}
