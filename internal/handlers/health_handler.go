package handlers

import (
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/database"
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cfg     *config.Config
	started time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := database.Ping(); err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.started).Seconds(),
		Environment: h.cfg.Env,
		Database:    dbStatus,
	})
}
