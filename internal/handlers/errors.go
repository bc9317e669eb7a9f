package handlers

import (
	"errors"
	"log/slog"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the services' sentinel errors onto HTTP responses.
// Anything unrecognized is an infrastructure failure: logged server-side,
// returned as an opaque 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return respond(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrTokenRequired):
		return respond(c, fiber.StatusBadRequest, "Refresh token is required")
	case errors.Is(err, services.ErrInvalidRefreshToken):
		return respond(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	case errors.Is(err, services.ErrAccountInactive):
		return respond(c, fiber.StatusUnauthorized, "Admin account is inactive")
	case errors.Is(err, services.ErrAdminNotFound),
		errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrContentNotFound),
		errors.Is(err, services.ErrMediaNotFound),
		errors.Is(err, services.ErrSubscriptionNotFound):
		return respond(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCategoryNotFound):
		return respond(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrSlugTaken),
		errors.Is(err, services.ErrCategoryTaken):
		return respond(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidContentType),
		errors.Is(err, services.ErrInvalidSubscriptionStatus):
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err)
	return respond(c, fiber.StatusInternalServerError, "Internal server error")
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Error(message))
}

func badRequest(c *fiber.Ctx, message string) error {
	return respond(c, fiber.StatusBadRequest, message)
}
