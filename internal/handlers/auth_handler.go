package handlers

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/middleware"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	adminID, err := uuid.Parse(principal.AdminID)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	admin, err := h.authService.GetAdminByID(adminID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"admin": dto.NewAdminResponse(admin)}))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Logout(req.RefreshToken)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	admin, err := h.authService.CreateAdmin(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"admin": dto.NewAdminResponse(admin)}))
}
