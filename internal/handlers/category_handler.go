package handlers

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var isActive *bool
	switch c.Query("isActive") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	categories, err := h.categoryService.GetCategories(isActive)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"categories": categories}))
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"category": category}))
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"category": category}))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"category": category}))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
