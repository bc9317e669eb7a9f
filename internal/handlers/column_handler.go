package handlers

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/middleware"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/repository"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columnService *services.ColumnService
}

func NewColumnHandler(columnService *services.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

func (h *ColumnHandler) List(c *fiber.Ctx) error {
	q := repository.ColumnQuery{
		Search:     c.Query("search"),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		OrderBy:    c.Query("orderBy", "createdAt"),
		Descending: c.Query("orderDirection", "desc") != "asc",
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidColumnStatus(status) {
			return badRequest(c, "Invalid status value")
		}
		q.Status = models.ColumnStatus(status)
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid categoryId")
		}
		q.CategoryID = &id
	}
	if raw := c.Query("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid authorId")
		}
		q.AuthorID = &id
	}

	columns, total, err := h.columnService.GetColumns(q)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"columns":    columns,
		"pagination": dto.NewPagination(q.Page, q.Limit, total),
	}))
}

func (h *ColumnHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}

	column, err := h.columnService.GetColumnByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"column": column}))
}

func (h *ColumnHandler) GetBySlug(c *fiber.Ctx) error {
	column, err := h.columnService.GetColumnBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"column": column}))
}

func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	authorID, err := uuid.Parse(principal.AdminID)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req dto.CreateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	column, err := h.columnService.CreateColumn(authorID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"column": column}))
}

func (h *ColumnHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}

	var req dto.UpdateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	column, err := h.columnService.UpdateColumn(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"column": column}))
}

func (h *ColumnHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}

	var req dto.UpdateColumnStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	column, err := h.columnService.UpdateColumnStatus(id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"column": column}))
}

func (h *ColumnHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}

	if err := h.columnService.DeleteColumn(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
