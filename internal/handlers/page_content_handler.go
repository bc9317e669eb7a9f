package handlers

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type PageContentHandler struct {
	contentService *services.PageContentService
}

func NewPageContentHandler(contentService *services.PageContentService) *PageContentHandler {
	return &PageContentHandler{contentService: contentService}
}

func (h *PageContentHandler) List(c *fiber.Ctx) error {
	contents, err := h.contentService.GetAllContents()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"contents": contents}))
}

func (h *PageContentHandler) Get(c *fiber.Ctx) error {
	content, err := h.contentService.GetContentByKey(c.Params("key"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"content": content}))
}

func (h *PageContentHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePageContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	content, err := h.contentService.UpdateContent(c.Params("key"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"content": content}))
}

func (h *PageContentHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertPageContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	content, err := h.contentService.UpsertContent(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"content": content}))
}
