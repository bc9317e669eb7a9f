package handlers

import (
	"path/filepath"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/middleware"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type MediaHandler struct {
	mediaService *services.MediaService
	cfg          *config.Config
}

func NewMediaHandler(mediaService *services.MediaService, cfg *config.Config) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, cfg: cfg}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	uploaderID, err := uuid.Parse(principal.AdminID)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}
	if fileHeader.Size > h.cfg.MaxUploadSize {
		return badRequest(c, "File exceeds the maximum upload size")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		return badRequest(c, "Only image files are allowed")
	}

	fileName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(h.cfg.UploadDir, fileName)); err != nil {
		return serviceError(c, err)
	}

	media, err := h.mediaService.RegisterUpload(uploaderID, fileHeader.Filename, fileName, mimeType, fileHeader.Size)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"media": media}))
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	var uploadedBy *uuid.UUID
	if raw := c.Query("uploadedBy"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid uploadedBy")
		}
		uploadedBy = &id
	}

	media, total, err := h.mediaService.GetMediaList(uploadedBy, page, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"media":      media,
		"pagination": dto.NewPagination(page, limit, total),
	}))
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid media id")
	}

	media, err := h.mediaService.GetMediaByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"media": media}))
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid media id")
	}

	if err := h.mediaService.DeleteMedia(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
