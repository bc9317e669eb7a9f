package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaStore interface {
	FindMany(uploadedBy *uuid.UUID, page, limit int) ([]models.Media, int64, error)
	FindByID(id uuid.UUID) (*models.Media, error)
	Create(media *models.Media) error
	Delete(id uuid.UUID) error
}

type MediaService struct {
	media MediaStore
	cfg   *config.Config
}

func NewMediaService(media MediaStore, cfg *config.Config) *MediaService {
	return &MediaService{media: media, cfg: cfg}
}

func (s *MediaService) GetMediaList(uploadedBy *uuid.UUID, page, limit int) ([]models.Media, int64, error) {
	return s.media.FindMany(uploadedBy, page, limit)
}

func (s *MediaService) GetMediaByID(id uuid.UUID) (*models.Media, error) {
	media, err := s.media.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up media: %w", err)
	}
	if media == nil {
		return nil, ErrMediaNotFound
	}
	return media, nil
}

// RegisterUpload records an already-saved file. Image dimensions are probed
// from disk; a file that fails to decode keeps zero dimensions rather than
// failing the upload.
func (s *MediaService) RegisterUpload(uploaderID uuid.UUID, originalName, fileName, mimeType string, size int64) (*models.Media, error) {
	width, height := 0, 0
	if img, err := imaging.Open(filepath.Join(s.cfg.UploadDir, fileName)); err == nil {
		bounds := img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	} else {
		slog.Warn("failed to probe image dimensions", "file", fileName, "error", err)
	}

	media := &models.Media{
		ID:           uuid.New(),
		OriginalName: originalName,
		FileName:     fileName,
		MimeType:     mimeType,
		Size:         size,
		URL:          s.cfg.BaseURL + "/" + s.cfg.UploadDir + "/" + fileName,
		Width:        width,
		Height:       height,
		UploadedBy:   uploaderID,
	}
	if err := s.media.Create(media); err != nil {
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}
	return media, nil
}

// DeleteMedia removes the record and then the file; a missing file on disk is
// logged, not surfaced.
func (s *MediaService) DeleteMedia(id uuid.UUID) error {
	media, err := s.GetMediaByID(id)
	if err != nil {
		return err
	}
	if err := s.media.Delete(id); err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}
	if err := os.Remove(filepath.Join(s.cfg.UploadDir, media.FileName)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove media file", "file", media.FileName, "error", err)
	}
	return nil
}
