package repository

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) FindMany(uploadedBy *uuid.UUID, page, limit int) ([]models.Media, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	base := r.db.Model(&models.Media{})
	if uploadedBy != nil {
		base = base.Where("uploaded_by = ?", *uploadedBy)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var media []models.Media
	err := base.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&media).Error
	if err != nil {
		return nil, 0, err
	}
	return media, total, nil
}

func (r *MediaRepository) FindByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *MediaRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Media{}, "id = ?", id).Error
}
