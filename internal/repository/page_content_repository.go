package repository

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/models"
	"gorm.io/gorm"
)

type PageContentRepository struct {
	db *gorm.DB
}

func NewPageContentRepository(db *gorm.DB) *PageContentRepository {
	return &PageContentRepository{db: db}
}

func (r *PageContentRepository) FindAll() ([]models.PageContent, error) {
	var contents []models.PageContent
	if err := r.db.Order("key asc").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *PageContentRepository) FindByKey(key string) (*models.PageContent, error) {
	var content models.PageContent
	err := r.db.Where("key = ?", key).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *PageContentRepository) Create(content *models.PageContent) error {
	return r.db.Create(content).Error
}

func (r *PageContentRepository) Update(content *models.PageContent) error {
	return r.db.Save(content).Error
}
