package services

import (
	"errors"
	"fmt"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

var (
	ErrContentNotFound    = errors.New("page content not found")
	ErrInvalidContentType = errors.New("invalid content type")
)

type PageContentStore interface {
	FindAll() ([]models.PageContent, error)
	FindByKey(key string) (*models.PageContent, error)
	Create(content *models.PageContent) error
	Update(content *models.PageContent) error
}

type PageContentService struct {
	contents PageContentStore
}

func NewPageContentService(contents PageContentStore) *PageContentService {
	return &PageContentService{contents: contents}
}

func (s *PageContentService) GetAllContents() ([]models.PageContent, error) {
	return s.contents.FindAll()
}

func (s *PageContentService) GetContentByKey(key string) (*models.PageContent, error) {
	content, err := s.contents.FindByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up page content: %w", err)
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return content, nil
}

func (s *PageContentService) UpdateContent(key string, req *dto.UpdatePageContentRequest) (*models.PageContent, error) {
	content, err := s.GetContentByKey(key)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		content.Title = req.Title
	}
	if req.Content != nil {
		content.Content = *req.Content
	}
	if req.Type != nil {
		if !models.ValidContentType(*req.Type) {
			return nil, ErrInvalidContentType
		}
		content.Type = models.ContentType(*req.Type)
	}
	if req.IsActive != nil {
		content.IsActive = *req.IsActive
	}

	if err := s.contents.Update(content); err != nil {
		return nil, fmt.Errorf("failed to update page content: %w", err)
	}
	return content, nil
}

// UpsertContent creates the block when the key is new, otherwise overwrites
// the existing row in place.
func (s *PageContentService) UpsertContent(req *dto.UpsertPageContentRequest) (*models.PageContent, error) {
	contentType := models.ContentText
	if req.Type != "" {
		if !models.ValidContentType(req.Type) {
			return nil, ErrInvalidContentType
		}
		contentType = models.ContentType(req.Type)
	}

	existing, err := s.contents.FindByKey(req.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up page content: %w", err)
	}

	if existing == nil {
		content := &models.PageContent{
			ID:       uuid.New(),
			Key:      req.Key,
			Title:    req.Title,
			Content:  req.Content,
			Type:     contentType,
			IsActive: true,
		}
		if req.IsActive != nil {
			content.IsActive = *req.IsActive
		}
		if err := s.contents.Create(content); err != nil {
			return nil, fmt.Errorf("failed to create page content: %w", err)
		}
		return content, nil
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Type = contentType
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.contents.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update page content: %w", err)
	}
	return existing, nil
}
