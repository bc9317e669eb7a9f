package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrSlugTaken      = errors.New("slug already exists")
	ErrInvalidStatus  = errors.New("invalid status value")
)

type ColumnStore interface {
	FindMany(q repository.ColumnQuery) ([]models.Column, int64, error)
	FindByID(id uuid.UUID) (*models.Column, error)
	FindBySlug(slug string) (*models.Column, error)
	Create(column *models.Column) error
	Update(column *models.Column) error
	Delete(id uuid.UUID) error
	IncrementViewCount(id uuid.UUID) error
}

type ColumnService struct {
	columns    ColumnStore
	categories CategoryStore
}

func NewColumnService(columns ColumnStore, categories CategoryStore) *ColumnService {
	return &ColumnService{columns: columns, categories: categories}
}

func (s *ColumnService) GetColumns(q repository.ColumnQuery) ([]dto.ColumnResponse, int64, error) {
	columns, total, err := s.columns.FindMany(q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list columns: %w", err)
	}
	out := make([]dto.ColumnResponse, 0, len(columns))
	for i := range columns {
		out = append(out, dto.NewColumnResponse(&columns[i]))
	}
	return out, total, nil
}

func (s *ColumnService) GetColumnByID(id uuid.UUID) (*dto.ColumnResponse, error) {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up column: %w", err)
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}
	resp := dto.NewColumnResponse(column)
	return &resp, nil
}

// GetColumnBySlug is the public read path; it bumps the view counter
// best-effort.
func (s *ColumnService) GetColumnBySlug(slug string) (*dto.ColumnResponse, error) {
	column, err := s.columns.FindBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up column: %w", err)
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}

	if err := s.columns.IncrementViewCount(column.ID); err != nil {
		slog.Warn("failed to increment view count", "column_id", column.ID, "error", err)
	} else {
		column.ViewCount++
	}

	resp := dto.NewColumnResponse(column)
	return &resp, nil
}

func (s *ColumnService) CreateColumn(authorID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	existing, err := s.columns.FindBySlug(req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up column: %w", err)
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	status := models.ColumnDraft
	if req.Status != "" {
		if !models.ValidColumnStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = models.ColumnStatus(req.Status)
	}

	column := &models.Column{
		ID:           uuid.New(),
		Title:        req.Title,
		Slug:         req.Slug,
		Content:      req.Content,
		Excerpt:      req.Excerpt,
		ThumbnailURL: req.ThumbnailURL,
		Status:       status,
		AuthorID:     authorID,
	}
	if status == models.ColumnPublished {
		now := time.Now()
		column.PublishedAt = &now
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		column.CategoryID = categoryID
	}

	if err := s.columns.Create(column); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return s.GetColumnByID(column.ID)
}

func (s *ColumnService) UpdateColumn(id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up column: %w", err)
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}

	if req.Slug != nil && *req.Slug != column.Slug {
		existing, err := s.columns.FindBySlug(*req.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to look up column: %w", err)
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
		column.Slug = *req.Slug
	}
	if req.Title != nil {
		column.Title = *req.Title
	}
	if req.Content != nil {
		column.Content = *req.Content
	}
	if req.Excerpt != nil {
		column.Excerpt = req.Excerpt
	}
	if req.ThumbnailURL != nil {
		column.ThumbnailURL = req.ThumbnailURL
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		column.CategoryID = categoryID
	}
	if req.Status != nil {
		if err := applyStatus(column, *req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.columns.Update(column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	return s.GetColumnByID(column.ID)
}

func (s *ColumnService) UpdateColumnStatus(id uuid.UUID, status string) (*dto.ColumnResponse, error) {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up column: %w", err)
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}

	if err := applyStatus(column, status); err != nil {
		return nil, err
	}
	if err := s.columns.Update(column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	return s.GetColumnByID(column.ID)
}

func (s *ColumnService) DeleteColumn(id uuid.UUID) error {
	column, err := s.columns.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to look up column: %w", err)
	}
	if column == nil {
		return ErrColumnNotFound
	}
	if err := s.columns.Delete(id); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}

// applyStatus validates the transition and stamps publishedAt the first time
// a column goes live.
func applyStatus(column *models.Column, status string) error {
	if !models.ValidColumnStatus(status) {
		return ErrInvalidStatus
	}
	next := models.ColumnStatus(status)
	if next == models.ColumnPublished && column.PublishedAt == nil {
		now := time.Now()
		column.PublishedAt = &now
	}
	column.Status = next
	return nil
}

func (s *ColumnService) resolveCategory(raw string) (*uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return &categoryID, nil
}
