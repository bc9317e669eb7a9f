package services

import (
	"errors"
	"fmt"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryTaken    = errors.New("category name or slug already exists")
)

type CategoryStore interface {
	FindAll(isActive *bool) ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetCategories(isActive *bool) ([]models.Category, error) {
	return s.categories.FindAll(isActive)
}

func (s *CategoryService) GetCategoryByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	if err := s.checkTaken(req.Name, req.Slug, uuid.Nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		parent, err := s.categories.FindByID(parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up parent category: %w", err)
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
		category.ParentID = &parentID
	}

	if err := s.categories.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	name := category.Name
	if req.Name != nil {
		name = *req.Name
	}
	slug := category.Slug
	if req.Slug != nil {
		slug = *req.Slug
	}
	if err := s.checkTaken(name, slug, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.Slug = slug
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		category.ParentID = &parentID
	}

	if err := s.categories.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}
	if err := s.categories.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// checkTaken enforces name and slug uniqueness, ignoring the row being
// updated (self identified by UUID; uuid.Nil on create).
func (s *CategoryService) checkTaken(name, slug string, self uuid.UUID) error {
	byName, err := s.categories.FindByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if byName != nil && byName.ID != self {
		return ErrCategoryTaken
	}
	bySlug, err := s.categories.FindBySlug(slug)
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if bySlug != nil && bySlug.ID != self {
		return ErrCategoryTaken
	}
	return nil
}
