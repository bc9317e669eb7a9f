package repository

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ColumnQuery is the filter/sort/pagination surface of the public and admin
// column listings. Zero values mean "no filter".
type ColumnQuery struct {
	Status     models.ColumnStatus
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
	Search     string
	Page       int
	Limit      int
	OrderBy    string // createdAt | publishedAt | viewCount | title
	Descending bool
}

// orderColumns whitelists sortable fields so request input never reaches the
// ORDER BY clause verbatim.
var orderColumns = map[string]string{
	"createdAt":   "created_at",
	"publishedAt": "published_at",
	"viewCount":   "view_count",
	"title":       "title",
}

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) FindMany(q ColumnQuery) ([]models.Column, int64, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	base := r.db.Model(&models.Column{})
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}
	if q.CategoryID != nil {
		base = base.Where("category_id = ?", *q.CategoryID)
	}
	if q.AuthorID != nil {
		base = base.Where("author_id = ?", *q.AuthorID)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		base = base.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = "created_at"
	}
	dir := "asc"
	if q.Descending {
		dir = "desc"
	}

	var columns []models.Column
	err := base.
		Preload("Author").
		Preload("Category").
		Order(col + " " + dir).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&columns).Error
	if err != nil {
		return nil, 0, err
	}
	return columns, total, nil
}

func (r *ColumnRepository) FindByID(id uuid.UUID) (*models.Column, error) {
	var column models.Column
	err := r.db.Preload("Author").Preload("Category").First(&column, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) FindBySlug(slug string) (*models.Column, error) {
	var column models.Column
	err := r.db.Preload("Author").Preload("Category").Where("slug = ?", slug).First(&column).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) Create(column *models.Column) error {
	return r.db.Create(column).Error
}

func (r *ColumnRepository) Update(column *models.Column) error {
	return r.db.Save(column).Error
}

func (r *ColumnRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Column{}, "id = ?", id).Error
}

// IncrementViewCount bumps the counter atomically in the database rather than
// read-modify-write in Go.
func (r *ColumnRepository) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&models.Column{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
