package dto

import (
	"time"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

type CreateColumnRequest struct {
	Title        string  `json:"title" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Content      string  `json:"content" validate:"required"`
	Excerpt      *string `json:"excerpt"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Status       string  `json:"status"`
	CategoryID   *string `json:"categoryId"`
}

type UpdateColumnRequest struct {
	Title        *string `json:"title"`
	Slug         *string `json:"slug"`
	Content      *string `json:"content"`
	Excerpt      *string `json:"excerpt"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Status       *string `json:"status"`
	CategoryID   *string `json:"categoryId"`
}

type UpdateColumnStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AuthorRef and CategoryRef are the trimmed relation projections embedded in
// column responses.
type AuthorRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type ColumnResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Content      string              `json:"content"`
	Excerpt      *string             `json:"excerpt"`
	ThumbnailURL *string             `json:"thumbnailUrl"`
	Status       models.ColumnStatus `json:"status"`
	AuthorID     uuid.UUID           `json:"authorId"`
	CategoryID   *uuid.UUID          `json:"categoryId"`
	ViewCount    int                 `json:"viewCount"`
	PublishedAt  *time.Time          `json:"publishedAt"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Author       AuthorRef           `json:"author"`
	Category     *CategoryRef        `json:"category"`
}

func NewColumnResponse(c *models.Column) ColumnResponse {
	resp := ColumnResponse{
		ID:           c.ID,
		Title:        c.Title,
		Slug:         c.Slug,
		Content:      c.Content,
		Excerpt:      c.Excerpt,
		ThumbnailURL: c.ThumbnailURL,
		Status:       c.Status,
		AuthorID:     c.AuthorID,
		CategoryID:   c.CategoryID,
		ViewCount:    c.ViewCount,
		PublishedAt:  c.PublishedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Author: AuthorRef{
			ID:    c.Author.ID,
			Name:  c.Author.Name,
			Email: c.Author.Email,
		},
	}
	if c.Category != nil {
		resp.Category = &CategoryRef{
			ID:   c.Category.ID,
			Name: c.Category.Name,
			Slug: c.Category.Slug,
		}
	}
	return resp
}
