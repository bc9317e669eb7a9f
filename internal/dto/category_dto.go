package dto

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	Order       int     `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}
