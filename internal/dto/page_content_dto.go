package dto

type UpsertPageContentRequest struct {
	Key     string  `json:"key" validate:"required"`
	Title   *string `json:"title"`
	Content string  `json:"content" validate:"required"`
	Type    string  `json:"type"`
	IsActive *bool  `json:"isActive"`
}

type UpdatePageContentRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Type     *string `json:"type"`
	IsActive *bool   `json:"isActive"`
}
