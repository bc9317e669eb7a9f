package dto

import "math"

// SuccessResponse is the uniform success envelope: {"status":"success","data":...}.
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse is the uniform failure envelope: {"status":"error","message":...}.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(data any) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
