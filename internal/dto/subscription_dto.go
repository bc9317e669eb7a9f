package dto

type CreateSubscriptionRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SubscriberCountResponse struct {
	TotalCount int64 `json:"totalCount"`
}
