package handlers

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Create is the public consultation-request form endpoint.
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	subscription, err := h.subscriptionService.CreateSubscription(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"subscription": subscription}))
}

func (h *SubscriptionHandler) Count(c *fiber.Ctx) error {
	count, err := h.subscriptionService.GetTotalSubscriberCount()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(dto.SubscriberCountResponse{TotalCount: count}))
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	subscriptions, total, err := h.subscriptionService.GetSubscriptions(c.Query("status"), page, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"subscriptions": subscriptions,
		"pagination":    dto.NewPagination(page, limit, total),
	}))
}

func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subscription id")
	}

	subscription, err := h.subscriptionService.GetSubscriptionByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"subscription": subscription}))
}

func (h *SubscriptionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subscription id")
	}

	var req dto.UpdateSubscriptionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	subscription, err := h.subscriptionService.UpdateStatus(id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"subscription": subscription}))
}

func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subscription id")
	}

	if err := h.subscriptionService.DeleteSubscription(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
