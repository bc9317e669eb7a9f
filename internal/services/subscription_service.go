package services

import (
	"errors"
	"fmt"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrInvalidSubscriptionStatus = errors.New("invalid subscription status")
)

type SubscriptionStore interface {
	FindMany(status models.SubscriptionStatus, page, limit int) ([]models.Subscription, int64, error)
	FindByID(id uuid.UUID) (*models.Subscription, error)
	Create(subscription *models.Subscription) error
	Update(subscription *models.Subscription) error
	Delete(id uuid.UUID) error
	CountApproved() (int64, error)
}

type SubscriptionService struct {
	subscriptions SubscriptionStore
}

func NewSubscriptionService(subscriptions SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

// CreateSubscription records a public consultation request. New requests
// always start PENDING.
func (s *SubscriptionService) CreateSubscription(req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	subscription := &models.Subscription{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.SubscriptionPending,
	}
	if err := s.subscriptions.Create(subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return subscription, nil
}

func (s *SubscriptionService) GetSubscriptions(status string, page, limit int) ([]models.Subscription, int64, error) {
	var filter models.SubscriptionStatus
	if status != "" {
		if !models.ValidSubscriptionStatus(status) {
			return nil, 0, ErrInvalidSubscriptionStatus
		}
		filter = models.SubscriptionStatus(status)
	}
	return s.subscriptions.FindMany(filter, page, limit)
}

func (s *SubscriptionService) GetSubscriptionByID(id uuid.UUID) (*models.Subscription, error) {
	subscription, err := s.subscriptions.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return subscription, nil
}

func (s *SubscriptionService) UpdateStatus(id uuid.UUID, status string) (*models.Subscription, error) {
	if !models.ValidSubscriptionStatus(status) {
		return nil, ErrInvalidSubscriptionStatus
	}

	subscription, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	subscription.Status = models.SubscriptionStatus(status)
	if err := s.subscriptions.Update(subscription); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return subscription, nil
}

func (s *SubscriptionService) DeleteSubscription(id uuid.UUID) error {
	if _, err := s.GetSubscriptionByID(id); err != nil {
		return err
	}
	if err := s.subscriptions.Delete(id); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// GetTotalSubscriberCount counts approved requests only; pending and rejected
// submissions are not subscribers.
func (s *SubscriptionService) GetTotalSubscriberCount() (int64, error) {
	return s.subscriptions.CountApproved()
}
