package repository

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) FindMany(status models.SubscriptionStatus, page, limit int) ([]models.Subscription, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	base := r.db.Model(&models.Subscription{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscriptions []models.Subscription
	err := base.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subscriptions).Error
	if err != nil {
		return nil, 0, err
	}
	return subscriptions, total, nil
}

func (r *SubscriptionRepository) FindByID(id uuid.UUID) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.First(&subscription, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *SubscriptionRepository) Update(subscription *models.Subscription) error {
	return r.db.Save(subscription).Error
}

func (r *SubscriptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Subscription{}, "id = ?", id).Error
}

// CountApproved returns the number of approved consultation requests, which
// the public site displays as its subscriber total.
func (r *SubscriptionRepository) CountApproved() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("status = ?", models.SubscriptionApproved).
		Count(&count).Error
	return count, err
}
