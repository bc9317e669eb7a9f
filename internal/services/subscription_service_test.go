package services

import (
	"errors"
	"testing"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

type stubSubscriptionStore struct {
	byID map[uuid.UUID]*models.Subscription
}

func newStubSubscriptionStore(subs ...*models.Subscription) *stubSubscriptionStore {
	s := &stubSubscriptionStore{byID: make(map[uuid.UUID]*models.Subscription)}
	for _, sub := range subs {
		s.byID[sub.ID] = sub
	}
	return s
}

func (s *stubSubscriptionStore) FindMany(status models.SubscriptionStatus, page, limit int) ([]models.Subscription, int64, error) {
	var out []models.Subscription
	for _, sub := range s.byID {
		if status != "" && sub.Status != status {
			continue
		}
		out = append(out, *sub)
	}
	return out, int64(len(out)), nil
}

func (s *stubSubscriptionStore) FindByID(id uuid.UUID) (*models.Subscription, error) {
	return s.byID[id], nil
}

func (s *stubSubscriptionStore) Create(sub *models.Subscription) error {
	s.byID[sub.ID] = sub
	return nil
}

func (s *stubSubscriptionStore) Update(sub *models.Subscription) error {
	s.byID[sub.ID] = sub
	return nil
}

func (s *stubSubscriptionStore) Delete(id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *stubSubscriptionStore) CountApproved() (int64, error) {
	var n int64
	for _, sub := range s.byID {
		if sub.Status == models.SubscriptionApproved {
			n++
		}
	}
	return n, nil
}

func TestCreateSubscription_AlwaysStartsPending(t *testing.T) {
	store := newStubSubscriptionStore()
	svc := NewSubscriptionService(store)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	if err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if sub.Status != models.SubscriptionPending {
		t.Errorf("status = %q, want PENDING", sub.Status)
	}
}

func TestSubscriberCount_CountsApprovedOnly(t *testing.T) {
	store := newStubSubscriptionStore(
		&models.Subscription{ID: uuid.New(), Name: "a", Email: "a@x.com", Status: models.SubscriptionApproved},
		&models.Subscription{ID: uuid.New(), Name: "b", Email: "b@x.com", Status: models.SubscriptionApproved},
		&models.Subscription{ID: uuid.New(), Name: "c", Email: "c@x.com", Status: models.SubscriptionPending},
		&models.Subscription{ID: uuid.New(), Name: "d", Email: "d@x.com", Status: models.SubscriptionRejected},
	)
	svc := NewSubscriptionService(store)

	count, err := svc.GetTotalSubscriberCount()
	if err != nil {
		t.Fatalf("GetTotalSubscriberCount: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	sub := &models.Subscription{ID: uuid.New(), Name: "a", Email: "a@x.com", Status: models.SubscriptionPending}
	svc := NewSubscriptionService(newStubSubscriptionStore(sub))

	updated, err := svc.UpdateStatus(sub.ID, "APPROVED")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.SubscriptionApproved {
		t.Errorf("status = %q, want APPROVED", updated.Status)
	}

	if _, err := svc.UpdateStatus(sub.ID, "MAYBE"); !errors.Is(err, ErrInvalidSubscriptionStatus) {
		t.Errorf("err = %v, want ErrInvalidSubscriptionStatus", err)
	}
	if _, err := svc.UpdateStatus(uuid.New(), "APPROVED"); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("err = %v, want ErrSubscriptionNotFound", err)
	}
}

func TestGetSubscriptions_RejectsUnknownStatusFilter(t *testing.T) {
	svc := NewSubscriptionService(newStubSubscriptionStore())
	if _, _, err := svc.GetSubscriptions("WAITING", 1, 10); !errors.Is(err, ErrInvalidSubscriptionStatus) {
		t.Errorf("err = %v, want ErrInvalidSubscriptionStatus", err)
	}
}
