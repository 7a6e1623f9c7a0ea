package newsletter

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionNotFound is returned when the email is not subscribed.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrAlreadySubscribed is returned when an active subscription exists.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
	// ErrInvalidEmail is returned for a malformed address.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Subscription is a newsletter signup.
type Subscription struct {
	ID             uuid.UUID
	Email          string
	IsActive       bool
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}

// New creates an active subscription.
func New(email string) *Subscription {
	return &Subscription{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
}

// Resubscribe reactivates a lapsed subscription.
func (s *Subscription) Resubscribe() error {
	if s.IsActive {
		return ErrAlreadySubscribed
	}
	s.IsActive = true
	s.SubscribedAt = time.Now().UTC()
	s.UnsubscribedAt = nil
	return nil
}

// Unsubscribe deactivates the subscription.
func (s *Subscription) Unsubscribe() {
	now := time.Now().UTC()
	s.IsActive = false
	s.UnsubscribedAt = &now
}
