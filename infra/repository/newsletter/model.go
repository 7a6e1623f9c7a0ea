package newsletter

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	"github.com/google/uuid"
)

// Subscription represents a newsletter subscription record in the database.
type Subscription struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null;size:254"`
	IsActive       bool      `gorm:"not null"`
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}

// TableName specifies the table name for the Subscription model.
func (Subscription) TableName() string {
	return "newsletter_subscriptions"
}

func mapToModel(s *newsletter.Subscription) *Subscription {
	return &Subscription{
		ID:             s.ID,
		Email:          s.Email,
		IsActive:       s.IsActive,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
	}
}

func mapToDomain(m *Subscription) *newsletter.Subscription {
	return &newsletter.Subscription{
		ID:             m.ID,
		Email:          m.Email,
		IsActive:       m.IsActive,
		SubscribedAt:   m.SubscribedAt,
		UnsubscribedAt: m.UnsubscribedAt,
	}
}
