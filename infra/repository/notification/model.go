package notification

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/google/uuid"
)

// Notification represents a notification record in the database.
type Notification struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"size:200;not null"`
	Message      string     `gorm:"type:text"`
	Type         string     `gorm:"size:30;index;not null"`
	Priority     string     `gorm:"size:10;not null"`
	Audience     string     `gorm:"size:10;index;not null;default:staff"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	CauseID      *uuid.UUID `gorm:"type:uuid"`
	DonationID   *uuid.UUID `gorm:"type:uuid"`
	WithdrawalID *uuid.UUID `gorm:"type:uuid"`
	IsRead       bool       `gorm:"index;not null"`
	IsArchived   bool       `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"index"`
	ReadAt       *time.Time
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}

func mapToModel(n *notification.Notification) *Notification {
	return &Notification{
		ID:           n.ID,
		Title:        n.Title,
		Message:      n.Message,
		Type:         string(n.Type),
		Priority:     string(n.Priority),
		Audience:     string(n.Audience),
		UserID:       n.UserID,
		CauseID:      n.CauseID,
		DonationID:   n.DonationID,
		WithdrawalID: n.WithdrawalID,
		IsRead:       n.IsRead,
		IsArchived:   n.IsArchived,
		CreatedAt:    n.CreatedAt,
		ReadAt:       n.ReadAt,
	}
}

func mapToDomain(m *Notification) *notification.Notification {
	return &notification.Notification{
		ID:           m.ID,
		Title:        m.Title,
		Message:      m.Message,
		Type:         notification.Type(m.Type),
		Priority:     notification.Priority(m.Priority),
		Audience:     notification.Audience(m.Audience),
		UserID:       m.UserID,
		CauseID:      m.CauseID,
		DonationID:   m.DonationID,
		WithdrawalID: m.WithdrawalID,
		IsRead:       m.IsRead,
		IsArchived:   m.IsArchived,
		CreatedAt:    m.CreatedAt,
		ReadAt:       m.ReadAt,
	}
}
