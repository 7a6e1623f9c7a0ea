package donation

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donation represents a donation record in the database.
type Donation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID      `gorm:"type:uuid;index"`
	CauseID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	RecipientID uuid.UUID       `gorm:"type:uuid;not null"`
	PaymentID   *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
	Status      string          `gorm:"size:20;index;not null"`
	Email       string          `gorm:"size:254"`
	DonatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Donation model.
func (Donation) TableName() string {
	return "donations"
}

func mapToModel(d *donation.Donation) *Donation {
	return &Donation{
		ID:          d.ID,
		UserID:      d.UserID,
		CauseID:     d.CauseID,
		RecipientID: d.RecipientID,
		PaymentID:   d.PaymentID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Status:      string(d.Status),
		Email:       d.Email,
		DonatedAt:   d.DonatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mapToDomain(m *Donation) *donation.Donation {
	return &donation.Donation{
		ID:          m.ID,
		UserID:      m.UserID,
		CauseID:     m.CauseID,
		RecipientID: m.RecipientID,
		PaymentID:   m.PaymentID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Status:      donation.Status(m.Status),
		Email:       m.Email,
		DonatedAt:   m.DonatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
