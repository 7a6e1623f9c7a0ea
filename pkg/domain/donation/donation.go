package donation

import (
	"errors"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDonationNotFound is returned when a donation cannot be found.
var ErrDonationNotFound = errors.New("donation not found")

// Status is the settlement state of a donation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Donation is money pledged to a cause; it settles when its payment does.
type Donation struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	CauseID     uuid.UUID
	RecipientID uuid.UUID
	PaymentID   *uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Status      Status
	Email       string
	DonatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a pending donation for the cause organizer.
func New(
	userID *uuid.UUID,
	causeID, recipientID uuid.UUID,
	amount decimal.Decimal,
	currency, email string,
) (*Donation, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrAmountMustBePositive
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	now := time.Now().UTC()
	return &Donation{
		ID:          uuid.New(),
		UserID:      userID,
		CauseID:     causeID,
		RecipientID: recipientID,
		Amount:      domain.Amount(amount),
		Currency:    currency,
		Status:      StatusPending,
		Email:       email,
		DonatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Complete settles a pending donation.
func (d *Donation) Complete() error {
	if d.Status != StatusPending {
		return domain.ErrInvalidState
	}
	d.Status = StatusCompleted
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// Fail marks a pending donation as failed.
func (d *Donation) Fail() error {
	if d.Status != StatusPending {
		return domain.ErrInvalidState
	}
	d.Status = StatusFailed
	d.UpdatedAt = time.Now().UTC()
	return nil
}
