package payment

import (
	"errors"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentNotFound is returned when a payment cannot be found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrEmailRequired is returned when an anonymous checkout has no email.
	ErrEmailRequired = errors.New("email is required for anonymous donations")
)

// Status is the state of a gateway payment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Transaction is a gateway charge covering one or more donations.
type Transaction struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	Amount          decimal.Decimal
	Currency        string
	Reference       string
	Status          Status
	Gateway         string
	PaymentMethod   string
	Email           string
	GatewayResponse string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// New creates a pending payment for the given gateway reference.
func New(
	userID *uuid.UUID,
	amount decimal.Decimal,
	currency, reference, gateway, email string,
) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrAmountMustBePositive
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    domain.Amount(amount),
		Currency:  currency,
		Reference: reference,
		Status:    StatusPending,
		Gateway:   gateway,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsTerminal reports whether the payment has settled either way.
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// Complete settles a pending payment.
func (t *Transaction) Complete(method, gatewayResponse string) error {
	if t.Status != StatusPending {
		return domain.ErrInvalidState
	}
	now := time.Now().UTC()
	t.Status = StatusCompleted
	t.PaymentMethod = method
	t.GatewayResponse = gatewayResponse
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// Fail marks a pending payment as failed.
func (t *Transaction) Fail(gatewayResponse string) error {
	if t.Status != StatusPending {
		return domain.ErrInvalidState
	}
	t.Status = StatusFailed
	t.GatewayResponse = gatewayResponse
	t.UpdatedAt = time.Now().UTC()
	return nil
}
