package withdrawal

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrWithdrawalNotFound is returned when a withdrawal request cannot be found.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	// ErrInsufficientFunds is returned when the amount exceeds what the cause can pay out.
	ErrInsufficientFunds = errors.New("withdrawal amount exceeds available funds")
	// ErrNotRetryable is returned when retrying a request that has not failed.
	ErrNotRetryable = errors.New("only failed withdrawals can be retried")
	// ErrNotCancellable is returned when cancelling a request with a transfer in flight.
	ErrNotCancellable = errors.New("withdrawal can no longer be cancelled")
)

// Status is the payout state of a withdrawal request.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Request is an organizer's payout of funds raised by a cause.
type Request struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CauseID        uuid.UUID
	Amount         decimal.Decimal
	Fee            decimal.Decimal
	NetAmount      decimal.Decimal
	Currency       string
	Status         Status
	PaymentMethod  user.WithdrawalMethod
	PaymentDetails map[string]string
	RecipientCode  string
	TransactionID  string
	FailureReason  string
	RequestedAt    time.Time
	ProcessedAt    *time.Time
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

// CalculateFee returns the platform fee for amount at the given rate
// (0.01 = 1%), rounded to two places.
func CalculateFee(amount decimal.Decimal, rate float64) decimal.Decimal {
	if rate <= 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromFloat(rate)).Round(2)
}

// New creates a request that is immediately handed to payout processing.
func New(
	userID, causeID uuid.UUID,
	amount decimal.Decimal,
	feeRate float64,
	currency string,
	method user.WithdrawalMethod,
	details map[string]string,
) (*Request, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrAmountMustBePositive
	}
	if !method.Valid() {
		return nil, user.ErrInvalidWithdrawalMethod
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	amount = domain.Amount(amount)
	fee := CalculateFee(amount, feeRate)
	now := time.Now().UTC()
	return &Request{
		ID:             uuid.New(),
		UserID:         userID,
		CauseID:        causeID,
		Amount:         amount,
		Fee:            fee,
		NetAmount:      amount.Sub(fee),
		Currency:       currency,
		Status:         StatusProcessing,
		PaymentMethod:  method,
		PaymentDetails: details,
		RequestedAt:    now,
		UpdatedAt:      now,
	}, nil
}

// HoldsFunds reports whether the request still counts against the cause balance.
func (r *Request) HoldsFunds() bool {
	return r.Status != StatusFailed && r.Status != StatusCancelled
}

// MarkTransferInitiated records the gateway transfer reference.
func (r *Request) MarkTransferInitiated(recipientCode, reference string) {
	now := time.Now().UTC()
	r.RecipientCode = recipientCode
	r.TransactionID = reference
	r.Status = StatusProcessing
	r.ProcessedAt = &now
	r.UpdatedAt = now
}

// Complete marks the payout as delivered.
func (r *Request) Complete() error {
	if r.Status != StatusProcessing && r.Status != StatusPending {
		return domain.ErrInvalidState
	}
	now := time.Now().UTC()
	r.Status = StatusCompleted
	r.FailureReason = ""
	r.CompletedAt = &now
	r.UpdatedAt = now
	return nil
}

// Fail marks the payout as failed with a reason.
func (r *Request) Fail(reason string) error {
	if r.Status != StatusProcessing && r.Status != StatusPending {
		return domain.ErrInvalidState
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "transfer failed"
	}
	r.Status = StatusFailed
	r.FailureReason = reason
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Retry puts a failed request back into processing and clears the stale transfer.
func (r *Request) Retry() error {
	if r.Status != StatusFailed {
		return ErrNotRetryable
	}
	r.Status = StatusProcessing
	r.FailureReason = ""
	r.TransactionID = ""
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Cancel withdraws a pending or failed request. Processing requests belong
// to the transfer worker and cannot be cancelled.
func (r *Request) Cancel() error {
	if r.Status != StatusPending && r.Status != StatusFailed {
		return ErrNotCancellable
	}
	r.Status = StatusCancelled
	r.UpdatedAt = time.Now().UTC()
	return nil
}
