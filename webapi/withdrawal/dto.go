package withdrawal

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestInput asks for a payout of a cause's raised funds. PaymentMethod
// overrides the method saved on the organizer's profile.
type RequestInput struct {
	CauseID       uuid.UUID       `json:"cause_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty" validate:"omitempty,oneof=bank_transfer mobile_money"`
}

type WithdrawalDTO struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	CauseID        uuid.UUID         `json:"cause_id"`
	Amount         decimal.Decimal   `json:"amount"`
	Fee            decimal.Decimal   `json:"fee"`
	NetAmount      decimal.Decimal   `json:"net_amount"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentDetails map[string]string `json:"payment_details,omitempty"`
	TransactionID  string            `json:"transaction_id,omitempty"`
	FailureReason  string            `json:"failure_reason,omitempty"`
	RequestedAt    time.Time         `json:"requested_at"`
	ProcessedAt    *time.Time        `json:"processed_at,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

func toWithdrawalDTO(w *withdrawal.Request) *WithdrawalDTO {
	return &WithdrawalDTO{
		ID:             w.ID,
		UserID:         w.UserID,
		CauseID:        w.CauseID,
		Amount:         w.Amount,
		Fee:            w.Fee,
		NetAmount:      w.NetAmount,
		Currency:       w.Currency,
		Status:         string(w.Status),
		PaymentMethod:  string(w.PaymentMethod),
		PaymentDetails: w.PaymentDetails,
		TransactionID:  w.TransactionID,
		FailureReason:  w.FailureReason,
		RequestedAt:    w.RequestedAt,
		ProcessedAt:    w.ProcessedAt,
		CompletedAt:    w.CompletedAt,
	}
}
