package payment

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID              uuid.UUID       `json:"id"`
	UserID          *uuid.UUID      `json:"user_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Reference       string          `json:"reference"`
	Status          string          `json:"status"`
	Gateway         string          `json:"gateway"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Email           string          `json:"email"`
	GatewayResponse string          `json:"gateway_response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

func toPaymentDTO(tx *payment.Transaction) *PaymentDTO {
	return &PaymentDTO{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Reference:       tx.Reference,
		Status:          string(tx.Status),
		Gateway:         tx.Gateway,
		PaymentMethod:   tx.PaymentMethod,
		Email:           tx.Email,
		GatewayResponse: tx.GatewayResponse,
		CreatedAt:       tx.CreatedAt,
		CompletedAt:     tx.CompletedAt,
	}
}
