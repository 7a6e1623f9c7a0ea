package payment

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a payment transaction record in the database.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency        string          `gorm:"size:3;not null"`
	Reference       string          `gorm:"uniqueIndex;not null;size:100"`
	Status          string          `gorm:"size:20;index;not null"`
	Gateway         string          `gorm:"size:20"`
	PaymentMethod   string          `gorm:"size:50"`
	Email           string          `gorm:"size:254;index"`
	GatewayResponse string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "payment_transactions"
}

func mapToModel(t *payment.Transaction) *Transaction {
	return &Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Reference:       t.Reference,
		Status:          string(t.Status),
		Gateway:         t.Gateway,
		PaymentMethod:   t.PaymentMethod,
		Email:           t.Email,
		GatewayResponse: t.GatewayResponse,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

func mapToDomain(m *Transaction) *payment.Transaction {
	return &payment.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Reference:       m.Reference,
		Status:          payment.Status(m.Status),
		Gateway:         m.Gateway,
		PaymentMethod:   m.PaymentMethod,
		Email:           m.Email,
		GatewayResponse: m.GatewayResponse,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CompletedAt:     m.CompletedAt,
	}
}
