package withdrawal

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request represents a withdrawal request record in the database.
type Request struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID         `gorm:"type:uuid;index;not null"`
	CauseID        uuid.UUID         `gorm:"type:uuid;index;not null"`
	Amount         decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Fee            decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	NetAmount      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Currency       string            `gorm:"size:3;not null"`
	Status         string            `gorm:"size:20;index;not null"`
	PaymentMethod  string            `gorm:"size:20;not null"`
	PaymentDetails map[string]string `gorm:"serializer:json;type:jsonb"`
	RecipientCode  string            `gorm:"size:100"`
	TransactionID  string            `gorm:"size:100;index"`
	FailureReason  string            `gorm:"type:text"`
	RequestedAt    time.Time         `gorm:"index"`
	ProcessedAt    *time.Time
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Request model.
func (Request) TableName() string {
	return "withdrawal_requests"
}

func mapToModel(w *withdrawal.Request) *Request {
	return &Request{
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
		RecipientCode:  w.RecipientCode,
		TransactionID:  w.TransactionID,
		FailureReason:  w.FailureReason,
		RequestedAt:    w.RequestedAt,
		ProcessedAt:    w.ProcessedAt,
		CompletedAt:    w.CompletedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func mapToDomain(m *Request) *withdrawal.Request {
	return &withdrawal.Request{
		ID:             m.ID,
		UserID:         m.UserID,
		CauseID:        m.CauseID,
		Amount:         m.Amount,
		Fee:            m.Fee,
		NetAmount:      m.NetAmount,
		Currency:       m.Currency,
		Status:         withdrawal.Status(m.Status),
		PaymentMethod:  user.WithdrawalMethod(m.PaymentMethod),
		PaymentDetails: m.PaymentDetails,
		RecipientCode:  m.RecipientCode,
		TransactionID:  m.TransactionID,
		FailureReason:  m.FailureReason,
		RequestedAt:    m.RequestedAt,
		ProcessedAt:    m.ProcessedAt,
		CompletedAt:    m.CompletedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
