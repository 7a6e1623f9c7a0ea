package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentCompleted is emitted once the gateway confirms a charge.
type PaymentCompleted struct {
	FlowEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// PaymentFailed is emitted when the gateway reports a failed charge.
type PaymentFailed struct {
	FlowEvent
	PaymentID uuid.UUID `json:"payment_id"`
	Reference string    `json:"reference"`
	Reason    string    `json:"reason"`
}

func (e PaymentCompleted) Type() string { return EventTypePaymentCompleted.String() }
func (e PaymentFailed) Type() string    { return EventTypePaymentFailed.String() }
