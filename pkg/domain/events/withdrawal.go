package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalEvent is the payload shared by withdrawal events.
type WithdrawalEvent struct {
	FlowEvent
	WithdrawalID uuid.UUID       `json:"withdrawal_id"`
	UserID       uuid.UUID       `json:"user_id"`
	CauseID      uuid.UUID       `json:"cause_id"`
	Amount       decimal.Decimal `json:"amount"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	Currency     string          `json:"currency"`
}

// WithdrawalRequested is emitted when a request is accepted and funds
// should be transferred.
type WithdrawalRequested struct {
	WithdrawalEvent
}

// WithdrawalCompleted is emitted when the transfer settles.
type WithdrawalCompleted struct {
	WithdrawalEvent
	Reference string `json:"reference"`
}

// WithdrawalFailed is emitted when the transfer cannot be made or is reversed.
type WithdrawalFailed struct {
	WithdrawalEvent
	Reason string `json:"reason"`
}

func (e WithdrawalRequested) Type() string { return EventTypeWithdrawalRequested.String() }
func (e WithdrawalCompleted) Type() string { return EventTypeWithdrawalCompleted.String() }
func (e WithdrawalFailed) Type() string    { return EventTypeWithdrawalFailed.String() }
