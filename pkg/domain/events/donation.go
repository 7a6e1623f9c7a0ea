package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationEvent is the payload shared by donation outcome events.
type DonationEvent struct {
	FlowEvent
	DonationID  uuid.UUID       `json:"donation_id"`
	PaymentID   uuid.UUID       `json:"payment_id"`
	CauseID     uuid.UUID       `json:"cause_id"`
	RecipientID uuid.UUID       `json:"recipient_id"`
	DonorEmail  string          `json:"donor_email"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// DonationCompleted is emitted per donation once its payment succeeds.
type DonationCompleted struct {
	DonationEvent
}

// DonationFailed is emitted per donation once its payment fails.
type DonationFailed struct {
	DonationEvent
	Reason string `json:"reason"`
}

func (e DonationCompleted) Type() string { return EventTypeDonationCompleted.String() }
func (e DonationFailed) Type() string    { return EventTypeDonationFailed.String() }
