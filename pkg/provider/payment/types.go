package payment

import (
	"github.com/google/uuid"
)

// PaymentStatus represents the status of a charge.
type PaymentStatus string

const (
	// PaymentPending indicates the charge is not settled yet.
	PaymentPending PaymentStatus = "pending"
	// PaymentCompleted indicates the charge succeeded.
	PaymentCompleted PaymentStatus = "completed"
	// PaymentFailed indicates the charge failed or was abandoned.
	PaymentFailed PaymentStatus = "failed"
)

// PayoutStatus represents the status of a transfer as the gateway reports it.
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutOTP        PayoutStatus = "otp"
	PayoutSuccess    PayoutStatus = "success"
	PayoutFailed     PayoutStatus = "failed"
	PayoutReversed   PayoutStatus = "reversed"
)

// IsFinal reports whether the transfer reached a terminal state.
func (s PayoutStatus) IsFinal() bool {
	return s == PayoutSuccess || s == PayoutFailed || s == PayoutReversed
}

// EventType is a normalised webhook event type.
type EventType string

const (
	EventChargeSuccess    EventType = "charge.success"
	EventChargeFailed     EventType = "charge.failed"
	EventTransferSuccess  EventType = "transfer.success"
	EventTransferFailed   EventType = "transfer.failed"
	EventTransferReversed EventType = "transfer.reversed"
)

// IsTransfer reports whether the event concerns a payout.
func (t EventType) IsTransfer() bool {
	return t == EventTransferSuccess || t == EventTransferFailed || t == EventTransferReversed
}

// PaymentEvent is a verified webhook notification.
type PaymentEvent struct {
	Type            EventType
	Reference       string
	Amount          int64
	Currency        string
	Channel         string
	GatewayResponse string
	Reason          string
	Metadata        map[string]string
}

// InitiatePaymentParams holds the parameters for InitiatePayment.
// Amount is in minor units.
type InitiatePaymentParams struct {
	UserID    *uuid.UUID
	PaymentID uuid.UUID
	Reference string
	Email     string
	Amount    int64
	Currency  string
	Metadata  map[string]string
}

// InitiatePaymentResponse is returned once the gateway accepted the charge.
type InitiatePaymentResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyPaymentResponse reports a charge's state at the gateway.
type VerifyPaymentResponse struct {
	Reference       string
	Status          PaymentStatus
	Amount          int64
	Currency        string
	Channel         string
	GatewayResponse string
}

// BankType selects a family of payout destinations.
type BankType string

const (
	BankTypeBank        BankType = "ghipss"
	BankTypeMobileMoney BankType = "mobile_money"
)

// Bank is a payout destination institution or mobile money provider.
type Bank struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// ResolvedAccount is the account holder returned by the gateway.
type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankCode      string `json:"bank_code"`
}

// CreateRecipientParams describes a transfer recipient.
type CreateRecipientParams struct {
	Type          BankType
	Name          string
	AccountNumber string
	BankCode      string
	Currency      string
}

// InitiatePayoutParams holds the parameters for InitiatePayout.
// Amount is in minor units.
type InitiatePayoutParams struct {
	Reference     string
	RecipientCode string
	Amount        int64
	Currency      string
	Reason        string
}

// InitiatePayoutResponse is returned once the transfer is queued.
type InitiatePayoutResponse struct {
	Reference    string
	TransferCode string
	Status       PayoutStatus
}

// VerifyPayoutResponse reports a transfer's state at the gateway.
type VerifyPayoutResponse struct {
	Reference string
	Status    PayoutStatus
	Reason    string
}
