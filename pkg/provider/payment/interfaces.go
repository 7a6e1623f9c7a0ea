package payment

import (
	"context"
	"errors"
)

var (
	// ErrUnsupported is returned when a gateway does not offer an operation.
	ErrUnsupported = errors.New("operation not supported by payment gateway")
	// ErrInvalidSignature is returned when a webhook signature does not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrGateway wraps failures reported by the gateway.
	ErrGateway = errors.New("payment gateway error")
)

// Payment collects money from donors.
type Payment interface {
	InitiatePayment(
		ctx context.Context,
		params *InitiatePaymentParams,
	) (*InitiatePaymentResponse, error)

	VerifyPayment(
		ctx context.Context,
		reference string,
	) (*VerifyPaymentResponse, error)

	HandleWebhook(
		ctx context.Context,
		payload []byte,
		signature string,
	) (*PaymentEvent, error)
}

// Payout sends money to organizers.
type Payout interface {
	CreateRecipient(
		ctx context.Context,
		params *CreateRecipientParams,
	) (string, error)

	InitiatePayout(
		ctx context.Context,
		params *InitiatePayoutParams,
	) (*InitiatePayoutResponse, error)

	VerifyPayout(
		ctx context.Context,
		reference string,
	) (*VerifyPayoutResponse, error)
}

// BankDirectory lists payout destinations and resolves account holders.
type BankDirectory interface {
	ListBanks(ctx context.Context, currency string, kind BankType) ([]Bank, error)
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolvedAccount, error)
}

// Gateway is a full payment provider.
type Gateway interface {
	Name() string
	Payment
	Payout
	BankDirectory
}
