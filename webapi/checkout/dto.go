package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest pays for a cart. Signed-in callers may omit both fields.
type CheckoutRequest struct {
	CartID *uuid.UUID `json:"cart_id,omitempty"`
	Email  string     `json:"email" validate:"omitempty,email"`
}

// DonateRequest is a one-off donation to a single cause.
type DonateRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Email  string          `json:"email" validate:"omitempty,email"`
}
