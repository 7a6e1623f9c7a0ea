package user

import (
	"errors"

	"github.com/google/uuid"
)

// WithdrawalMethod is how an organizer receives payouts.
type WithdrawalMethod string

const (
	WithdrawalMethodBankTransfer WithdrawalMethod = "bank_transfer"
	WithdrawalMethodMobileMoney  WithdrawalMethod = "mobile_money"
)

// ErrInvalidWithdrawalMethod is returned for unknown payout methods.
var ErrInvalidWithdrawalMethod = errors.New("withdrawal method must be bank_transfer or mobile_money")

// Valid reports whether m is a supported payout method.
func (m WithdrawalMethod) Valid() bool {
	return m == WithdrawalMethodBankTransfer || m == WithdrawalMethodMobileMoney
}

// Profile holds the public and payout details of a user.
type Profile struct {
	UserID              uuid.UUID
	Bio                 string
	PhoneNumber         string
	ProfilePictureURL   string
	WithdrawalMethod    WithdrawalMethod
	BankCode            string
	BankName            string
	AccountNumber       string
	AccountName         string
	MobileMoneyProvider string
	MobileMoneyNumber   string
	RecipientCode       string
}

// HasCompleteWithdrawalInfo reports whether the fields required by the
// chosen payout method are present.
func (p *Profile) HasCompleteWithdrawalInfo() bool {
	switch p.WithdrawalMethod {
	case WithdrawalMethodBankTransfer:
		return p.BankCode != "" && p.AccountNumber != "" && p.AccountName != ""
	case WithdrawalMethodMobileMoney:
		return p.MobileMoneyProvider != "" && p.MobileMoneyNumber != ""
	default:
		return false
	}
}

// PayoutDetails returns a snapshot of the payout fields for the given method.
func (p *Profile) PayoutDetails() map[string]string {
	if p.WithdrawalMethod == WithdrawalMethodMobileMoney {
		return map[string]string{
			"provider":     p.MobileMoneyProvider,
			"phone_number": p.MobileMoneyNumber,
			"account_name": p.AccountName,
		}
	}
	return map[string]string{
		"bank_code":      p.BankCode,
		"bank_name":      p.BankName,
		"account_number": p.AccountNumber,
		"account_name":   p.AccountName,
	}
}
