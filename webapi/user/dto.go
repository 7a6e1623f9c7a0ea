package user

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/google/uuid"
)

// UpdateUserInput represents the request body for updating user information.
type UpdateUserInput struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}

// PasswordInput represents the request body for password confirmation operations.
type PasswordInput struct {
	Password string `json:"password" validate:"required"`
}

// ResolveAccountInput asks the gateway for the holder of a bank account.
type ResolveAccountInput struct {
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
	BankCode      string `json:"bank_code" validate:"required,max=20"`
}

// SetActiveInput toggles a user's access.
type SetActiveInput struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// UserDTO is the API representation of a user. The password hash is never exposed.
type UserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	IsActive   bool       `json:"is_active"`
	IsStaff    bool       `json:"is_staff"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// ProfileDTO is the API representation of a user profile.
type ProfileDTO struct {
	UserID                    uuid.UUID `json:"user_id"`
	Bio                       string    `json:"bio"`
	PhoneNumber               string    `json:"phone_number"`
	ProfilePictureURL         string    `json:"profile_picture_url"`
	WithdrawalMethod          string    `json:"withdrawal_method"`
	BankCode                  string    `json:"bank_code"`
	BankName                  string    `json:"bank_name"`
	AccountNumber             string    `json:"account_number"`
	AccountName               string    `json:"account_name"`
	MobileMoneyProvider       string    `json:"mobile_money_provider"`
	MobileMoneyNumber         string    `json:"mobile_money_number"`
	HasCompleteWithdrawalInfo bool      `json:"has_complete_withdrawal_info"`
}

// ToUserDTO maps a domain user to its API form.
func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		IsActive:   u.IsActive,
		IsStaff:    u.IsStaff,
		DateJoined: u.DateJoined,
		LastLogin:  u.LastLogin,
	}
}

func toProfileDTO(p *user.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID:                    p.UserID,
		Bio:                       p.Bio,
		PhoneNumber:               p.PhoneNumber,
		ProfilePictureURL:         p.ProfilePictureURL,
		WithdrawalMethod:          string(p.WithdrawalMethod),
		BankCode:                  p.BankCode,
		BankName:                  p.BankName,
		AccountNumber:             p.AccountNumber,
		AccountName:               p.AccountName,
		MobileMoneyProvider:       p.MobileMoneyProvider,
		MobileMoneyNumber:         p.MobileMoneyNumber,
		HasCompleteWithdrawalInfo: p.HasCompleteWithdrawalInfo(),
	}
}
