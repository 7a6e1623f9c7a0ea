package dto

// UserUpdate carries the user fields a caller may change.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}

// ProfileUpdate carries a partial profile update.
type ProfileUpdate struct {
	Bio                 *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	PhoneNumber         *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL   *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	WithdrawalMethod    *string `json:"withdrawal_method,omitempty" validate:"omitempty,oneof=bank_transfer mobile_money"`
	BankCode            *string `json:"bank_code,omitempty"`
	BankName            *string `json:"bank_name,omitempty"`
	AccountNumber       *string `json:"account_number,omitempty"`
	AccountName         *string `json:"account_name,omitempty"`
	MobileMoneyProvider *string `json:"mobile_money_provider,omitempty"`
	MobileMoneyNumber   *string `json:"mobile_money_number,omitempty"`
}

// UserFilter narrows the admin user list.
type UserFilter struct {
	Search   string
	IsActive *bool
	IsStaff  *bool
}
