package user

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"uniqueIndex;not null;size:254"`
	FirstName  string    `gorm:"size:150"`
	LastName   string    `gorm:"size:150"`
	Password   string    `gorm:"not null"`
	IsActive   bool      `gorm:"not null"`
	IsStaff    bool      `gorm:"not null"`
	DateJoined time.Time `gorm:"not null"`
	LastLogin  *time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Profile holds the one-to-one profile row of a user.
type Profile struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Bio                 string
	PhoneNumber         string `gorm:"size:20"`
	ProfilePictureURL   string
	WithdrawalMethod    string `gorm:"size:20"`
	BankCode            string `gorm:"size:20"`
	BankName            string `gorm:"size:100"`
	AccountNumber       string `gorm:"size:30"`
	AccountName         string `gorm:"size:150"`
	MobileMoneyProvider string `gorm:"size:30"`
	MobileMoneyNumber   string `gorm:"size:20"`
	RecipientCode       string `gorm:"size:100"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "user_profiles"
}

func mapUserToModel(u *user.User) *User {
	return &User{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Password:   u.Password,
		IsActive:   u.IsActive,
		IsStaff:    u.IsStaff,
		DateJoined: u.DateJoined,
		LastLogin:  u.LastLogin,
		UpdatedAt:  u.UpdatedAt,
	}
}

func mapModelToUser(m *User) *user.User {
	return &user.User{
		ID:         m.ID,
		Email:      m.Email,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Password:   m.Password,
		IsActive:   m.IsActive,
		IsStaff:    m.IsStaff,
		DateJoined: m.DateJoined,
		LastLogin:  m.LastLogin,
		UpdatedAt:  m.UpdatedAt,
	}
}

func mapProfileToModel(p *user.Profile) *Profile {
	return &Profile{
		UserID:              p.UserID,
		Bio:                 p.Bio,
		PhoneNumber:         p.PhoneNumber,
		ProfilePictureURL:   p.ProfilePictureURL,
		WithdrawalMethod:    string(p.WithdrawalMethod),
		BankCode:            p.BankCode,
		BankName:            p.BankName,
		AccountNumber:       p.AccountNumber,
		AccountName:         p.AccountName,
		MobileMoneyProvider: p.MobileMoneyProvider,
		MobileMoneyNumber:   p.MobileMoneyNumber,
		RecipientCode:       p.RecipientCode,
		UpdatedAt:           time.Now().UTC(),
	}
}

func mapModelToProfile(m *Profile) *user.Profile {
	return &user.Profile{
		UserID:              m.UserID,
		Bio:                 m.Bio,
		PhoneNumber:         m.PhoneNumber,
		ProfilePictureURL:   m.ProfilePictureURL,
		WithdrawalMethod:    user.WithdrawalMethod(m.WithdrawalMethod),
		BankCode:            m.BankCode,
		BankName:            m.BankName,
		AccountNumber:       m.AccountNumber,
		AccountName:         m.AccountName,
		MobileMoneyProvider: m.MobileMoneyProvider,
		MobileMoneyNumber:   m.MobileMoneyNumber,
		RecipientCode:       m.RecipientCode,
	}
}
