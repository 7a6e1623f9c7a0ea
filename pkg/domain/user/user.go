package user

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned for bad credentials.
	ErrUserUnauthorized = errors.New("invalid credentials")
	// ErrUserInactive is returned when a disabled account tries to log in.
	ErrUserInactive = errors.New("user account is disabled")
	// ErrEmailTaken is returned when signing up with an existing email.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned when the password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when the password exceeds the bcrypt input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrInvalidResetToken is returned when a password reset token is malformed, expired or stale.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
	// ErrIncompleteWithdrawalInfo is returned when the profile lacks payout details.
	ErrIncompleteWithdrawalInfo = errors.New("withdrawal information is incomplete")
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// User is a platform account. Staff users have access to the back-office.
type User struct {
	ID         uuid.UUID
	Email      string
	FirstName  string
	LastName   string
	Password   string
	IsActive   bool
	IsStaff    bool
	DateJoined time.Time
	LastLogin  *time.Time
	UpdatedAt  time.Time
}

// FullName returns the user's display name, falling back to the email.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks the password length rules.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// New creates an active, non-staff user with a hashed password.
func New(email, password, firstName, lastName string) (*User, error) {
	email = NormalizeEmail(email)
	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:         uuid.New(),
		Email:      email,
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		Password:   hashed,
		IsActive:   true,
		DateJoined: now,
		UpdatedAt:  now,
	}, nil
}
