package cause

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCauseNotFound is returned when a cause cannot be found.
	ErrCauseNotFound = errors.New("cause not found")
	// ErrNameRequired is returned when creating a cause without a name.
	ErrNameRequired = errors.New("cause name is required")
	// ErrTargetMustBePositive is returned for a zero or negative target amount.
	ErrTargetMustBePositive = errors.New("target amount must be positive")
	// ErrNotAcceptingDonations is returned when donating to a cause that is not live.
	ErrNotAcceptingDonations = errors.New("cause is not accepting donations")
	// ErrNotOrganizer is returned when a user acts on a cause they do not organize.
	ErrNotOrganizer = errors.New("user is not the organizer of this cause")
	// ErrRejectionReasonRequired is returned when rejecting without a reason.
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	// ErrNameTaken is returned when another cause already uses the name.
	ErrNameTaken = errors.New("a cause with this name already exists")
)

// Status is the moderation and fundraising state of a cause.
type Status string

const (
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusOngoing     Status = "ongoing"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUnderReview, StatusApproved, StatusRejected,
		StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// HiddenStatuses are never shown in public listings.
var HiddenStatuses = []Status{StatusUnderReview, StatusRejected}

// Cause is a fundraising campaign run by an organizer.
type Cause struct {
	ID              uuid.UUID
	Name            string
	Slug            string
	CategoryID      *uuid.UUID
	Description     string
	OrganizerID     uuid.UUID
	TargetAmount    decimal.Decimal
	CurrentAmount   decimal.Decimal
	Status          Status
	RejectionReason string
	CoverImageURL   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New creates a cause awaiting moderation.
func New(
	organizerID uuid.UUID,
	name, description string,
	categoryID *uuid.UUID,
	target decimal.Decimal,
	coverImageURL string,
) (*Cause, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !target.IsPositive() {
		return nil, ErrTargetMustBePositive
	}
	now := time.Now().UTC()
	return &Cause{
		ID:            uuid.New(),
		Name:          name,
		Slug:          utils.Slugify(name),
		CategoryID:    categoryID,
		Description:   description,
		OrganizerID:   organizerID,
		TargetAmount:  domain.Amount(target),
		CurrentAmount: decimal.Zero,
		Status:        StatusUnderReview,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

var hundred = decimal.NewFromInt(100)

// ProgressPercentage returns current/target as a percentage clamped to
// [0, 100] and rounded to two places.
func (c *Cause) ProgressPercentage() decimal.Decimal {
	if !c.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := c.CurrentAmount.Div(c.TargetAmount).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct.Round(2)
}

// IsPublic reports whether the cause appears in public listings.
func (c *Cause) IsPublic() bool {
	return c.Status != StatusUnderReview && c.Status != StatusRejected
}

// AcceptsDonations reports whether donations can be added for this cause.
func (c *Cause) AcceptsDonations() bool {
	return c.Status == StatusOngoing || c.Status == StatusApproved
}

// Approve makes the cause live. Approved causes start fundraising immediately.
func (c *Cause) Approve() error {
	if c.Status != StatusUnderReview && c.Status != StatusRejected && c.Status != StatusApproved {
		return domain.ErrInvalidState
	}
	c.Status = StatusOngoing
	c.RejectionReason = ""
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Reject moves a cause out of review with a reason shown to the organizer.
func (c *Cause) Reject(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if c.Status != StatusUnderReview && c.Status != StatusApproved {
		return domain.ErrInvalidState
	}
	c.Status = StatusRejected
	c.RejectionReason = reason
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus applies an admin status change. Approved normalises to ongoing.
func (c *Cause) SetStatus(s Status) error {
	if !s.Valid() {
		return domain.ErrValidation
	}
	if s == StatusApproved {
		s = StatusOngoing
	}
	c.Status = s
	c.UpdatedAt = time.Now().UTC()
	return nil
}
