package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification cannot be found
// or is not visible to the caller.
var ErrNotificationNotFound = errors.New("notification not found")

// Type classifies a notification.
type Type string

const (
	TypeCausePending        Type = "cause_pending"
	TypeCauseApproved       Type = "cause_approved"
	TypeCauseRejected       Type = "cause_rejected"
	TypeNewDonation         Type = "new_donation"
	TypeWithdrawalRequest   Type = "withdrawal_request"
	TypeWithdrawalCompleted Type = "withdrawal_completed"
	TypeWithdrawalFailed    Type = "withdrawal_failed"
	TypeUserRegistration    Type = "user_registration"
	TypeSystemAlert         Type = "system_alert"
)

// Priority orders notifications by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Audience names who a notification is addressed to.
type Audience string

const (
	// AudienceUser rows belong to UserID alone.
	AudienceUser Audience = "user"
	// AudienceStaff rows carry no user and form the shared staff inbox.
	AudienceStaff Audience = "staff"
)

// Notification is an in-app message. A nil UserID makes it a broadcast
// to the staff inbox.
type Notification struct {
	ID           uuid.UUID
	Title        string
	Message      string
	Type         Type
	Priority     Priority
	Audience     Audience
	UserID       *uuid.UUID
	CauseID      *uuid.UUID
	DonationID   *uuid.UUID
	WithdrawalID *uuid.UUID
	IsRead       bool
	IsArchived   bool
	CreatedAt    time.Time
	ReadAt       *time.Time
}

// Option customises a notification at construction.
type Option func(*Notification)

// ForUser targets the notification at a single user.
func ForUser(id uuid.UUID) Option { return func(n *Notification) { n.UserID = &id } }

// WithCause links a cause.
func WithCause(id uuid.UUID) Option { return func(n *Notification) { n.CauseID = &id } }

// WithDonation links a donation.
func WithDonation(id uuid.UUID) Option { return func(n *Notification) { n.DonationID = &id } }

// WithWithdrawal links a withdrawal request.
func WithWithdrawal(id uuid.UUID) Option { return func(n *Notification) { n.WithdrawalID = &id } }

// New creates an unread notification.
func New(t Type, priority Priority, title, message string, opts ...Option) *Notification {
	if !priority.Valid() {
		priority = PriorityMedium
	}
	n := &Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      t,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.Audience = AudienceUser
	if n.UserID == nil {
		n.Audience = AudienceStaff
	}
	return n
}

// VisibleTo reports whether userID may see or act on the notification.
// Staff inbox rows are never visible to non-staff.
func (n *Notification) VisibleTo(userID uuid.UUID, isStaff bool) bool {
	if isStaff {
		return true
	}
	return n.Audience != AudienceStaff && n.UserID != nil && *n.UserID == userID
}

// MarkRead flags the notification as read once.
func (n *Notification) MarkRead() {
	if n.IsRead {
		return
	}
	now := time.Now().UTC()
	n.IsRead = true
	n.ReadAt = &now
}
