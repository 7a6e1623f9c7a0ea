package events

import "github.com/google/uuid"

// UserRegistered is emitted after a successful signup.
type UserRegistered struct {
	FlowEvent
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

func (e UserRegistered) Type() string { return EventTypeUserRegistered.String() }
