package events

import "github.com/google/uuid"

// CauseEvent is the payload shared by cause lifecycle events.
type CauseEvent struct {
	FlowEvent
	CauseID     uuid.UUID `json:"cause_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Name        string    `json:"name"`
}

// CauseCreated is emitted when an organizer submits a cause for review.
type CauseCreated struct {
	CauseEvent
}

// CauseApproved is emitted when staff approve a cause.
type CauseApproved struct {
	CauseEvent
}

// CauseRejected is emitted when staff reject a cause.
type CauseRejected struct {
	CauseEvent
	Reason string `json:"reason"`
}

func (e CauseCreated) Type() string  { return EventTypeCauseCreated.String() }
func (e CauseApproved) Type() string { return EventTypeCauseApproved.String() }
func (e CauseRejected) Type() string { return EventTypeCauseRejected.String() }
