package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by everything that travels on the bus.
type Event interface {
	Type() string
}

// FlowEvent carries the metadata shared by every event.
type FlowEvent struct {
	ID            uuid.UUID `json:"id"`
	CorrelationID uuid.UUID `json:"correlation_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewFlowEvent returns metadata with a fresh ID. A zero correlation ID
// starts a new flow.
func NewFlowEvent(correlationID uuid.UUID) FlowEvent {
	if correlationID == uuid.Nil {
		correlationID = uuid.New()
	}
	return FlowEvent{
		ID:            uuid.New(),
		CorrelationID: correlationID,
		Timestamp:     time.Now().UTC(),
	}
}

// Correlation returns the ID shared by every event of one flow.
func (f FlowEvent) Correlation() uuid.UUID { return f.CorrelationID }
