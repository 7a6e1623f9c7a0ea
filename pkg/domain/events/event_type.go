package events

// EventType represents the type of an event in the system.
type EventType string

const (
	// User events
	EventTypeUserRegistered EventType = "User.Registered"

	// Cause events
	EventTypeCauseCreated  EventType = "Cause.Created"
	EventTypeCauseApproved EventType = "Cause.Approved"
	EventTypeCauseRejected EventType = "Cause.Rejected"

	// Payment events
	EventTypePaymentCompleted EventType = "Payment.Completed"
	EventTypePaymentFailed    EventType = "Payment.Failed"

	// Donation events
	EventTypeDonationCompleted EventType = "Donation.Completed"
	EventTypeDonationFailed    EventType = "Donation.Failed"

	// Withdrawal events
	EventTypeWithdrawalRequested EventType = "Withdrawal.Requested"
	EventTypeWithdrawalCompleted EventType = "Withdrawal.Completed"
	EventTypeWithdrawalFailed    EventType = "Withdrawal.Failed"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
