package events

// EventTypes maps every wire type name to a constructor, used by the
// distributed buses to decode payloads.
var EventTypes = map[string]func() Event{
	EventTypeUserRegistered.String():      func() Event { return &UserRegistered{} },
	EventTypeCauseCreated.String():        func() Event { return &CauseCreated{} },
	EventTypeCauseApproved.String():       func() Event { return &CauseApproved{} },
	EventTypeCauseRejected.String():       func() Event { return &CauseRejected{} },
	EventTypePaymentCompleted.String():    func() Event { return &PaymentCompleted{} },
	EventTypePaymentFailed.String():       func() Event { return &PaymentFailed{} },
	EventTypeDonationCompleted.String():   func() Event { return &DonationCompleted{} },
	EventTypeDonationFailed.String():      func() Event { return &DonationFailed{} },
	EventTypeWithdrawalRequested.String(): func() Event { return &WithdrawalRequested{} },
	EventTypeWithdrawalCompleted.String(): func() Event { return &WithdrawalCompleted{} },
	EventTypeWithdrawalFailed.String():    func() Event { return &WithdrawalFailed{} },
}
