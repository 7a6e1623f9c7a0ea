// Package notification turns domain events into in-app notifications for
// organizers and staff.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/shopspring/decimal"
)

// Notifier stores a notification.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}

// Subscribed lists the event types HandleEvent understands.
var Subscribed = []events.EventType{
	events.EventTypeUserRegistered,
	events.EventTypeCauseCreated,
	events.EventTypeCauseApproved,
	events.EventTypeCauseRejected,
	events.EventTypeDonationCompleted,
	events.EventTypeWithdrawalRequested,
	events.EventTypeWithdrawalCompleted,
	events.EventTypeWithdrawalFailed,
}

// HandleEvent stores the notifications derived from e. Every notification
// is attempted; the errors are joined.
func HandleEvent(
	notifier Notifier,
	logger *slog.Logger,
) func(
	ctx context.Context,
	e events.Event,
) error {
	return func(
		ctx context.Context,
		e events.Event,
	) error {
		log := logger.With(
			"handler", "notification.HandleEvent",
			"event_type", e.Type(),
		)
		log.Info("🟢 [START] Received event")

		batch := Build(e)
		if len(batch) == 0 {
			log.Debug("Nothing to notify")
			return nil
		}
		var errs []error
		for _, n := range batch {
			if err := notifier.Notify(ctx, n); err != nil {
				log.Error("❌ [ERROR] Failed to store notification", "type", n.Type, "error", err)
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			return err
		}
		log.Info("✅ [SUCCESS] Notifications stored", "count", len(batch))
		return nil
	}
}

// Build maps an event to its notifications. Notifications without a user
// land in the staff inbox.
func Build(e events.Event) []*notification.Notification {
	switch e := e.(type) {
	case *events.UserRegistered:
		return []*notification.Notification{
			notification.New(
				notification.TypeUserRegistration, notification.PriorityLow,
				"New user registered",
				fmt.Sprintf("%s (%s) joined CauseHive.", displayName(e.FullName, e.Email), e.Email),
			),
		}
	case *events.CauseCreated:
		return []*notification.Notification{
			notification.New(
				notification.TypeCausePending, notification.PriorityMedium,
				"New cause awaiting review",
				fmt.Sprintf("%q was submitted and needs moderation.", e.Name),
				notification.WithCause(e.CauseID),
			),
		}
	case *events.CauseApproved:
		return []*notification.Notification{
			notification.New(
				notification.TypeCauseApproved, notification.PriorityMedium,
				"Your cause was approved",
				fmt.Sprintf("%q is live and accepting donations.", e.Name),
				notification.ForUser(e.OrganizerID), notification.WithCause(e.CauseID),
			),
		}
	case *events.CauseRejected:
		return []*notification.Notification{
			notification.New(
				notification.TypeCauseRejected, notification.PriorityHigh,
				"Your cause was rejected",
				fmt.Sprintf("%q was not approved: %s", e.Name, e.Reason),
				notification.ForUser(e.OrganizerID), notification.WithCause(e.CauseID),
			),
		}
	case *events.DonationCompleted:
		return []*notification.Notification{
			notification.New(
				notification.TypeNewDonation, notification.PriorityMedium,
				"New donation received",
				fmt.Sprintf("You received a donation of %s.", money(e.Amount, e.Currency)),
				notification.ForUser(e.RecipientID),
				notification.WithCause(e.CauseID),
				notification.WithDonation(e.DonationID),
			),
		}
	case *events.WithdrawalRequested:
		return withdrawalPair(e.WithdrawalEvent,
			notification.TypeWithdrawalRequest, notification.PriorityMedium,
			"Withdrawal requested",
			fmt.Sprintf("Your withdrawal of %s is being processed.", money(e.Amount, e.Currency)),
			fmt.Sprintf("A withdrawal of %s was requested.", money(e.Amount, e.Currency)),
		)
	case *events.WithdrawalCompleted:
		return withdrawalPair(e.WithdrawalEvent,
			notification.TypeWithdrawalCompleted, notification.PriorityMedium,
			"Withdrawal completed",
			fmt.Sprintf("%s has been sent to your account.", money(e.NetAmount, e.Currency)),
			fmt.Sprintf("Withdrawal %s of %s completed.", e.Reference, money(e.NetAmount, e.Currency)),
		)
	case *events.WithdrawalFailed:
		return withdrawalPair(e.WithdrawalEvent,
			notification.TypeWithdrawalFailed, notification.PriorityHigh,
			"Withdrawal failed",
			fmt.Sprintf("Your withdrawal of %s failed: %s", money(e.Amount, e.Currency), e.Reason),
			fmt.Sprintf("A withdrawal of %s failed: %s", money(e.Amount, e.Currency), e.Reason),
		)
	}
	return nil
}

func withdrawalPair(
	e events.WithdrawalEvent,
	t notification.Type,
	priority notification.Priority,
	title, organizerMsg, staffMsg string,
) []*notification.Notification {
	return []*notification.Notification{
		notification.New(t, priority, title, organizerMsg,
			notification.ForUser(e.UserID),
			notification.WithCause(e.CauseID),
			notification.WithWithdrawal(e.WithdrawalID),
		),
		notification.New(t, priority, title, staffMsg,
			notification.WithCause(e.CauseID),
			notification.WithWithdrawal(e.WithdrawalID),
		),
	}
}

func money(amount decimal.Decimal, currency string) string {
	return currency + " " + amount.StringFixed(2)
}

func displayName(name, email string) string {
	if name == "" {
		return email
	}
	return name
}
