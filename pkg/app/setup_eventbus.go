// Package app wires services to their infrastructure and registers the
// event handlers on the bus.
package app

import (
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"
	causehandler "github.com/amirasaad/causehive/pkg/handler/cause"
	handlercommon "github.com/amirasaad/causehive/pkg/handler/common"
	mailhandler "github.com/amirasaad/causehive/pkg/handler/mail"
	notificationhandler "github.com/amirasaad/causehive/pkg/handler/notification"
	withdrawalhandler "github.com/amirasaad/causehive/pkg/handler/withdrawal"
	"github.com/amirasaad/causehive/pkg/provider/mail"
)

// Dependencies contains all the dependencies needed by the SetupBus function
type Dependencies struct {
	Bus         eventbus.Bus
	Causes      causehandler.Crediter
	Withdrawals withdrawalhandler.Processor
	Notifier    notificationhandler.Notifier
	Mailer      mail.Mailer
	Logger      *slog.Logger
}

// SetupBus registers all event handlers with the provided event Bus.
func SetupBus(deps Dependencies) {
	bus := deps.Bus

	tracker := handlercommon.NewIdempotencyTracker()

	// Settled donations raise the cause total before anyone is told about them.
	bus.Register(
		events.EventTypeDonationCompleted,
		handlercommon.WithIdempotency(
			causehandler.HandleDonationCompleted(deps.Causes, deps.Logger),
			tracker,
			handlercommon.DonationKey("credit"),
			"cause.HandleDonationCompleted",
			deps.Logger,
		),
	)
	bus.Register(
		events.EventTypeWithdrawalRequested,
		handlercommon.WithIdempotency(
			withdrawalhandler.HandleRequested(deps.Withdrawals, deps.Logger),
			tracker,
			handlercommon.WithdrawalKey("process"),
			"withdrawal.HandleRequested",
			deps.Logger,
		),
	)

	notify := notificationhandler.HandleEvent(deps.Notifier, deps.Logger)
	for _, t := range notificationhandler.Subscribed {
		bus.Register(t, notify)
	}

	if deps.Mailer != nil {
		bus.Register(
			events.EventTypeDonationCompleted,
			mailhandler.HandleDonationReceipt(deps.Mailer, deps.Logger),
		)
		bus.Register(
			events.EventTypeUserRegistered,
			mailhandler.HandleWelcome(deps.Mailer, deps.Logger),
		)
	}
}

func (a *App) setupEventBus() {
	SetupBus(Dependencies{
		Bus:         a.Deps.EventBus,
		Causes:      a.CauseService,
		Withdrawals: a.WithdrawalService,
		Notifier:    a.NotificationService,
		Mailer:      a.Deps.Mailer,
		Logger:      a.Deps.Logger,
	})
}
