// Package mail sends transactional emails in response to domain events.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/provider/mail"
)

// HandleDonationReceipt emails the donor once a donation settles.
func HandleDonationReceipt(
	mailer mail.Mailer,
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
			"handler", "mail.HandleDonationReceipt",
			"event_type", e.Type(),
		)
		dc, ok := e.(*events.DonationCompleted)
		if !ok {
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		if dc.DonorEmail == "" {
			return nil
		}
		log = log.With("donation_id", dc.DonationID)
		log.Info("🟢 [START] Sending donation receipt")

		err := mailer.Send(ctx, mail.Message{
			To:      dc.DonorEmail,
			Subject: "Thank you for your donation",
			Body: fmt.Sprintf(
				"Your donation of %s %s was received.\n\nDonation: %s\nPayment: %s\n",
				dc.Currency, dc.Amount.StringFixed(2), dc.DonationID, dc.PaymentID,
			),
		})
		if err != nil {
			log.Error("❌ [ERROR] Failed to send receipt", "error", err)
			return err
		}
		log.Info("✅ [SUCCESS] Receipt sent")
		return nil
	}
}

// HandleWelcome greets newly registered users.
func HandleWelcome(
	mailer mail.Mailer,
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
			"handler", "mail.HandleWelcome",
			"event_type", e.Type(),
		)
		ur, ok := e.(*events.UserRegistered)
		if !ok {
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log = log.With("user_id", ur.UserID)
		log.Info("🟢 [START] Sending welcome email")

		name := ur.FullName
		if name == "" {
			name = "there"
		}
		if err := mailer.Send(ctx, mail.Message{
			To:      ur.Email,
			Subject: "Welcome to CauseHive",
			Body:    fmt.Sprintf("Hi %s,\n\nYour CauseHive account is ready.\n", name),
		}); err != nil {
			log.Error("❌ [ERROR] Failed to send welcome email", "error", err)
			return err
		}
		log.Info("✅ [SUCCESS] Welcome email sent")
		return nil
	}
}
