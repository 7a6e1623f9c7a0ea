package cause

import (
	"context"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Crediter adds settled donations to a cause.
type Crediter interface {
	AddDonation(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

// HandleDonationCompleted credits the donation amount to its cause.
func HandleDonationCompleted(
	causes Crediter,
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
			"handler", "cause.HandleDonationCompleted",
			"event_type", e.Type(),
		)
		log.Info("🟢 [START] Received event")

		dc, ok := e.(*events.DonationCompleted)
		if !ok {
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"donation_id", dc.DonationID,
			"cause_id", dc.CauseID,
			"correlation_id", dc.CorrelationID,
		)

		if err := causes.AddDonation(ctx, dc.CauseID, dc.Amount); err != nil {
			log.Error("❌ [ERROR] Failed to credit cause", "error", err)
			return err
		}
		log.Info("✅ [SUCCESS] Cause credited", "amount", dc.Amount)
		return nil
	}
}
