package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/google/uuid"
)

// Processor starts the payout of a withdrawal request.
type Processor interface {
	Process(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error)
}

// HandleRequested initiates the gateway transfer for a new request. Payout
// failures are recorded on the request by the processor, so only
// infrastructure errors are returned.
func HandleRequested(
	processor Processor,
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
			"handler", "withdrawal.HandleRequested",
			"event_type", e.Type(),
		)
		log.Info("🟢 [START] Received event")

		wr, ok := e.(*events.WithdrawalRequested)
		if !ok {
			log.Error("Skipping unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", wr.WithdrawalID,
			"correlation_id", wr.CorrelationID,
		)

		w, err := processor.Process(ctx, wr.WithdrawalID)
		if err != nil {
			log.Error("❌ [ERROR] Failed to process withdrawal", "error", err)
			return err
		}
		log.Info("✅ [SUCCESS] Withdrawal processed", "status", w.Status, "transaction_id", w.TransactionID)
		return nil
	}
}
