package app

import (
	"context"
	"log/slog"
	"time"

	withdrawalsvc "github.com/amirasaad/causehive/pkg/service/withdrawal"
)

// PendingVerifier re-checks in-flight transfers with the gateway.
type PendingVerifier interface {
	VerifyPending(ctx context.Context, limit int) (*withdrawalsvc.Summary, error)
}

// PollerBatchSize bounds the transfers checked per tick.
const PollerBatchSize = 50

// RunWithdrawalPoller verifies pending withdrawals every interval until ctx
// is cancelled. It is the fallback for transfer webhooks that never arrive.
func RunWithdrawalPoller(
	ctx context.Context,
	verifier PendingVerifier,
	interval time.Duration,
	logger *slog.Logger,
) {
	if interval <= 0 {
		logger.Warn("Withdrawal poller disabled", "interval", interval)
		return
	}
	log := logger.With("worker", "withdrawal-poller")
	log.Info("🚀 Withdrawal poller started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Withdrawal poller stopped")
			return
		case <-ticker.C:
			if _, err := verifier.VerifyPending(ctx, PollerBatchSize); err != nil {
				log.Error("failed to verify pending withdrawals", "error", err)
			}
		}
	}
}
