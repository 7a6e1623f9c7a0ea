package common

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"golang.org/x/sync/singleflight"
)

// KeyExtractor extracts an idempotency key from an event. An empty key
// disables the check for that event.
type KeyExtractor func(events.Event) string

// IdempotencyTracker remembers keys whose handler succeeded. It lives in
// process memory, so redeliveries after a restart are not caught.
type IdempotencyTracker struct {
	processed sync.Map
	inflight  singleflight.Group
}

func NewIdempotencyTracker() *IdempotencyTracker {
	return &IdempotencyTracker{}
}

// Seen reports whether key was processed.
func (t *IdempotencyTracker) Seen(key string) bool {
	_, ok := t.processed.Load(key)
	return ok
}

// WithIdempotency runs handler at most once per key. Concurrent deliveries
// of the same key wait for the first one and share its result; a failed
// attempt leaves the key free for a retry.
func WithIdempotency(
	handler eventbus.HandlerFunc,
	tracker *IdempotencyTracker,
	keyExtractor KeyExtractor,
	handlerName string,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		key := keyExtractor(e)
		if key == "" {
			return handler(ctx, e)
		}
		log := logger.With(
			"handler", handlerName,
			"event_type", e.Type(),
			"idempotency_key", key,
		)
		if tracker.Seen(key) {
			log.Info("🔁 [SKIP] Event already processed")
			return nil
		}

		_, err, _ := tracker.inflight.Do(key, func() (any, error) {
			if tracker.Seen(key) {
				return nil, nil
			}
			if err := handler(ctx, e); err != nil {
				return nil, err
			}
			tracker.processed.Store(key, struct{}{})
			return nil, nil
		})
		return err
	}
}

// DonationKey keys DonationCompleted events by donation.
func DonationKey(prefix string) KeyExtractor {
	return func(e events.Event) string {
		if dc, ok := e.(*events.DonationCompleted); ok {
			return prefix + ":" + dc.DonationID.String()
		}
		return ""
	}
}

// WithdrawalKey keys WithdrawalRequested events by withdrawal and event ID.
// A redelivered message keeps its event ID; an admin retry emits a new one
// and so starts a new transfer attempt.
func WithdrawalKey(prefix string) KeyExtractor {
	return func(e events.Event) string {
		if wr, ok := e.(*events.WithdrawalRequested); ok {
			return prefix + ":" + wr.WithdrawalID.String() + ":" + wr.ID.String()
		}
		return ""
	}
}
