package cause

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crediterFunc func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

func (f crediterFunc) AddDonation(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return f(ctx, id, amount)
}

func TestHandleDonationCompleted(t *testing.T) {
	causeID := uuid.New()
	amount := decimal.RequireFromString("40.00")
	evt := &events.DonationCompleted{DonationEvent: events.DonationEvent{
		FlowEvent:  events.NewFlowEvent(uuid.Nil),
		DonationID: uuid.New(),
		CauseID:    causeID,
		Amount:     amount,
	}}

	t.Run("credits the cause", func(t *testing.T) {
		var credited decimal.Decimal
		handler := HandleDonationCompleted(crediterFunc(func(_ context.Context, id uuid.UUID, a decimal.Decimal) error {
			assert.Equal(t, causeID, id)
			credited = a
			return nil
		}), slog.Default())

		require.NoError(t, handler(context.Background(), evt))
		assert.True(t, amount.Equal(credited))
	})

	t.Run("propagates failure", func(t *testing.T) {
		boom := errors.New("db down")
		handler := HandleDonationCompleted(crediterFunc(func(context.Context, uuid.UUID, decimal.Decimal) error {
			return boom
		}), slog.Default())
		assert.ErrorIs(t, handler(context.Background(), evt), boom)
	})

	t.Run("ignores other events", func(t *testing.T) {
		handler := HandleDonationCompleted(crediterFunc(func(context.Context, uuid.UUID, decimal.Decimal) error {
			t.Fatal("should not be called")
			return nil
		}), slog.Default())
		assert.NoError(t, handler(context.Background(), &events.UserRegistered{}))
	})
}
