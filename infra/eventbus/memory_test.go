package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	bus := NewWithMemory(nil)

	var got []string
	bus.Register(events.EventTypePaymentCompleted, func(ctx context.Context, e events.Event) error {
		got = append(got, e.Type())
		return nil
	})
	bus.Register(events.EventTypePaymentFailed, func(ctx context.Context, e events.Event) error {
		t.Fatal("failed handler must not run")
		return nil
	})

	evt := &events.PaymentCompleted{
		FlowEvent: events.NewFlowEvent(uuid.Nil),
		Reference: "CH-20250101-abc",
		Amount:    decimal.NewFromInt(50),
	}
	require.NoError(t, bus.Emit(context.Background(), evt))

	assert.Equal(t, []string{events.EventTypePaymentCompleted.String()}, got)
	assert.Len(t, bus.Published(), 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_HandlerErrorsAreSwallowed(t *testing.T) {
	bus := NewWithMemory(nil)

	calls := 0
	bus.Register(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		calls++
		return errors.New("mailer down")
	})
	bus.Register(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		calls++
		panic("boom")
	})
	bus.Register(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		calls++
		return nil
	})

	err := bus.Emit(context.Background(), &events.UserRegistered{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestMemoryAsyncEventBus_RunsHandlers(t *testing.T) {
	bus := NewWithMemoryAsync(nil)

	var calls atomic.Int32
	bus.Register(events.EventTypeDonationCompleted, func(ctx context.Context, e events.Event) error {
		calls.Add(1)
		return nil
	})
	bus.Register(events.EventTypeDonationCompleted, func(ctx context.Context, e events.Event) error {
		calls.Add(1)
		return errors.New("ignored")
	})

	ctx, cancel := context.WithCancel(context.Background())
	for range 3 {
		require.NoError(t, bus.Emit(ctx, &events.DonationCompleted{}))
	}
	cancel()
	bus.Wait()

	assert.Equal(t, int32(6), calls.Load())
}
