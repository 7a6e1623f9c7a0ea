package common

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donationCompleted(id uuid.UUID) *events.DonationCompleted {
	return &events.DonationCompleted{DonationEvent: events.DonationEvent{
		FlowEvent:  events.NewFlowEvent(uuid.Nil),
		DonationID: id,
		CauseID:    uuid.New(),
		Amount:     decimal.NewFromInt(10),
	}}
}

func TestWithIdempotency_SkipsRedelivery(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	h := WithIdempotency(func(context.Context, events.Event) error {
		calls.Add(1)
		return nil
	}, NewIdempotencyTracker(), DonationKey("credit"), "test", slog.Default())

	evt := donationCompleted(uuid.New())
	require.NoError(t, h(context.Background(), evt))
	require.NoError(t, h(context.Background(), evt))
	require.NoError(t, h(context.Background(), donationCompleted(uuid.New())))
	assert.Equal(t, int32(2), calls.Load())
}

func TestWithIdempotency_FailureAllowsRetry(t *testing.T) {
	t.Parallel()
	tracker := NewIdempotencyTracker()
	fail := true
	h := WithIdempotency(func(context.Context, events.Event) error {
		if fail {
			return errors.New("db down")
		}
		return nil
	}, tracker, DonationKey("credit"), "test", slog.Default())

	evt := donationCompleted(uuid.New())
	assert.Error(t, h(context.Background(), evt))
	assert.False(t, tracker.Seen("credit:"+evt.DonationID.String()))

	fail = false
	require.NoError(t, h(context.Background(), evt))
	assert.True(t, tracker.Seen("credit:"+evt.DonationID.String()))
}

func TestWithIdempotency_Concurrent(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	h := WithIdempotency(func(context.Context, events.Event) error {
		calls.Add(1)
		return nil
	}, NewIdempotencyTracker(), DonationKey("credit"), "test", slog.Default())

	evt := donationCompleted(uuid.New())
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h(context.Background(), evt))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestKeyExtractors(t *testing.T) {
	t.Parallel()
	wid := uuid.New()
	flow := events.NewFlowEvent(uuid.Nil)
	wr := &events.WithdrawalRequested{WithdrawalEvent: events.WithdrawalEvent{FlowEvent: flow, WithdrawalID: wid}}
	assert.Equal(t, "process:"+wid.String()+":"+flow.ID.String(), WithdrawalKey("process")(wr))

	retried := &events.WithdrawalRequested{WithdrawalEvent: events.WithdrawalEvent{
		FlowEvent:    events.NewFlowEvent(uuid.Nil),
		WithdrawalID: wid,
	}}
	assert.NotEqual(t, WithdrawalKey("process")(wr), WithdrawalKey("process")(retried))
	assert.Empty(t, WithdrawalKey("process")(donationCompleted(uuid.New())))
	assert.Empty(t, DonationKey("credit")(wr))
}
