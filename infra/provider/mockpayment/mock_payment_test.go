package mockpayment

import (
	"context"
	"testing"

	"github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMockPaymentProvider()

	_, err := m.VerifyPayment(ctx, "nope")
	assert.ErrorIs(t, err, payment.ErrGateway)

	resp, err := m.InitiatePayment(ctx, &payment.InitiatePaymentParams{Reference: "CH-1", Amount: 100})
	require.NoError(t, err)
	assert.Contains(t, resp.AuthorizationURL, "CH-1")

	v, err := m.VerifyPayment(ctx, "CH-1")
	require.NoError(t, err)
	assert.Equal(t, payment.PaymentCompleted, v.Status)

	m.SetPaymentStatus("CH-2", payment.PaymentFailed)
	_, err = m.InitiatePayment(ctx, &payment.InitiatePaymentParams{Reference: "CH-2"})
	require.NoError(t, err)
	v, err = m.VerifyPayment(ctx, "CH-2")
	require.NoError(t, err)
	assert.Equal(t, payment.PaymentFailed, v.Status)
}

func TestPayoutLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMockPaymentProvider()
	m.SetPayoutStatus("WD-1", payment.PayoutReversed)

	_, err := m.InitiatePayout(ctx, &payment.InitiatePayoutParams{Reference: "WD-1"})
	require.NoError(t, err)
	v, err := m.VerifyPayout(ctx, "WD-1")
	require.NoError(t, err)
	assert.Equal(t, payment.PayoutReversed, v.Status)
	assert.NotEmpty(t, v.Reason)
}

func TestHandleWebhook(t *testing.T) {
	m := NewMockPaymentProvider()
	_, err := m.HandleWebhook(context.Background(), []byte(`{}`), "wrong")
	assert.ErrorIs(t, err, payment.ErrInvalidSignature)

	ev, err := m.HandleWebhook(context.Background(), []byte(`{"event":"transfer.success","reference":"WD-1"}`), WebhookSignature)
	require.NoError(t, err)
	assert.Equal(t, payment.EventTransferSuccess, ev.Type)
	assert.Equal(t, "WD-1", ev.Reference)
}
