package withdrawal

import (
	"testing"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *Request {
	t.Helper()
	r, err := New(uuid.New(), uuid.New(), decimal.NewFromInt(200), 0.015, "",
		user.WithdrawalMethodBankTransfer, map[string]string{"bank_code": "GCB"})
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	r := newRequest(t)
	assert.Equal(t, StatusProcessing, r.Status)
	assert.Equal(t, domain.DefaultCurrency, r.Currency)
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(3)))
	assert.True(t, r.NetAmount.Equal(decimal.NewFromInt(197)))

	_, err := New(uuid.New(), uuid.New(), decimal.Zero, 0, "", user.WithdrawalMethodMobileMoney, nil)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	_, err = New(uuid.New(), uuid.New(), decimal.NewFromInt(1), 0, "", "cheque", nil)
	assert.ErrorIs(t, err, user.ErrInvalidWithdrawalMethod)
}

func TestCalculateFee(t *testing.T) {
	assert.True(t, CalculateFee(decimal.NewFromInt(100), 0).IsZero())
	assert.True(t, CalculateFee(decimal.RequireFromString("99.99"), 0.01).Equal(decimal.RequireFromString("1")))
}

func TestLifecycle(t *testing.T) {
	r := newRequest(t)
	r.MarkTransferInitiated("RCP_1", "TRF_1")
	assert.Equal(t, "TRF_1", r.TransactionID)
	assert.NotNil(t, r.ProcessedAt)
	assert.ErrorIs(t, r.Cancel(), ErrNotCancellable)

	require.NoError(t, r.Fail(""))
	assert.Equal(t, "transfer failed", r.FailureReason)
	assert.False(t, r.HoldsFunds())

	require.NoError(t, r.Retry())
	assert.Equal(t, StatusProcessing, r.Status)
	assert.Empty(t, r.TransactionID)
	assert.ErrorIs(t, r.Retry(), ErrNotRetryable)

	require.NoError(t, r.Complete())
	assert.NotNil(t, r.CompletedAt)
	assert.ErrorIs(t, r.Fail("x"), domain.ErrInvalidState)
}

func TestCancel(t *testing.T) {
	r := newRequest(t)
	assert.ErrorIs(t, r.Cancel(), ErrNotCancellable, "processing requests belong to the transfer worker")

	require.NoError(t, r.Fail("bank rejected"))
	require.NoError(t, r.Cancel())
	assert.Equal(t, StatusCancelled, r.Status)
	assert.ErrorIs(t, r.Cancel(), ErrNotCancellable)

	pending := newRequest(t)
	pending.Status = StatusPending
	require.NoError(t, pending.Cancel())
}
