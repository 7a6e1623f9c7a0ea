package payment

import (
	"testing"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(nil, decimal.Zero, "", "ref", "paystack", "a@b.co")
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, err = New(nil, decimal.NewFromInt(10), "", "ref", "paystack", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	tx, err := New(nil, decimal.NewFromInt(10), "", "ref", "paystack", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, tx.Currency)
	assert.Equal(t, StatusPending, tx.Status)
}

func TestTransitions(t *testing.T) {
	tx, err := New(nil, decimal.NewFromInt(10), "GHS", "ref", "paystack", "a@b.co")
	require.NoError(t, err)

	require.NoError(t, tx.Complete("card", "Approved"))
	assert.True(t, tx.IsTerminal())
	assert.NotNil(t, tx.CompletedAt)
	assert.Equal(t, "card", tx.PaymentMethod)

	assert.ErrorIs(t, tx.Fail("late"), domain.ErrInvalidState)
	assert.ErrorIs(t, tx.Complete("card", ""), domain.ErrInvalidState)
}
