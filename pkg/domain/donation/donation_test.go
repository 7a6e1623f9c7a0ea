package donation

import (
	"testing"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d, err := New(nil, uuid.New(), uuid.New(), decimal.RequireFromString("12.345"), "", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, domain.DefaultCurrency, d.Currency)
	assert.Nil(t, d.UserID)

	_, err = New(nil, uuid.New(), uuid.New(), decimal.Zero, "GHS", "")
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
}

func TestTransitions(t *testing.T) {
	d, err := New(nil, uuid.New(), uuid.New(), decimal.NewFromInt(5), "GHS", "")
	require.NoError(t, err)

	require.NoError(t, d.Complete())
	assert.Equal(t, StatusCompleted, d.Status)
	assert.ErrorIs(t, d.Complete(), domain.ErrInvalidState)
	assert.ErrorIs(t, d.Fail(), domain.ErrInvalidState)

	d2, err := New(nil, uuid.New(), uuid.New(), decimal.NewFromInt(5), "GHS", "")
	require.NoError(t, err)
	require.NoError(t, d2.Fail())
	assert.Equal(t, StatusFailed, d2.Status)
}
