package cause

import (
	"testing"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCause(t *testing.T, target string) *Cause {
	t.Helper()
	c, err := New(uuid.New(), "Clean Water", "wells", nil, decimal.RequireFromString(target), "")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newCause(t, "1000")
	assert.Equal(t, StatusUnderReview, c.Status)
	assert.Equal(t, "clean-water", c.Slug)
	assert.True(t, c.CurrentAmount.IsZero())
	assert.False(t, c.IsPublic())

	_, err := New(uuid.New(), " ", "", nil, decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = New(uuid.New(), "x", "", nil, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrTargetMustBePositive)
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		target, current, want string
	}{
		{"1000", "0", "0"},
		{"1000", "250", "25"},
		{"3", "1", "33.33"},
		{"1000", "1500", "100"},
		{"1000", "-5", "0"},
	}
	for _, tc := range tests {
		c := newCause(t, tc.target)
		c.CurrentAmount = decimal.RequireFromString(tc.current)
		assert.True(t, c.ProgressPercentage().Equal(decimal.RequireFromString(tc.want)),
			"target=%s current=%s got=%s", tc.target, tc.current, c.ProgressPercentage())
	}

	c := newCause(t, "1")
	c.TargetAmount = decimal.Zero
	assert.True(t, c.ProgressPercentage().IsZero())
}

func TestApproveReject(t *testing.T) {
	c := newCause(t, "100")
	assert.ErrorIs(t, c.Reject(""), ErrRejectionReasonRequired)
	require.NoError(t, c.Reject("missing documents"))
	assert.Equal(t, StatusRejected, c.Status)
	assert.Equal(t, "missing documents", c.RejectionReason)

	require.NoError(t, c.Approve())
	assert.Equal(t, StatusOngoing, c.Status)
	assert.Empty(t, c.RejectionReason)
	assert.True(t, c.AcceptsDonations())

	assert.ErrorIs(t, c.Reject("late"), domain.ErrInvalidState)

	c.Status = StatusCompleted
	assert.ErrorIs(t, c.Approve(), domain.ErrInvalidState)
}

func TestSetStatus(t *testing.T) {
	c := newCause(t, "100")
	require.NoError(t, c.SetStatus(StatusApproved))
	assert.Equal(t, StatusOngoing, c.Status)
	assert.ErrorIs(t, c.SetStatus("bogus"), domain.ErrValidation)
}
