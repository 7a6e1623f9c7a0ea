package testimonial

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(5, "Great cause"))
	assert.ErrorIs(t, Validate(0, "x"), ErrInvalidRating)
	assert.ErrorIs(t, Validate(6, "x"), ErrInvalidRating)
	assert.ErrorIs(t, Validate(3, "   "), ErrReviewRequired)
	assert.ErrorIs(t, Validate(3, strings.Repeat("a", MaxReviewLength+1)), ErrReviewTooLong)
	assert.NoError(t, Validate(3, strings.Repeat("a", MaxReviewLength)))
}

func TestNewAndEdit(t *testing.T) {
	tm, err := New(uuid.New(), uuid.New(), 4, "  Good work ", true)
	require.NoError(t, err)
	assert.Equal(t, "Good work", tm.ReviewText)
	assert.True(t, tm.IsApproved)
	assert.True(t, tm.IsVerifiedDonation)

	require.NoError(t, tm.Edit(2, "Changed my mind"))
	assert.Equal(t, 2, tm.Rating)
	assert.ErrorIs(t, tm.Edit(9, "x"), ErrInvalidRating)
	assert.Equal(t, 2, tm.Rating)
}

func TestNewReport(t *testing.T) {
	_, err := NewReport(uuid.New(), uuid.New(), "boring", "")
	assert.ErrorIs(t, err, ErrInvalidReason)

	r, err := NewReport(uuid.New(), uuid.New(), ReasonSpam, "ads")
	require.NoError(t, err)
	r.Resolve()
	assert.True(t, r.IsResolved)
	assert.NotNil(t, r.ResolvedAt)
}
