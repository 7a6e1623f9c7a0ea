package newsletter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	s := New("  Fan@Example.COM ")
	assert.Equal(t, "fan@example.com", s.Email)
	assert.True(t, s.IsActive)
	assert.ErrorIs(t, s.Resubscribe(), ErrAlreadySubscribed)

	s.Unsubscribe()
	assert.False(t, s.IsActive)
	require.NotNil(t, s.UnsubscribedAt)

	require.NoError(t, s.Resubscribe())
	assert.True(t, s.IsActive)
	assert.Nil(t, s.UnsubscribedAt)
}
