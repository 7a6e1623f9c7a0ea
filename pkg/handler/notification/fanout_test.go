package notification

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	stored []*notification.Notification
	err    error
}

func (r *recorder) Notify(_ context.Context, n *notification.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.stored = append(r.stored, n)
	return nil
}

func TestBuild(t *testing.T) {
	organizer := uuid.New()
	causeID := uuid.New()

	t.Run("cause created goes to staff", func(t *testing.T) {
		got := Build(&events.CauseCreated{CauseEvent: events.CauseEvent{CauseID: causeID, OrganizerID: organizer, Name: "Clinic"}})
		require.Len(t, got, 1)
		assert.Equal(t, notification.TypeCausePending, got[0].Type)
		assert.Nil(t, got[0].UserID)
		assert.Equal(t, notification.AudienceStaff, got[0].Audience)
		assert.Equal(t, causeID, *got[0].CauseID)
	})

	t.Run("rejection reaches organizer", func(t *testing.T) {
		got := Build(&events.CauseRejected{
			CauseEvent: events.CauseEvent{CauseID: causeID, OrganizerID: organizer, Name: "Clinic"},
			Reason:     "duplicate",
		})
		require.Len(t, got, 1)
		assert.Equal(t, organizer, *got[0].UserID)
		assert.Contains(t, got[0].Message, "duplicate")
		assert.Equal(t, notification.PriorityHigh, got[0].Priority)
	})

	t.Run("donation reaches recipient", func(t *testing.T) {
		got := Build(&events.DonationCompleted{DonationEvent: events.DonationEvent{
			DonationID:  uuid.New(),
			CauseID:     causeID,
			RecipientID: organizer,
			Amount:      decimal.RequireFromString("12.5"),
			Currency:    "GHS",
		}})
		require.Len(t, got, 1)
		assert.Equal(t, notification.TypeNewDonation, got[0].Type)
		assert.Equal(t, organizer, *got[0].UserID)
		assert.Contains(t, got[0].Message, "GHS 12.50")
	})

	t.Run("withdrawal events notify organizer and staff", func(t *testing.T) {
		got := Build(&events.WithdrawalFailed{
			WithdrawalEvent: events.WithdrawalEvent{
				WithdrawalID: uuid.New(), UserID: organizer, CauseID: causeID,
				Amount: decimal.NewFromInt(100), Currency: "GHS",
			},
			Reason: "account closed",
		})
		require.Len(t, got, 2)
		assert.Equal(t, organizer, *got[0].UserID)
		assert.Equal(t, notification.AudienceUser, got[0].Audience)
		assert.Nil(t, got[1].UserID)
		assert.Equal(t, notification.AudienceStaff, got[1].Audience)
		for _, n := range got {
			assert.Equal(t, notification.TypeWithdrawalFailed, n.Type)
			assert.Contains(t, n.Message, "account closed")
		}
	})

	t.Run("user registration is low priority", func(t *testing.T) {
		got := Build(&events.UserRegistered{Email: "ama@example.com"})
		require.Len(t, got, 1)
		assert.Equal(t, notification.PriorityLow, got[0].Priority)
		assert.Contains(t, got[0].Message, "ama@example.com")
		assert.Equal(t, notification.AudienceStaff, got[0].Audience)
		assert.False(t, got[0].VisibleTo(uuid.New(), false))
	})

	t.Run("unrelated events", func(t *testing.T) {
		assert.Empty(t, Build(&events.PaymentCompleted{}))
	})
}

func TestHandleEvent(t *testing.T) {
	evt := &events.WithdrawalCompleted{
		WithdrawalEvent: events.WithdrawalEvent{UserID: uuid.New(), NetAmount: decimal.NewFromInt(97), Currency: "GHS"},
		Reference:       "WD-20250101-abc",
	}

	rec := &recorder{}
	require.NoError(t, HandleEvent(rec, slog.Default())(context.Background(), evt))
	assert.Len(t, rec.stored, 2)

	failing := &recorder{err: errors.New("insert failed")}
	assert.Error(t, HandleEvent(failing, slog.Default())(context.Background(), evt))
}
