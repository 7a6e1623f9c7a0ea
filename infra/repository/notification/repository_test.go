package notification

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/causehive/internal/fixtures/dbmock"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	n := notification.New(
		notification.TypeSystemAlert, notification.PriorityHigh,
		"Maintenance", "Payments paused at midnight",
	)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "notifications" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Create(context.Background(), n))
}

func TestRepository_List_UserSeesOwnRowsOnly(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE \(user_id = \$1 AND audience = \$2\) AND is_archived = \$3`).
		WithArgs(userID, "user", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE \(user_id = \$1 AND audience = \$2\) AND is_archived = \$3 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "priority", "audience", "user_id"}).
			AddRow(uuid.NewString(), "new_donation", "medium", "user", userID.String()))

	got, count, err := r.List(context.Background(), repo.Filter{UserID: &userID}, dto.NewPageRequest(1, 20, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, got, 1)
	assert.Equal(t, notification.AudienceUser, got[0].Audience)
}

func TestRepository_List_StaffIncludesInbox(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE \(user_id = \$1 OR audience = \$2\) AND is_read = \$3 AND is_archived = \$4`).
		WithArgs(userID, "staff", false, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE .+ ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "priority", "audience", "user_id"}).
			AddRow(uuid.NewString(), "new_donation", "medium", "user", userID.String()).
			AddRow(uuid.NewString(), "system_alert", "high", "staff", nil))

	got, count, err := r.List(context.Background(), repo.Filter{
		UserID:     &userID,
		Staff:      true,
		UnreadOnly: true,
	}, dto.NewPageRequest(1, 20, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, got, 2)
	assert.Nil(t, got[1].UserID)
	assert.Equal(t, notification.PriorityHigh, got[1].Priority)
	assert.Equal(t, notification.AudienceStaff, got[1].Audience)
}

func TestRepository_MarkAllRead(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1,"read_at"=\$2 WHERE \(user_id = \$3 AND audience = \$4\) AND is_read = \$5`).
		WithArgs(true, sqlmock.AnyArg(), userID, "user", false, false).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	updated, err := r.MarkAllRead(context.Background(), repo.Filter{UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}

func TestRepository_UnreadCount(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE \(user_id = \$1 AND audience = \$2\) AND is_read = \$3 AND is_archived = \$4`).
		WithArgs(userID, "user", false, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := r.UnreadCount(context.Background(), repo.Filter{UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
