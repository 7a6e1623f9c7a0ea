package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/causehive/internal/fixtures/dbmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PlatformMetrics(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`(?s)SELECT.+AS total_donations.+AS total_users`).
		WithArgs("completed", "completed", "ongoing").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_donations", "total_amount", "live_causes", "categories", "total_users",
		}).AddRow(12, "4300.50", 4, 3, 40))

	m, err := r.PlatformMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), m.TotalDonations)
	assert.Equal(t, "4300.50", m.TotalAmount.StringFixed(2))
	assert.Equal(t, int64(4), m.LiveCauses)
	assert.Equal(t, int64(40), m.TotalUsers)
}

func TestRepository_Dashboard(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`(?s)SELECT.+AS pending_withdrawals`).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_users", "total_causes", "total_donations", "total_amount", "pending_causes", "pending_withdrawals",
		}).AddRow(40, 9, 12, "4300.50", 2, 1))

	d, err := r.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), d.TotalCauses)
	assert.Equal(t, int64(2), d.PendingCauses)
	assert.Equal(t, int64(1), d.PendingWithdrawals)
}

func TestRepository_DonationsByMonth(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	month := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT date_trunc\('month', donated_at\) AS month.+FROM "donations" WHERE status = \$1 AND donated_at >= \$2 GROUP BY "month" ORDER BY month`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count", "amount"}).
			AddRow(month, 3, "75.00"))

	rows, err := r.DonationsByMonth(context.Background(), month.AddDate(0, -6, 0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, month, rows[0].Month)
	assert.Equal(t, int64(3), rows[0].Count)
}

func TestRepository_TopCauses_ComputesProgress(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT id, name, target_amount, current_amount FROM "causes" WHERE status NOT IN .+ ORDER BY current_amount DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "target_amount", "current_amount"}).
			AddRow(uuid.NewString(), "Clean Water", "1000.00", "1500.00").
			AddRow(uuid.NewString(), "Books", "400.00", "100.00"))

	rows, err := r.TopCauses(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "100", rows[0].ProgressPercentage.String())
	assert.Equal(t, "25", rows[1].ProgressPercentage.String())
}
