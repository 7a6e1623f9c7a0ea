package cause

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/causehive/internal/fixtures/dbmock"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/cause"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	c, err := cause.New(uuid.New(), "Clean Water", "Boreholes for Tamale", nil, decimal.NewFromInt(5000), "")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "causes" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Create(context.Background(), c))
}

func TestRepository_Get(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "target_amount", "current_amount", "status"}).
		AddRow(id.String(), "Clean Water", "5000.00", "1250.50", "ongoing")
	mock.ExpectQuery(`SELECT \* FROM "causes" WHERE id = \$1`).WillReturnRows(rows)

	got, err := r.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, cause.StatusOngoing, got.Status)
	assert.True(t, got.CurrentAmount.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "25.01", got.ProgressPercentage().StringFixed(2))
}

func TestRepository_Get_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT \* FROM "causes"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, cause.ErrCauseNotFound)
}

func TestRepository_GetForUpdate(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "current_amount", "status"}).
		AddRow(id.String(), "300.00", "ongoing")
	mock.ExpectQuery(`SELECT \* FROM "causes" WHERE id = \$1 .*FOR UPDATE`).WillReturnRows(rows)

	got, err := r.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestRepository_List_PublicFilter(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	category := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "causes" WHERE status NOT IN \(\$1,\$2\) AND category_id = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "causes" WHERE status NOT IN .+ ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow(uuid.NewString(), "School Books", "ongoing"))

	got, count, err := r.List(context.Background(), repo.Filter{
		ExcludeStatuses: cause.HiddenStatuses,
		CategoryID:      &category,
	}, dto.NewPageRequest(1, 20, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, got, 1)
	assert.Equal(t, "School Books", got[0].Name)
}

func TestRepository_AddDonation_IsAtomicIncrement(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "causes" SET "current_amount"=current_amount \+ \$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.AddDonation(context.Background(), uuid.New(), decimal.NewFromInt(50)))
}

func TestRepository_AddDonation_MissingCause(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "causes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.AddDonation(context.Background(), uuid.New(), decimal.NewFromInt(50))
	assert.ErrorIs(t, err, cause.ErrCauseNotFound)
}
