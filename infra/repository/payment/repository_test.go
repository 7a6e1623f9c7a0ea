package payment

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/causehive/internal/fixtures/dbmock"
	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_Create_DuplicateReference(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	tx, err := payment.New(nil, decimal.NewFromInt(100), "GHS", "CH-1", "paystack", "a@example.com")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "payment_transactions"`).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	assert.ErrorIs(t, r.Create(context.Background(), tx), domain.ErrAlreadyExists)
}

func TestRepository_GetByReference(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payment_transactions" WHERE reference = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "status", "amount"}).
			AddRow(id.String(), "CH-1", "pending", "100.00"))

	got, err := r.GetByReference(context.Background(), "CH-1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, payment.StatusPending, got.Status)
	assert.False(t, got.IsTerminal())
}

func TestRepository_GetByReferenceForUpdate(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payment_transactions" WHERE reference = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "status", "amount"}).
			AddRow(id.String(), "CH-1", "completed", "100.00"))

	got, err := r.GetByReferenceForUpdate(context.Background(), "CH-1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsTerminal())
}

func TestRepository_GetByReference_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT \* FROM "payment_transactions"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.GetByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestRepository_Update(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	tx, err := payment.New(nil, decimal.NewFromInt(100), "GHS", "CH-1", "paystack", "a@example.com")
	require.NoError(t, err)
	require.NoError(t, tx.Complete("card", "Approved"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_transactions" SET .+"status"=\$\d.+ WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Update(context.Background(), tx))
}

func TestRepository_List_Search(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payment_transactions" WHERE status = \$1 AND \(reference ILIKE \$2 OR email ILIKE \$3\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "payment_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, count, err := r.List(context.Background(), repo.Filter{
		Status: payment.StatusCompleted,
		Search: "kofi",
	}, dto.NewPageRequest(1, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, got)
}
