package testimonial

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/causehive/internal/fixtures/dbmock"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_Create_AlreadyReviewed(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	tm, err := testimonial.New(uuid.New(), uuid.New(), 5, "Great work", true)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "testimonials"`).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	assert.ErrorIs(t, r.Create(context.Background(), tm), testimonial.ErrAlreadyReviewed)
}

func TestRepository_List_HighestRatedWithReports(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)
	reported := true

	mock.ExpectQuery(`SELECT count\(\*\) FROM "testimonials" WHERE EXISTS \(SELECT 1 FROM testimonial_reports r`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "testimonials" WHERE EXISTS .+ ORDER BY rating DESC,created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating", "likes_count"}).
			AddRow(uuid.NewString(), 2, 0))

	got, count, err := r.List(context.Background(), repo.Filter{
		Reported: &reported,
		Sort:     repo.SortHighestRated,
	}, dto.NewPageRequest(1, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Rating)
}

func TestRepository_Stats(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT rating, COUNT\(\*\) AS total FROM "testimonials" WHERE cause_id = \$1 AND is_approved = \$2 GROUP BY "rating"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "total"}).
			AddRow(5, 2).
			AddRow(4, 1))

	stats, err := r.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.InDelta(t, 4.67, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.Distribution[5])
	assert.Equal(t, int64(0), stats.Distribution[1])
}

func TestRepository_Stats_Empty(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectQuery(`SELECT rating, COUNT\(\*\) AS total FROM "testimonials"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "total"}))

	stats, err := r.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageRating)
	assert.Len(t, stats.Distribution, 5)
}

func TestRepository_ToggleLike_AddsLike(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "testimonial_likes" WHERE testimonial_id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "testimonial_likes"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE "testimonials" SET "likes_count"=GREATEST\(likes_count \+ \$1, 0\)`).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT likes_count FROM "testimonials" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(6))
	mock.ExpectCommit()

	liked, likes, err := r.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(6), likes)
}

func TestRepository_ToggleLike_RemovesLike(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "testimonial_likes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "testimonials" SET "likes_count"`).
		WithArgs(-1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT likes_count FROM "testimonials"`).
		WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(5))
	mock.ExpectCommit()

	liked, likes, err := r.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(5), likes)
}

func TestRepository_CreateReport_Duplicate(t *testing.T) {
	db, mock := dbmock.New(t)
	r := New(db)

	rep, err := testimonial.NewReport(uuid.New(), uuid.New(), testimonial.ReportReason("spam"), "")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "testimonial_reports"`).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	assert.ErrorIs(t, r.CreateReport(context.Background(), rep), testimonial.ErrAlreadyReported)
}
