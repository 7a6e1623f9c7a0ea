package analytics

import (
	"context"
	"time"

	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/analytics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const platformMetricsSQL = `SELECT
	(SELECT COUNT(*) FROM donations WHERE status = @completed) AS total_donations,
	(SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = @completed) AS total_amount,
	(SELECT COUNT(*) FROM causes WHERE status = @ongoing) AS live_causes,
	(SELECT COUNT(*) FROM categories) AS categories,
	(SELECT COUNT(*) FROM users) AS total_users`

const dashboardSQL = `SELECT
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM causes) AS total_causes,
	(SELECT COUNT(*) FROM donations WHERE status = @completed) AS total_donations,
	(SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = @completed) AS total_amount,
	(SELECT COUNT(*) FROM causes WHERE status = @under_review) AS pending_causes,
	(SELECT COUNT(*) FROM withdrawal_requests WHERE status IN @in_flight) AS pending_withdrawals`

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed analytics repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) PlatformMetrics(ctx context.Context) (*dto.PlatformMetrics, error) {
	var m dto.PlatformMetrics
	err := r.db.WithContext(ctx).Raw(platformMetricsSQL, map[string]any{
		"completed": string(donation.StatusCompleted),
		"ongoing":   string(cause.StatusOngoing),
	}).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	var d dto.Dashboard
	err := r.db.WithContext(ctx).Raw(dashboardSQL, map[string]any{
		"completed":    string(donation.StatusCompleted),
		"under_review": string(cause.StatusUnderReview),
		"in_flight": []string{
			string(withdrawal.StatusPending),
			string(withdrawal.StatusProcessing),
		},
	}).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) DonationsByMonth(ctx context.Context, since time.Time) ([]dto.MonthlyTotal, error) {
	rows := []dto.MonthlyTotal{}
	err := r.db.WithContext(ctx).
		Table("donations").
		Select("date_trunc('month', donated_at) AS month, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("status = ? AND donated_at >= ?", string(donation.StatusCompleted), since).
		Group("month").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

type causeRow struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

func (r *repository) TopCauses(ctx context.Context, limit int) ([]dto.CauseProgress, error) {
	var rows []causeRow
	err := r.db.WithContext(ctx).
		Table("causes").
		Select("id, name, target_amount, current_amount").
		Where("status NOT IN ?", cause.HiddenStatuses).
		Order("current_amount DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]dto.CauseProgress, 0, len(rows))
	for _, row := range rows {
		c := cause.Cause{TargetAmount: row.TargetAmount, CurrentAmount: row.CurrentAmount}
		result = append(result, dto.CauseProgress{
			ID:                 row.ID,
			Name:               row.Name,
			TargetAmount:       row.TargetAmount,
			CurrentAmount:      row.CurrentAmount,
			ProgressPercentage: c.ProgressPercentage(),
		})
	}
	return result, nil
}

func (r *repository) SignupsByDay(ctx context.Context, since time.Time) ([]dto.DailyCount, error) {
	rows := []dto.DailyCount{}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("date_trunc('day', date_joined) AS day, COUNT(*) AS count").
		Where("date_joined >= ?", since).
		Group("day").
		Order("day").
		Scan(&rows).Error
	return rows, err
}

var _ repo.Repository = (*repository)(nil)
