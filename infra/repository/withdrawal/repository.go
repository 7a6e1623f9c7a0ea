package withdrawal

import (
	"context"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/withdrawal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var releasedStatuses = []string{
	string(withdrawal.StatusFailed),
	string(withdrawal.StatusCancelled),
}

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed withdrawal repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	w *withdrawal.Request,
) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(w)).Error
	})
}

func (r *repository) Update(
	ctx context.Context,
	w *withdrawal.Request,
) error {
	tx := r.db.WithContext(ctx).Model(&Request{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"status":         string(w.Status),
			"recipient_code": w.RecipientCode,
			"transaction_id": w.TransactionID,
			"failure_reason": w.FailureReason,
			"processed_at":   w.ProcessedAt,
			"completed_at":   w.CompletedAt,
			"updated_at":     w.UpdatedAt,
		})
	return common.Affected(tx, withdrawal.ErrWithdrawalNotFound)
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*withdrawal.Request, error) {
	var m Request
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, withdrawal.ErrWithdrawalNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*withdrawal.Request, error) {
	var m Request
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, common.NotFound(err, withdrawal.ErrWithdrawalNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) GetByTransactionID(
	ctx context.Context,
	reference string,
) (*withdrawal.Request, error) {
	var m Request
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", reference).First(&m).Error; err != nil {
		return nil, common.NotFound(err, withdrawal.ErrWithdrawalNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*withdrawal.Request, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.CauseID != nil {
			db = db.Where("cause_id = ?", *filter.CauseID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Request{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Request
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("requested_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	return mapAll(models), count, nil
}

func (r *repository) ListInFlight(
	ctx context.Context,
	limit int,
) ([]*withdrawal.Request, error) {
	var models []Request
	err := r.db.WithContext(ctx).
		Where("status = ? AND transaction_id <> ''", string(withdrawal.StatusProcessing)).
		Order("processed_at").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return mapAll(models), nil
}

func (r *repository) ReservedAmount(
	ctx context.Context,
	causeID uuid.UUID,
) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Select("SUM(amount)").
		Where("cause_id = ? AND status NOT IN ?", causeID, releasedStatuses).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type statsRow struct {
	TotalRequests int64
	TotalAmount   decimal.Decimal
	Completed     int64
	Failed        int64
	Processing    int64
	AverageAmount decimal.Decimal
}

func (r *repository) Stats(ctx context.Context) (*dto.WithdrawalStats, error) {
	var row statsRow
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Select(`COUNT(*) AS total_requests,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'failed') AS failed,
			COUNT(*) FILTER (WHERE status = 'processing') AS processing,
			COALESCE(ROUND(AVG(amount), 2), 0) AS average_amount`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	stats := &dto.WithdrawalStats{
		TotalRequests: row.TotalRequests,
		TotalAmount:   row.TotalAmount,
		Completed:     row.Completed,
		Failed:        row.Failed,
		Processing:    row.Processing,
		AverageAmount: row.AverageAmount,
	}
	if row.TotalRequests > 0 {
		stats.SuccessRate, _ = decimal.NewFromInt(row.Completed).
			Div(decimal.NewFromInt(row.TotalRequests)).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			Float64()
	}
	return stats, nil
}

func mapAll(models []Request) []*withdrawal.Request {
	result := make([]*withdrawal.Request, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result
}

var _ repo.Repository = (*repository)(nil)
