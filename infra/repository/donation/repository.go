package donation

import (
	"context"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/donation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderings = map[string]string{
	"donated_at": "donated_at",
	"amount":     "amount",
	"status":     "status",
}

const defaultOrdering = "donated_at DESC"

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed donation repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func filterScope(filter repo.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.CauseID != nil {
			db = db.Where("cause_id = ?", *filter.CauseID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		if filter.Search != "" {
			db = db.Where("email ILIKE ?", common.Like(filter.Search))
		}
		return db
	}
}

func (r *repository) Create(ctx context.Context, d *donation.Donation) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(d)).Error
	})
}

func (r *repository) Update(ctx context.Context, d *donation.Donation) error {
	tx := r.db.WithContext(ctx).Model(&Donation{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"payment_id": d.PaymentID,
			"status":     string(d.Status),
			"updated_at": d.UpdatedAt,
		})
	return common.Affected(tx, donation.ErrDonationNotFound)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	var m Donation
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, donation.ErrDonationNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]*donation.Donation, error) {
	var models []Donation
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Find(&models).Error; err != nil {
		return nil, err
	}
	return mapAll(models), nil
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*donation.Donation, int64, error) {
	scope := filterScope(filter)
	var count int64
	if err := r.db.WithContext(ctx).Model(&Donation{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Donation
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order(common.Ordering(filter.Ordering, orderings, defaultOrdering)).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	return mapAll(models), count, nil
}

func (r *repository) Stats(ctx context.Context, filter repo.Filter) (*dto.DonationStats, error) {
	filter.Status = donation.StatusCompleted
	var stats dto.DonationStats
	err := r.db.WithContext(ctx).
		Model(&Donation{}).
		Scopes(filterScope(filter)).
		Select(`COUNT(*) AS total_donations,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(DISTINCT COALESCE(user_id::text, email)) AS unique_donors,
			COUNT(DISTINCT cause_id) AS causes_supported`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *repository) HasCompleted(ctx context.Context, userID, causeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Donation{}).
		Where("user_id = ? AND cause_id = ? AND status = ?", userID, causeID, string(donation.StatusCompleted)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapAll(models []Donation) []*donation.Donation {
	result := make([]*donation.Donation, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result
}

var _ repo.Repository = (*repository)(nil)
