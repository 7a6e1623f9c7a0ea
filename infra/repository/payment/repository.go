package payment

import (
	"context"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/payment"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed payment repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	tx *payment.Transaction,
) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(tx)).Error
	})
}

func (r *repository) Update(
	ctx context.Context,
	tx *payment.Transaction,
) error {
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"status":           string(tx.Status),
			"payment_method":   tx.PaymentMethod,
			"gateway_response": tx.GatewayResponse,
			"completed_at":     tx.CompletedAt,
			"updated_at":       tx.UpdatedAt,
		})
	return common.Affected(res, payment.ErrPaymentNotFound)
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*payment.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, payment.ErrPaymentNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) GetByReference(
	ctx context.Context,
	reference string,
) (*payment.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m).Error; err != nil {
		return nil, common.NotFound(err, payment.ErrPaymentNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) GetByReferenceForUpdate(
	ctx context.Context,
	reference string,
) (*payment.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference = ?", reference).
		First(&m).Error
	if err != nil {
		return nil, common.NotFound(err, payment.ErrPaymentNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*payment.Transaction, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.Search != "" {
			like := common.Like(filter.Search)
			db = db.Where("reference ILIKE ? OR email ILIKE ?", like, like)
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Transaction
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*payment.Transaction, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result, count, nil
}

var _ repo.Repository = (*repository)(nil)
