package cause

import (
	"context"
	"time"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/cause"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed cause repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	c *cause.Cause,
) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(c)).Error
	})
}

func (r *repository) Update(
	ctx context.Context,
	c *cause.Cause,
) error {
	tx := r.db.WithContext(ctx).Model(&Cause{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":             c.Name,
			"slug":             c.Slug,
			"category_id":      c.CategoryID,
			"description":      c.Description,
			"target_amount":    c.TargetAmount,
			"status":           string(c.Status),
			"rejection_reason": c.RejectionReason,
			"cover_image_url":  c.CoverImageURL,
			"updated_at":       c.UpdatedAt,
		})
	return common.Affected(tx, cause.ErrCauseNotFound)
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	tx := r.db.WithContext(ctx).Delete(&Cause{}, "id = ?", id)
	return common.Affected(tx, cause.ErrCauseNotFound)
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*cause.Cause, error) {
	var m Cause
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, cause.ErrCauseNotFound)
	}
	return mapToDomain(&m), nil
}

// GetForUpdate loads the cause and locks its row until the surrounding
// transaction ends.
func (r *repository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*cause.Cause, error) {
	var m Cause
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, common.NotFound(err, cause.ErrCauseNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) ExistsByName(
	ctx context.Context,
	name string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Cause{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*cause.Cause, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if len(filter.Statuses) > 0 {
			db = db.Where("status IN ?", filter.Statuses)
		}
		if len(filter.ExcludeStatuses) > 0 {
			db = db.Where("status NOT IN ?", filter.ExcludeStatuses)
		}
		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.OrganizerID != nil {
			db = db.Where("organizer_id = ?", *filter.OrganizerID)
		}
		if filter.Search != "" {
			like := common.Like(filter.Search)
			db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Cause{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Cause
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*cause.Cause, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result, count, nil
}

// AddDonation increments current_amount in a single statement so concurrent
// settlements never lose an update.
func (r *repository) AddDonation(
	ctx context.Context,
	id uuid.UUID,
	amount decimal.Decimal,
) error {
	tx := r.db.WithContext(ctx).Model(&Cause{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_amount": gorm.Expr("current_amount + ?", amount),
			"updated_at":     time.Now().UTC(),
		})
	return common.Affected(tx, cause.ErrCauseNotFound)
}

var _ repo.Repository = (*repository)(nil)
