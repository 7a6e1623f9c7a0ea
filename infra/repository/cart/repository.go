package cart

import (
	"context"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/cart"
	repo "github.com/amirasaad/causehive/pkg/repository/cart"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed cart repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	})
}

func (r *repository) Create(ctx context.Context, c *cart.Cart) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(mapToModel(c)).Error
	})
}

func (r *repository) UpdateStatus(ctx context.Context, c *cart.Cart) error {
	tx := r.db.WithContext(ctx).Model(&Cart{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"status":     string(c.Status),
			"updated_at": c.UpdatedAt,
		})
	return common.Affected(tx, cart.ErrCartNotFound)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var m Cart
	if err := r.db.WithContext(ctx).Scopes(withItems).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, cart.ErrCartNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Cart, error) {
	var models []Cart
	err := r.db.WithContext(ctx).
		Scopes(withItems).
		Where("user_id = ? AND status = ?", userID, string(cart.StatusActive)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	result := make([]*cart.Cart, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&Item{}).Error; err != nil {
			return err
		}
		return common.Affected(tx.Delete(&Cart{}, "id = ?", id), cart.ErrCartNotFound)
	})
}

func (r *repository) SaveItem(ctx context.Context, item *cart.Item) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"donation_amount", "quantity"}),
			}).
			Create(mapItemToModel(item)).Error
	})
}

func (r *repository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&Item{}, "id = ?", itemID)
	return common.Affected(tx, cart.ErrCartItemNotFound)
}

var _ repo.Repository = (*repository)(nil)
