package category

import (
	"context"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/category"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	repo "github.com/amirasaad/causehive/pkg/repository/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed category repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *category.Category) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(c)).Error
	})
}

func (r *repository) Update(ctx context.Context, c *category.Category) error {
	tx := r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":        c.Name,
			"slug":        c.Slug,
			"description": c.Description,
		})
	return common.Affected(tx, category.ErrCategoryNotFound)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	return common.Affected(tx, category.ErrCategoryNotFound)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var m Category
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, category.ErrCategoryNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) List(ctx context.Context) ([]*category.Category, error) {
	var rows []row
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, COUNT(causes.id) AS cause_count").
		Joins(
			"LEFT JOIN causes ON causes.category_id = categories.id AND causes.status NOT IN ?",
			cause.HiddenStatuses,
		).
		Group("categories.id").
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c := mapToDomain(&rows[i].Category)
		c.CauseCount = rows[i].CauseCount
		result = append(result, c)
	}
	return result, nil
}

var _ repo.Repository = (*repository)(nil)
