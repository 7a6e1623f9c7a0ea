package user

import (
	"context"
	"errors"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed user repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	u *user.User,
) error {
	err := r.db.WithContext(ctx).Create(mapUserToModel(u)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return user.ErrEmailTaken
	}
	return common.MapGormErrorToDomain(err)
}

func (r *repository) Update(
	ctx context.Context,
	u *user.User,
) error {
	tx := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"password":   u.Password,
			"is_active":  u.IsActive,
			"is_staff":   u.IsStaff,
			"last_login": u.LastLogin,
			"updated_at": u.UpdatedAt,
		})
	return common.Affected(tx, user.ErrUserNotFound)
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, user.ErrUserNotFound)
	}
	return mapModelToUser(&m), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	var m User
	err := r.db.WithContext(ctx).
		Where("email = ?", user.NormalizeEmail(email)).
		First(&m).Error
	if err != nil {
		return nil, common.NotFound(err, user.ErrUserNotFound)
	}
	return mapModelToUser(&m), nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("email = ?", user.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	tx := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	return common.Affected(tx, user.ErrUserNotFound)
}

func (r *repository) List(
	ctx context.Context,
	filter dto.UserFilter,
	page dto.PageRequest,
) ([]*user.User, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			like := common.Like(filter.Search)
			db = db.Where(
				"email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
				like, like, like,
			)
		}
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		if filter.IsStaff != nil {
			db = db.Where("is_staff = ?", *filter.IsStaff)
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&User{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []User
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("date_joined DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*user.User, 0, len(models))
	for i := range models {
		result = append(result, mapModelToUser(&models[i]))
	}
	return result, count, nil
}

func (r *repository) ListStaff(ctx context.Context) ([]*user.User, error) {
	var models []User
	err := r.db.WithContext(ctx).
		Where("is_staff = ? AND is_active = ?", true, true).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	result := make([]*user.User, 0, len(models))
	for i := range models {
		result = append(result, mapModelToUser(&models[i]))
	}
	return result, nil
}

func (r *repository) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*user.Profile, error) {
	var m Profile
	err := r.db.WithContext(ctx).Limit(1).Find(&m, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	if m.UserID == uuid.Nil {
		return &user.Profile{UserID: userID}, nil
	}
	return mapModelToProfile(&m), nil
}

func (r *repository) SaveProfile(
	ctx context.Context,
	p *user.Profile,
) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				UpdateAll: true,
			}).
			Create(mapProfileToModel(p)).Error
	})
}

var _ repo.Repository = (*repository)(nil)
