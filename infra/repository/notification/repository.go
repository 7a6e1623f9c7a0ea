package notification

import (
	"context"
	"time"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed notification repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func filterScope(filter repo.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case filter.UserID != nil && filter.Staff:
			db = db.Where("user_id = ? OR audience = ?", *filter.UserID, string(notification.AudienceStaff))
		case filter.UserID != nil:
			db = db.Where("user_id = ? AND audience = ?", *filter.UserID, string(notification.AudienceUser))
		}
		if filter.UnreadOnly {
			db = db.Where("is_read = ?", false)
		}
		if filter.Type != "" {
			db = db.Where("type = ?", string(filter.Type))
		}
		if filter.Priority != "" {
			db = db.Where("priority = ?", string(filter.Priority))
		}
		if !filter.IncludeArchived {
			db = db.Where("is_archived = ?", false)
		}
		return db
	}
}

func (r *repository) Create(ctx context.Context, n *notification.Notification) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(mapToModel(n)).Error
	})
}

func (r *repository) Update(ctx context.Context, n *notification.Notification) error {
	tx := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", n.ID).
		Updates(map[string]any{
			"is_read":     n.IsRead,
			"is_archived": n.IsArchived,
			"read_at":     n.ReadAt,
		})
	return common.Affected(tx, notification.ErrNotificationNotFound)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var m Notification
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, notification.ErrNotificationNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*notification.Notification, int64, error) {
	scope := filterScope(filter)
	var count int64
	if err := r.db.WithContext(ctx).Model(&Notification{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Notification
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*notification.Notification, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result, count, nil
}

func (r *repository) MarkAllRead(ctx context.Context, filter repo.Filter) (int64, error) {
	filter.UnreadOnly = true
	tx := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(filterScope(filter)).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *repository) UnreadCount(ctx context.Context, filter repo.Filter) (int64, error) {
	filter.UnreadOnly = true
	filter.IncludeArchived = false
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(filterScope(filter)).
		Count(&count).Error
	return count, err
}

var _ repo.Repository = (*repository)(nil)
