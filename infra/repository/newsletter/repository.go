package newsletter

import (
	"context"
	"errors"
	"strings"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	repo "github.com/amirasaad/causehive/pkg/repository/newsletter"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed newsletter repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *newsletter.Subscription) error {
	err := r.db.WithContext(ctx).Create(mapToModel(s)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return newsletter.ErrAlreadySubscribed
	}
	return common.MapGormErrorToDomain(err)
}

func (r *repository) Update(ctx context.Context, s *newsletter.Subscription) error {
	tx := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"is_active":       s.IsActive,
			"subscribed_at":   s.SubscribedAt,
			"unsubscribed_at": s.UnsubscribedAt,
		})
	return common.Affected(tx, newsletter.ErrSubscriptionNotFound)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscription, error) {
	var m Subscription
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, common.NotFound(err, newsletter.ErrSubscriptionNotFound)
	}
	return mapToDomain(&m), nil
}

var _ repo.Repository = (*repository)(nil)
