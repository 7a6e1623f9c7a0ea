package newsletter

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/newsletter"
)

// Repository defines data access for newsletter subscriptions.
type Repository interface {
	Create(ctx context.Context, s *newsletter.Subscription) error
	Update(ctx context.Context, s *newsletter.Subscription) error
	GetByEmail(ctx context.Context, email string) (*newsletter.Subscription, error)
}
