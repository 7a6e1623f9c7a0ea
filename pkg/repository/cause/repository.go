package cause

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter narrows cause lists. Empty fields do not filter.
type Filter struct {
	Statuses        []cause.Status
	ExcludeStatuses []cause.Status
	CategoryID      *uuid.UUID
	OrganizerID     *uuid.UUID
	Search          string
}

// Repository defines data access for causes.
type Repository interface {
	Create(ctx context.Context, c *cause.Cause) error
	Update(ctx context.Context, c *cause.Cause) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*cause.Cause, error)
	// GetForUpdate is Get with a row lock held for the current transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*cause.Cause, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*cause.Cause, int64, error)
	// AddDonation atomically increments current_amount.
	AddDonation(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}
