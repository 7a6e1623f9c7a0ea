package withdrawal

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter narrows withdrawal lists.
type Filter struct {
	UserID  *uuid.UUID
	CauseID *uuid.UUID
	Status  withdrawal.Status
}

// Repository defines data access for withdrawal requests.
type Repository interface {
	Create(ctx context.Context, w *withdrawal.Request) error
	Update(ctx context.Context, w *withdrawal.Request) error
	Get(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error)
	// GetForUpdate loads the request and locks its row for the transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error)
	GetByTransactionID(ctx context.Context, reference string) (*withdrawal.Request, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*withdrawal.Request, int64, error)
	// ListInFlight returns processing requests that have a transfer reference.
	ListInFlight(ctx context.Context, limit int) ([]*withdrawal.Request, error)
	// ReservedAmount sums requests for causeID that still hold funds.
	ReservedAmount(ctx context.Context, causeID uuid.UUID) (decimal.Decimal, error)
	Stats(ctx context.Context) (*dto.WithdrawalStats, error)
}
