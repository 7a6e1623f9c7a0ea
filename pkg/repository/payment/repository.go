package payment

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
)

// Filter narrows payment lists. Search matches reference or email.
type Filter struct {
	Status payment.Status
	UserID *uuid.UUID
	Search string
}

// Repository defines data access for payment transactions.
type Repository interface {
	Create(ctx context.Context, tx *payment.Transaction) error
	Update(ctx context.Context, tx *payment.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*payment.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*payment.Transaction, error)
	// GetByReferenceForUpdate loads the payment and locks its row for the
	// transaction.
	GetByReferenceForUpdate(ctx context.Context, reference string) (*payment.Transaction, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*payment.Transaction, int64, error)
}
