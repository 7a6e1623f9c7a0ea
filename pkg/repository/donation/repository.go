package donation

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
)

// Filter narrows donation lists. Ordering is a column name optionally
// prefixed with '-' for descending; unknown values fall back to
// -donated_at.
type Filter struct {
	UserID   *uuid.UUID
	CauseID  *uuid.UUID
	Status   donation.Status
	Search   string
	Ordering string
}

// Repository defines data access for donations.
type Repository interface {
	Create(ctx context.Context, d *donation.Donation) error
	Update(ctx context.Context, d *donation.Donation) error
	Get(ctx context.Context, id uuid.UUID) (*donation.Donation, error)
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]*donation.Donation, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*donation.Donation, int64, error)
	// Stats aggregates completed donations matching filter.
	Stats(ctx context.Context, filter Filter) (*dto.DonationStats, error)
	// HasCompleted reports whether userID completed a donation to causeID.
	HasCompleted(ctx context.Context, userID, causeID uuid.UUID) (bool, error)
}
