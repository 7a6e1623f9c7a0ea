package testimonial

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
)

// Sort orders testimonial lists.
type Sort string

const (
	SortNewest       Sort = "newest"
	SortOldest       Sort = "oldest"
	SortHighestRated Sort = "highest_rated"
)

// Filter narrows testimonial lists.
type Filter struct {
	CauseID      *uuid.UUID
	UserID       *uuid.UUID
	Approved     *bool
	FeaturedOnly bool
	// Reported selects testimonials with (true) or without (false)
	// unresolved reports.
	Reported *bool
	Sort     Sort
}

// Repository defines data access for testimonials, likes and reports.
type Repository interface {
	Create(ctx context.Context, t *testimonial.Testimonial) error
	Update(ctx context.Context, t *testimonial.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error)
	Exists(ctx context.Context, causeID, userID uuid.UUID) (bool, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*testimonial.Testimonial, int64, error)
	Stats(ctx context.Context, causeID uuid.UUID) (*testimonial.Stats, error)

	// ToggleLike adds or removes userID's like and returns the new state
	// and like count.
	ToggleLike(ctx context.Context, testimonialID, userID uuid.UUID) (liked bool, likes int64, err error)

	CreateReport(ctx context.Context, r *testimonial.Report) error
	ReportExists(ctx context.Context, testimonialID, reporterID uuid.UUID) (bool, error)
	GetReport(ctx context.Context, id uuid.UUID) (*testimonial.Report, error)
	UpdateReport(ctx context.Context, r *testimonial.Report) error
	ListReports(ctx context.Context, resolved *bool, page dto.PageRequest) ([]*testimonial.Report, int64, error)
}
