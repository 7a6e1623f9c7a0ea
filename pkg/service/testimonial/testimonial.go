package testimonial

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/repository"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	testimonialrepo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	"github.com/google/uuid"
)

// Moderation is a staff decision on a testimonial. Nil fields are left as is.
type Moderation struct {
	Approve *bool
	Feature *bool
	Notes   *string
}

// LikeResult is the outcome of ToggleLike.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create reviews a visible cause. The review is marked verified when the
// user has a completed donation to it.
func (s *Service) Create(
	ctx context.Context,
	userID, causeID uuid.UUID,
	rating int,
	review string,
) (t *testimonial.Testimonial, err error) {
	log := s.logger.With("context", "CreateTestimonial", "userID", userID, "causeID", causeID)
	if err := testimonial.Validate(rating, review); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		causes, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := causes.Get(ctx, causeID)
		if err != nil {
			return err
		}
		if !c.IsPublic() {
			return cause.ErrCauseNotFound
		}

		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		exists, err := repo.Exists(ctx, causeID, userID)
		if err != nil {
			return err
		}
		if exists {
			return testimonial.ErrAlreadyReviewed
		}

		donations, err := repository.Resolve[donationrepo.Repository](uow)
		if err != nil {
			return err
		}
		verified, err := donations.HasCompleted(ctx, userID, causeID)
		if err != nil {
			return err
		}
		t, err = testimonial.New(causeID, userID, rating, review, verified)
		if err != nil {
			return err
		}
		return repo.Create(ctx, t)
	})
	if err != nil {
		log.Warn("CreateTestimonial failed", "error", err)
		return nil, err
	}
	log.Info("Testimonial created", "testimonialID", t.ID, "verified", t.IsVerifiedDonation)
	return t, nil
}

// Update edits the actor's own testimonial.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	actor *dto.Actor,
	rating int,
	review string,
) (t *testimonial.Testimonial, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = owned(ctx, repo, id, actor)
		if err != nil {
			return err
		}
		if err := t.Edit(rating, review); err != nil {
			return err
		}
		return repo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the actor's own testimonial.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *dto.Actor) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := owned(ctx, repo, id, actor); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func owned(
	ctx context.Context,
	repo testimonialrepo.Repository,
	id uuid.UUID,
	actor *dto.Actor,
) (*testimonial.Testimonial, error) {
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(t.UserID) {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

// ListForCause returns the approved testimonials of a cause.
func (s *Service) ListForCause(
	ctx context.Context,
	causeID uuid.UUID,
	sort testimonialrepo.Sort,
	featuredOnly bool,
	page dto.PageRequest,
) (*dto.Page[*testimonial.Testimonial], error) {
	approved := true
	return s.list(ctx, testimonialrepo.Filter{
		CauseID:      &causeID,
		Approved:     &approved,
		FeaturedOnly: featuredOnly,
		Sort:         normalizeSort(sort),
	}, page)
}

// ListMine returns every testimonial written by userID, approved or not.
func (s *Service) ListMine(
	ctx context.Context,
	userID uuid.UUID,
	page dto.PageRequest,
) (*dto.Page[*testimonial.Testimonial], error) {
	return s.list(ctx, testimonialrepo.Filter{UserID: &userID, Sort: testimonialrepo.SortNewest}, page)
}

// ModerationList is the staff view, filtered by approval and open reports.
func (s *Service) ModerationList(
	ctx context.Context,
	approved, reported *bool,
	page dto.PageRequest,
) (*dto.Page[*testimonial.Testimonial], error) {
	return s.list(ctx, testimonialrepo.Filter{
		Approved: approved,
		Reported: reported,
		Sort:     testimonialrepo.SortNewest,
	}, page)
}

func (s *Service) list(
	ctx context.Context,
	filter testimonialrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*testimonial.Testimonial], error) {
	repo, err := repository.Resolve[testimonialrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	items, count, err := repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

func normalizeSort(sort testimonialrepo.Sort) testimonialrepo.Sort {
	switch sort {
	case testimonialrepo.SortOldest, testimonialrepo.SortHighestRated:
		return sort
	}
	return testimonialrepo.SortNewest
}

// ToggleLike likes an approved testimonial or removes an existing like.
func (s *Service) ToggleLike(ctx context.Context, id, userID uuid.UUID) (res LikeResult, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := approved(ctx, repo, id); err != nil {
			return err
		}
		res.Liked, res.LikesCount, err = repo.ToggleLike(ctx, id, userID)
		return err
	})
	return res, err
}

// Report files a complaint. A user can report a testimonial once.
func (s *Service) Report(
	ctx context.Context,
	id, reporterID uuid.UUID,
	reason testimonial.ReportReason,
	description string,
) (r *testimonial.Report, err error) {
	log := s.logger.With("context", "ReportTestimonial", "testimonialID", id)
	r, err = testimonial.NewReport(id, reporterID, reason, description)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := approved(ctx, repo, id); err != nil {
			return err
		}
		exists, err := repo.ReportExists(ctx, id, reporterID)
		if err != nil {
			return err
		}
		if exists {
			return testimonial.ErrAlreadyReported
		}
		return repo.CreateReport(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Testimonial reported", "reason", reason)
	return r, nil
}

func approved(
	ctx context.Context,
	repo testimonialrepo.Repository,
	id uuid.UUID,
) (*testimonial.Testimonial, error) {
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsApproved {
		return nil, testimonial.ErrTestimonialNotFound
	}
	return t, nil
}

// Stats summarises the approved testimonials of a cause.
func (s *Service) Stats(ctx context.Context, causeID uuid.UUID) (*testimonial.Stats, error) {
	repo, err := repository.Resolve[testimonialrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.Stats(ctx, causeID)
}

// Moderate applies a staff decision.
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, m Moderation) (t *testimonial.Testimonial, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if m.Approve != nil {
			t.IsApproved = *m.Approve
		}
		if m.Feature != nil {
			t.IsFeatured = *m.Feature
		}
		if m.Notes != nil {
			t.ModerationNotes = strings.TrimSpace(*m.Notes)
		}
		return repo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Testimonial moderated",
		"testimonialID", t.ID, "approved", t.IsApproved, "featured", t.IsFeatured)
	return t, nil
}

func (s *Service) ReportsList(
	ctx context.Context,
	resolved *bool,
	page dto.PageRequest,
) (*dto.Page[*testimonial.Report], error) {
	repo, err := repository.Resolve[testimonialrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	items, count, err := repo.ListReports(ctx, resolved, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

func (s *Service) ResolveReport(ctx context.Context, id uuid.UUID) (r *testimonial.Report, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[testimonialrepo.Repository](uow)
		if err != nil {
			return err
		}
		r, err = repo.GetReport(ctx, id)
		if err != nil {
			return err
		}
		r.Resolve()
		return repo.UpdateReport(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
