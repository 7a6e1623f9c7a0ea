package donation

import (
	"context"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/repository"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) repo() (donationrepo.Repository, error) {
	return repository.Resolve[donationrepo.Repository](s.uow)
}

// ListMine returns the caller's donations. The user in filter is
// always replaced by userID.
func (s *Service) ListMine(
	ctx context.Context,
	userID uuid.UUID,
	filter donationrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*donation.Donation], error) {
	filter.UserID = &userID
	return s.AdminList(ctx, filter, page)
}

// Get returns a donation visible to its donor, its recipient or staff.
func (s *Service) Get(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*donation.Donation, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	d, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, donation.ErrDonationNotFound
	}
	donor := d.UserID != nil && *d.UserID == actor.UserID
	if !donor && !actor.CanAccess(d.RecipientID) {
		return nil, donation.ErrDonationNotFound
	}
	return d, nil
}

// Statistics summarises the caller's completed donations.
func (s *Service) Statistics(ctx context.Context, userID uuid.UUID) (*dto.DonationStats, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.Stats(ctx, donationrepo.Filter{UserID: &userID})
}

func (s *Service) AdminList(
	ctx context.Context,
	filter donationrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*donation.Donation], error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	items, count, err := repo.List(ctx, filter, page)
	if err != nil {
		s.logger.Error("failed to list donations", "error", err)
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

// AdminStatistics summarises completed donations platform wide.
func (s *Service) AdminStatistics(ctx context.Context, filter donationrepo.Filter) (*dto.DonationStats, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.Stats(ctx, filter)
}
