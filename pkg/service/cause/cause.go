// Package cause implements the cause lifecycle: submission by organizers,
// moderation by staff and public browsing.
package cause

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/amirasaad/causehive/pkg/repository"
	categoryrepo "github.com/amirasaad/causehive/pkg/repository/category"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput describes a new cause.
type CreateInput struct {
	Name          string
	Description   string
	CategoryID    *uuid.UUID
	TargetAmount  decimal.Decimal
	CoverImageURL string
}

// AdminUpdate is a partial update applied by staff. Nil fields are kept.
type AdminUpdate struct {
	Name          *string
	Description   *string
	CategoryID    *uuid.UUID
	TargetAmount  *decimal.Decimal
	CoverImageURL *string
	Status        *cause.Status
}

// ListFilter narrows public listings.
type ListFilter struct {
	CategoryID *uuid.UUID
	Search     string
}

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

// Create submits a cause for review.
func (s *Service) Create(
	ctx context.Context,
	organizerID uuid.UUID,
	in CreateInput,
) (c *cause.Cause, err error) {
	log := s.logger.With("context", "CreateCause", "organizerID", organizerID)
	c, err = cause.New(organizerID, in.Name, in.Description, in.CategoryID, in.TargetAmount, in.CoverImageURL)
	if err != nil {
		log.Warn("CreateCause rejected", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		if err := s.checkName(ctx, repo, c.Name); err != nil {
			return err
		}
		if c.CategoryID != nil {
			if err := checkCategory(ctx, uow, *c.CategoryID); err != nil {
				return err
			}
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		log.Error("CreateCause failed", "error", err)
		return nil, err
	}
	log.Info("Cause submitted", "causeID", c.ID)
	s.emit(ctx, &events.CauseCreated{CauseEvent: causeEvent(c)})
	return c, nil
}

func (s *Service) checkName(ctx context.Context, repo causerepo.Repository, name string) error {
	exists, err := repo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return cause.ErrNameTaken
	}
	return nil
}

func checkCategory(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) error {
	repo, err := repository.Resolve[categoryrepo.Repository](uow)
	if err != nil {
		return err
	}
	_, err = repo.Get(ctx, id)
	return err
}

// Get returns a cause. Causes under review or rejected are only visible to
// their organizer and staff; everyone else gets ErrCauseNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*cause.Cause, error) {
	repo, err := repository.Resolve[causerepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	c, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsPublic() && !actor.CanAccess(c.OrganizerID) {
		return nil, cause.ErrCauseNotFound
	}
	return c, nil
}

// ListPublic returns live, completed and cancelled causes.
func (s *Service) ListPublic(
	ctx context.Context,
	filter ListFilter,
	page dto.PageRequest,
) (*dto.Page[*cause.Cause], error) {
	return s.list(ctx, causerepo.Filter{
		ExcludeStatuses: cause.HiddenStatuses,
		CategoryID:      filter.CategoryID,
		Search:          strings.TrimSpace(filter.Search),
	}, page)
}

// ListMine returns every cause organized by userID regardless of status.
func (s *Service) ListMine(
	ctx context.Context,
	userID uuid.UUID,
	page dto.PageRequest,
) (*dto.Page[*cause.Cause], error) {
	return s.list(ctx, causerepo.Filter{OrganizerID: &userID}, page)
}

// AdminList returns causes matching filter.
func (s *Service) AdminList(
	ctx context.Context,
	filter causerepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*cause.Cause], error) {
	return s.list(ctx, filter, page)
}

func (s *Service) list(
	ctx context.Context,
	filter causerepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*cause.Cause], error) {
	repo, err := repository.Resolve[causerepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	items, count, err := repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

// Delete removes a cause. Only its organizer or staff may do so.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *dto.Actor) error {
	log := s.logger.With("context", "DeleteCause", "causeID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !actor.CanAccess(c.OrganizerID) {
			return cause.ErrNotOrganizer
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Warn("DeleteCause failed", "error", err)
		return err
	}
	log.Info("Cause deleted")
	return nil
}

// AdminUpdate applies a staff edit.
func (s *Service) AdminUpdate(
	ctx context.Context,
	id uuid.UUID,
	in AdminUpdate,
) (c *cause.Cause, err error) {
	log := s.logger.With("context", "AdminUpdateCause", "causeID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return cause.ErrNameRequired
			}
			if !strings.EqualFold(name, c.Name) {
				if err := s.checkName(ctx, repo, name); err != nil {
					return err
				}
			}
			c.Name = name
			c.Slug = utils.Slugify(name)
		}
		if in.Description != nil {
			c.Description = *in.Description
		}
		if in.CategoryID != nil {
			if err := checkCategory(ctx, uow, *in.CategoryID); err != nil {
				return err
			}
			c.CategoryID = in.CategoryID
		}
		if in.TargetAmount != nil {
			if !in.TargetAmount.IsPositive() {
				return cause.ErrTargetMustBePositive
			}
			c.TargetAmount = domain.Amount(*in.TargetAmount)
		}
		if in.CoverImageURL != nil {
			c.CoverImageURL = *in.CoverImageURL
		}
		if in.Status != nil {
			if err := c.SetStatus(*in.Status); err != nil {
				return err
			}
		}
		c.UpdatedAt = time.Now().UTC()
		return repo.Update(ctx, c)
	})
	if err != nil {
		log.Error("AdminUpdateCause failed", "error", err)
		return nil, err
	}
	log.Info("Cause updated", "status", c.Status)
	return c, nil
}

// Approve makes a cause live.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*cause.Cause, error) {
	c, err := s.moderate(ctx, id, (*cause.Cause).Approve)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, &events.CauseApproved{CauseEvent: causeEvent(c)})
	return c, nil
}

// Reject sends a cause back to its organizer with a reason.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*cause.Cause, error) {
	c, err := s.moderate(ctx, id, func(c *cause.Cause) error { return c.Reject(reason) })
	if err != nil {
		return nil, err
	}
	s.emit(ctx, &events.CauseRejected{CauseEvent: causeEvent(c), Reason: c.RejectionReason})
	return c, nil
}

func (s *Service) moderate(
	ctx context.Context,
	id uuid.UUID,
	apply func(*cause.Cause) error,
) (c *cause.Cause, err error) {
	log := s.logger.With("context", "ModerateCause", "causeID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(c); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		log.Warn("moderation failed", "error", err)
		return nil, err
	}
	log.Info("Cause moderated", "status", c.Status)
	return c, nil
}

// AddDonation credits a settled donation to the cause's raised amount.
func (s *Service) AddDonation(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.AddDonation(ctx, id, domain.Amount(amount))
	})
}

func (s *Service) emit(ctx context.Context, e events.Event) {
	if err := s.bus.Emit(ctx, e); err != nil {
		s.logger.Error("failed to emit event", "type", e.Type(), "error", err)
	}
}

func causeEvent(c *cause.Cause) events.CauseEvent {
	return events.CauseEvent{
		FlowEvent:   events.NewFlowEvent(uuid.Nil),
		CauseID:     c.ID,
		OrganizerID: c.OrganizerID,
		Name:        c.Name,
	}
}
