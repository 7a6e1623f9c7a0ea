package notification

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/repository"
	notificationrepo "github.com/amirasaad/causehive/pkg/repository/notification"
	"github.com/google/uuid"
)

// AlertInput describes a system alert created by staff.
type AlertInput struct {
	Title    string
	Message  string
	Priority notification.Priority
	UserID   *uuid.UUID
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) repo() (notificationrepo.Repository, error) {
	return repository.Resolve[notificationrepo.Repository](s.uow)
}

// Notify stores n.
func (s *Service) Notify(ctx context.Context, n *notification.Notification) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[notificationrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, n)
	})
}

// List returns the actor's notifications, newest first. Staff also see the
// staff inbox. Archived notifications are never included.
func (s *Service) List(
	ctx context.Context,
	actor *dto.Actor,
	filter notificationrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*notification.Notification], error) {
	if actor == nil {
		return dto.NewPage([]*notification.Notification{}, 0, page), nil
	}
	filter.UserID = &actor.UserID
	filter.Staff = actor.IsStaff
	filter.IncludeArchived = false
	return s.AdminList(ctx, filter, page)
}

// MarkRead marks one notification read. Notifications the actor cannot
// see are reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*notification.Notification, error) {
	return s.update(ctx, id, actor, (*notification.Notification).MarkRead)
}

// Archive hides a notification from the default list.
func (s *Service) Archive(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*notification.Notification, error) {
	return s.update(ctx, id, actor, func(n *notification.Notification) {
		n.IsArchived = true
	})
}

func (s *Service) update(
	ctx context.Context,
	id uuid.UUID,
	actor *dto.Actor,
	apply func(*notification.Notification),
) (n *notification.Notification, err error) {
	if actor == nil {
		return nil, notification.ErrNotificationNotFound
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[notificationrepo.Repository](uow)
		if err != nil {
			return err
		}
		n, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !n.VisibleTo(actor.UserID, actor.IsStaff) {
			return notification.ErrNotificationNotFound
		}
		apply(n)
		return repo.Update(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// MarkAllRead marks the user's own unread notifications read. The staff
// inbox is left to MarkRead and AdminMarkAllRead.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.AdminMarkAllRead(ctx, notificationrepo.Filter{UserID: &userID})
}

// UnreadCount counts what List would show as unread.
func (s *Service) UnreadCount(ctx context.Context, actor *dto.Actor) (int64, error) {
	if actor == nil {
		return 0, nil
	}
	repo, err := s.repo()
	if err != nil {
		return 0, err
	}
	return repo.UnreadCount(ctx, notificationrepo.Filter{UserID: &actor.UserID, Staff: actor.IsStaff})
}

func (s *Service) AdminList(
	ctx context.Context,
	filter notificationrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*notification.Notification], error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	items, count, err := repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

// AdminCreate sends a system alert to one user, or to staff when no user
// is given.
func (s *Service) AdminCreate(ctx context.Context, in AlertInput) (*notification.Notification, error) {
	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)
	if title == "" || message == "" {
		return nil, domain.ErrValidation
	}
	var opts []notification.Option
	if in.UserID != nil {
		opts = append(opts, notification.ForUser(*in.UserID))
	}
	n := notification.New(notification.TypeSystemAlert, in.Priority, title, message, opts...)
	if err := s.Notify(ctx, n); err != nil {
		s.logger.Error("failed to create alert", "error", err)
		return nil, err
	}
	s.logger.Info("System alert created", "notificationID", n.ID, "priority", n.Priority)
	return n, nil
}

// AdminMarkAllRead marks every unread notification matching filter read.
func (s *Service) AdminMarkAllRead(ctx context.Context, filter notificationrepo.Filter) (count int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[notificationrepo.Repository](uow)
		if err != nil {
			return err
		}
		count, err = repo.MarkAllRead(ctx, filter)
		return err
	})
	return count, err
}
