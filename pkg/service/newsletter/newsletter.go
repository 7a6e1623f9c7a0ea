package newsletter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	"github.com/amirasaad/causehive/pkg/repository"
	newsletterrepo "github.com/amirasaad/causehive/pkg/repository/newsletter"
	"github.com/amirasaad/causehive/pkg/utils"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Subscribe signs email up, reactivating a lapsed subscription. created is
// false when the address was already subscribed or came back.
func (s *Service) Subscribe(ctx context.Context, email string) (sub *newsletter.Subscription, created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsEmail(email) {
		return nil, false, newsletter.ErrInvalidEmail
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[newsletterrepo.Repository](uow)
		if err != nil {
			return err
		}
		sub, err = repo.GetByEmail(ctx, email)
		if errors.Is(err, newsletter.ErrSubscriptionNotFound) {
			sub, created = newsletter.New(email), true
			return repo.Create(ctx, sub)
		}
		if err != nil {
			return err
		}
		if err := sub.Resubscribe(); errors.Is(err, newsletter.ErrAlreadySubscribed) {
			return nil
		}
		return repo.Update(ctx, sub)
	})
	if err != nil {
		s.logger.Error("Subscribe failed", "error", err)
		return nil, false, err
	}
	return sub, created, nil
}

// Unsubscribe deactivates the subscription of email.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[newsletterrepo.Repository](uow)
		if err != nil {
			return err
		}
		sub, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if !sub.IsActive {
			return nil
		}
		sub.Unsubscribe()
		return repo.Update(ctx, sub)
	})
}
