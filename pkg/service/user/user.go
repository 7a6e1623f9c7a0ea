// Package user provides account and profile management, including the
// payout directory lookups organizers need to fill in their profile.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrUnsupportedCountry is returned for countries without a bank directory.
var ErrUnsupportedCountry = errors.New("unsupported country")

type directory struct {
	currency string
	kind     payment.BankType
}

var countries = map[string]directory{
	"ghana":        {currency: "GHS", kind: payment.BankTypeBank},
	"nigeria":      {currency: "NGN", kind: "nuban"},
	"kenya":        {currency: "KES", kind: "kepss"},
	"south africa": {currency: "ZAR", kind: "basa"},
}

// Service provides business logic for user operations.
type Service struct {
	uow     repository.UnitOfWork
	banks   payment.BankDirectory
	cache   cache.Cache
	cfg     *config.Cache
	flights singleflight.Group
	logger  *slog.Logger
}

// New creates a new Service.
func New(
	uow repository.UnitOfWork,
	banks payment.BankDirectory,
	c cache.Cache,
	cfg *config.Cache,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		banks:  banks,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// GetMe returns the user with the given id.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	repo, err := repository.Resolve[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID)
}

// UpdateUser applies a partial update to the user's names.
func (s *Service) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	update dto.UserUpdate,
) (u *user.User, err error) {
	log := s.logger.With("context", "UpdateUser", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if update.FirstName != nil {
			u.FirstName = strings.TrimSpace(*update.FirstName)
		}
		if update.LastName != nil {
			u.LastName = strings.TrimSpace(*update.LastName)
		}
		u.UpdatedAt = time.Now().UTC()
		return repo.Update(ctx, u)
	})
	if err != nil {
		log.Error("UpdateUser failed", "error", err)
		return nil, err
	}
	log.Info("User updated")
	return u, nil
}

// GetProfile returns the user's profile.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	repo, err := repository.Resolve[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial profile update. Changing any payout
// field drops the cached transfer recipient.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update dto.ProfileUpdate,
) (p *user.Profile, err error) {
	log := s.logger.With("context", "UpdateProfile", "userID", userID)
	if update.WithdrawalMethod != nil && !user.WithdrawalMethod(*update.WithdrawalMethod).Valid() {
		return nil, user.ErrInvalidWithdrawalMethod
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		p, err = repo.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		p.UserID = userID
		set(&p.Bio, update.Bio)
		set(&p.PhoneNumber, update.PhoneNumber)
		set(&p.ProfilePictureURL, update.ProfilePictureURL)

		payout := false
		if update.WithdrawalMethod != nil && user.WithdrawalMethod(*update.WithdrawalMethod) != p.WithdrawalMethod {
			p.WithdrawalMethod = user.WithdrawalMethod(*update.WithdrawalMethod)
			payout = true
		}
		payout = set(&p.BankCode, update.BankCode) || payout
		payout = set(&p.BankName, update.BankName) || payout
		payout = set(&p.AccountNumber, update.AccountNumber) || payout
		payout = set(&p.AccountName, update.AccountName) || payout
		payout = set(&p.MobileMoneyProvider, update.MobileMoneyProvider) || payout
		payout = set(&p.MobileMoneyNumber, update.MobileMoneyNumber) || payout
		if payout {
			p.RecipientCode = ""
		}
		return repo.SaveProfile(ctx, p)
	})
	if err != nil {
		log.Error("UpdateProfile failed", "error", err)
		return nil, err
	}
	log.Info("Profile updated")
	return p, nil
}

// set assigns *src to *dst and reports whether the value changed.
func set(dst *string, src *string) bool {
	if src == nil {
		return false
	}
	v := strings.TrimSpace(*src)
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

// DeleteAccount removes the user after re-checking their password.
func (s *Service) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	log := s.logger.With("context", "DeleteAccount", "userID", userID)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(password, u.Password) {
			return user.ErrUserUnauthorized
		}
		return repo.Delete(ctx, userID)
	})
	if err != nil {
		log.Warn("DeleteAccount failed", "error", err)
		return err
	}
	log.Info("Account deleted")
	return nil
}

// AdminList returns a page of users.
func (s *Service) AdminList(
	ctx context.Context,
	filter dto.UserFilter,
	page dto.PageRequest,
) (*dto.Page[*user.User], error) {
	repo, err := repository.Resolve[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	users, count, err := repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(users, count, page), nil
}

// AdminGet returns any user by id.
func (s *Service) AdminGet(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.GetMe(ctx, id)
}

// AdminSetActive enables or disables an account.
func (s *Service) AdminSetActive(ctx context.Context, id uuid.UUID, active bool) (u *user.User, err error) {
	log := s.logger.With("context", "AdminSetActive", "userID", id, "active", active)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		u.IsActive = active
		u.UpdatedAt = time.Now().UTC()
		return repo.Update(ctx, u)
	})
	if err != nil {
		log.Error("AdminSetActive failed", "error", err)
		return nil, err
	}
	log.Info("User activation changed")
	return u, nil
}

// ListBanks returns the payout banks of a country. Results are cached and
// concurrent misses share one gateway call.
func (s *Service) ListBanks(ctx context.Context, country string) ([]payment.Bank, error) {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = "ghana"
	}
	dir, ok := countries[country]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCountry, country)
	}
	return s.directory(ctx, "banks:"+country, dir.currency, dir.kind)
}

// ListMobileMoneyProviders returns the mobile money networks payouts can
// be sent to.
func (s *Service) ListMobileMoneyProviders(ctx context.Context) ([]payment.Bank, error) {
	return s.directory(ctx, "banks:mobile_money", countries["ghana"].currency, payment.BankTypeMobileMoney)
}

func (s *Service) directory(
	ctx context.Context,
	key, currency string,
	kind payment.BankType,
) ([]payment.Bank, error) {
	log := s.logger.With("context", "ListBanks", "key", key)
	var banks []payment.Bank
	if err := cache.GetJSON(ctx, s.cache, key, &banks); err == nil {
		return banks, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("cache read failed", "error", err)
	}

	v, err, _ := s.flights.Do(key, func() (any, error) {
		banks, err := s.banks.ListBanks(ctx, currency, kind)
		if err != nil {
			return nil, err
		}
		if err := cache.SetJSON(ctx, s.cache, key, banks, s.cfg.BankListTTL); err != nil {
			log.Warn("cache write failed", "error", err)
		}
		return banks, nil
	})
	if err != nil {
		log.Error("bank directory lookup failed", "error", err)
		return nil, err
	}
	return v.([]payment.Bank), nil
}

// ResolveBankAccount asks the gateway for the holder of an account.
func (s *Service) ResolveBankAccount(
	ctx context.Context,
	accountNumber, bankCode string,
) (*payment.ResolvedAccount, error) {
	return s.banks.ResolveAccount(ctx, strings.TrimSpace(accountNumber), strings.TrimSpace(bankCode))
}
