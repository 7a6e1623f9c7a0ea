// Package cart manages donation carts for signed-in and anonymous donors.
package cart

import (
	"context"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/repository"
	cartrepo "github.com/amirasaad/causehive/pkg/repository/cart"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ref addresses a cart: the caller's active cart when CartID is nil, or a
// specific cart which must be anonymous or owned by UserID.
type Ref struct {
	UserID *uuid.UUID
	CartID *uuid.UUID
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// GetOrCreateUserCart returns the user's active cart. When several are
// active the newest wins and the others are abandoned.
func (s *Service) GetOrCreateUserCart(ctx context.Context, userID uuid.UUID) (c *cart.Cart, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = ActiveCart(ctx, repo, userID, s.logger)
		return err
	})
	return c, err
}

// ActiveCart is GetOrCreateUserCart against an already resolved repository.
func ActiveCart(
	ctx context.Context,
	repo cartrepo.Repository,
	userID uuid.UUID,
	logger *slog.Logger,
) (*cart.Cart, error) {
	carts, err := repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(carts) > 0 {
		for _, stale := range carts[1:] {
			stale.Abandon()
			if err := repo.UpdateStatus(ctx, stale); err != nil {
				return nil, err
			}
			logger.Info("Abandoned duplicate cart", "cartID", stale.ID, "userID", userID)
		}
		return carts[0], nil
	}
	c := cart.New(&userID)
	if err := repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateUserCart abandons any active cart and starts a fresh one.
func (s *Service) CreateUserCart(ctx context.Context, userID uuid.UUID) (c *cart.Cart, err error) {
	log := s.logger.With("context", "CreateUserCart", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		carts, err := repo.ListActiveByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, old := range carts {
			old.Abandon()
			if err := repo.UpdateStatus(ctx, old); err != nil {
				return err
			}
		}
		c = cart.New(&userID)
		return repo.Create(ctx, c)
	})
	if err != nil {
		log.Error("CreateUserCart failed", "error", err)
		return nil, err
	}
	log.Info("Cart created", "cartID", c.ID)
	return c, nil
}

// GetCart resolves ref to a cart.
func (s *Service) GetCart(ctx context.Context, ref Ref) (c *cart.Cart, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = s.resolve(ctx, repo, ref, false)
		return err
	})
	return c, err
}

// Resolve looks up the cart addressed by ref inside an existing unit of work.
func Resolve(
	ctx context.Context,
	repo cartrepo.Repository,
	ref Ref,
	logger *slog.Logger,
) (*cart.Cart, error) {
	return resolveCart(ctx, repo, ref, false, logger)
}

func (s *Service) resolve(
	ctx context.Context,
	repo cartrepo.Repository,
	ref Ref,
	createAnonymous bool,
) (*cart.Cart, error) {
	return resolveCart(ctx, repo, ref, createAnonymous, s.logger)
}

func resolveCart(
	ctx context.Context,
	repo cartrepo.Repository,
	ref Ref,
	createAnonymous bool,
	logger *slog.Logger,
) (*cart.Cart, error) {
	if ref.CartID != nil {
		c, err := repo.Get(ctx, *ref.CartID)
		if err != nil {
			return nil, err
		}
		if !c.OwnedBy(ref.UserID) {
			return nil, cart.ErrCartNotFound
		}
		return c, nil
	}
	if ref.UserID != nil {
		return ActiveCart(ctx, repo, *ref.UserID, logger)
	}
	if !createAnonymous {
		return nil, cart.ErrCartIDRequired
	}
	c := cart.New(nil)
	if err := repo.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Info("Anonymous cart created", "cartID", c.ID)
	return c, nil
}

// AddToCart adds a donation line for a cause that accepts donations.
// Anonymous callers without a cart get a new one.
func (s *Service) AddToCart(
	ctx context.Context,
	ref Ref,
	causeID uuid.UUID,
	amount decimal.Decimal,
	quantity int,
) (c *cart.Cart, item *cart.Item, err error) {
	log := s.logger.With("context", "AddToCart", "causeID", causeID)
	if quantity == 0 {
		quantity = 1
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		causes, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		target, err := causes.Get(ctx, causeID)
		if err != nil {
			return err
		}
		if !target.AcceptsDonations() {
			return cause.ErrNotAcceptingDonations
		}
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = s.resolve(ctx, repo, ref, true)
		if err != nil {
			return err
		}
		item, _, err = c.AddItem(causeID, amount, quantity)
		if err != nil {
			return err
		}
		return repo.SaveItem(ctx, item)
	})
	if err != nil {
		log.Warn("AddToCart failed", "error", err)
		return nil, nil, err
	}
	log.Info("Item added to cart", "cartID", c.ID, "itemID", item.ID, "quantity", item.Quantity)
	return c, item, nil
}

// UpdateItem changes a line's amount or quantity. A quantity of zero or
// less removes the line.
func (s *Service) UpdateItem(
	ctx context.Context,
	ref Ref,
	itemID uuid.UUID,
	amount *decimal.Decimal,
	quantity *int,
) (c *cart.Cart, err error) {
	log := s.logger.With("context", "UpdateCartItem", "itemID", itemID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = s.resolve(ctx, repo, ref, false)
		if err != nil {
			return err
		}
		if !c.IsActive() {
			return cart.ErrCartNotActive
		}
		idx := itemIndex(c, itemID)
		if idx < 0 {
			return cart.ErrCartItemNotFound
		}
		item := c.Items[idx]
		if quantity != nil && *quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return repo.DeleteItem(ctx, itemID)
		}
		if amount != nil {
			if !amount.IsPositive() {
				return domain.ErrAmountMustBePositive
			}
			item.DonationAmount = domain.Amount(*amount)
		}
		if quantity != nil {
			item.Quantity = *quantity
		}
		return repo.SaveItem(ctx, item)
	})
	if err != nil {
		log.Warn("UpdateCartItem failed", "error", err)
		return nil, err
	}
	return c, nil
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, ref Ref, itemID uuid.UUID) (c *cart.Cart, err error) {
	zero := 0
	return s.UpdateItem(ctx, ref, itemID, nil, &zero)
}

// DeleteCart removes a cart that has not been checked out.
func (s *Service) DeleteCart(ctx context.Context, ref Ref) error {
	log := s.logger.With("context", "DeleteCart")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := s.resolve(ctx, repo, ref, false)
		if err != nil {
			return err
		}
		if c.Status == cart.StatusCompleted {
			return cart.ErrCartNotActive
		}
		return repo.Delete(ctx, c.ID)
	})
	if err != nil {
		log.Warn("DeleteCart failed", "error", err)
		return err
	}
	return nil
}

func itemIndex(c *cart.Cart, itemID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
