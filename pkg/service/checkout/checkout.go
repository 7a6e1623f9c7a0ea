// Package checkout turns carts into pending donations backed by a single
// gateway charge.
package checkout

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
	cartrepo "github.com/amirasaad/causehive/pkg/repository/cart"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	paymentrepo "github.com/amirasaad/causehive/pkg/repository/payment"
	cartsvc "github.com/amirasaad/causehive/pkg/service/cart"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway is the part of a payment provider checkout needs.
type Gateway interface {
	Name() string
	provider.Payment
}

// Result is what the donor needs to complete payment at the gateway.
type Result struct {
	PaymentID        uuid.UUID       `json:"payment_id"`
	Reference        string          `json:"reference"`
	AuthorizationURL string          `json:"authorization_url"`
	AccessCode       string          `json:"access_code,omitempty"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Currency         string          `json:"currency"`
}

type Service struct {
	uow      repository.UnitOfWork
	gateway  Gateway
	currency string
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	gateway Gateway,
	currency string,
	logger *slog.Logger,
) *Service {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Service{uow: uow, gateway: gateway, currency: currency, logger: logger}
}

// Checkout charges every line of the caller's cart. Signed-in users
// check out their active cart unless cartID names another one they own;
// anonymous callers must pass both cartID and email.
func (s *Service) Checkout(
	ctx context.Context,
	actor *dto.Actor,
	cartID *uuid.UUID,
	email string,
) (res *Result, err error) {
	log := s.logger.With("context", "Checkout")
	var userID *uuid.UUID
	if actor != nil {
		userID = &actor.UserID
	} else if cartID == nil {
		return nil, cart.ErrCartIDRequired
	}
	email = donorEmail(actor, email)
	if email == "" {
		return nil, payment.ErrEmailRequired
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		carts, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := cartsvc.Resolve(ctx, carts, cartsvc.Ref{UserID: userID, CartID: cartID}, s.logger)
		if err != nil {
			return err
		}
		if !c.IsActive() {
			return cart.ErrCartNotActive
		}
		res, err = s.charge(ctx, uow, c, userID, email)
		if err != nil {
			return err
		}
		if err := c.Complete(); err != nil {
			return err
		}
		return carts.UpdateStatus(ctx, c)
	})
	if err != nil {
		log.Error("Checkout failed", "error", err)
		return nil, err
	}
	log.Info("Checkout initiated",
		"paymentID", res.PaymentID,
		"reference", res.Reference,
		"total", res.TotalAmount,
	)
	return res, nil
}

// Donate is a single-cause checkout. The cause's line is dropped from the
// donor's active cart so it is not charged twice.
func (s *Service) Donate(
	ctx context.Context,
	actor *dto.Actor,
	causeID uuid.UUID,
	amount decimal.Decimal,
	email string,
) (res *Result, err error) {
	log := s.logger.With("context", "Donate", "causeID", causeID)
	var userID *uuid.UUID
	if actor != nil {
		userID = &actor.UserID
	}
	email = donorEmail(actor, email)
	if email == "" {
		return nil, payment.ErrEmailRequired
	}
	transient := cart.New(userID)
	if _, _, err := transient.AddItem(causeID, amount, 1); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		res, err = s.charge(ctx, uow, transient, userID, email)
		if err != nil {
			return err
		}
		if userID == nil {
			return nil
		}
		carts, err := repository.Resolve[cartrepo.Repository](uow)
		if err != nil {
			return err
		}
		active, err := carts.ListActiveByUser(ctx, *userID)
		if err != nil {
			return err
		}
		for _, c := range active {
			if item := c.FindItem(causeID); item != nil {
				if err := carts.DeleteItem(ctx, item.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Donate failed", "error", err)
		return nil, err
	}
	log.Info("Donation initiated", "paymentID", res.PaymentID, "reference", res.Reference)
	return res, nil
}

// charge creates the pending donations and payment for c and opens the
// gateway transaction. Any failure aborts the surrounding unit of work.
func (s *Service) charge(
	ctx context.Context,
	uow repository.UnitOfWork,
	c *cart.Cart,
	userID *uuid.UUID,
	email string,
) (*Result, error) {
	if len(c.Items) == 0 {
		return nil, cart.ErrCartEmpty
	}
	causes, err := repository.Resolve[causerepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	donations, err := repository.Resolve[donationrepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	payments, err := repository.Resolve[paymentrepo.Repository](uow)
	if err != nil {
		return nil, err
	}

	pending := make([]*donation.Donation, 0, len(c.Items))
	for _, item := range c.Items {
		target, err := causes.Get(ctx, item.CauseID)
		if err != nil {
			return nil, err
		}
		if !target.AcceptsDonations() {
			return nil, cause.ErrNotAcceptingDonations
		}
		d, err := donation.New(userID, target.ID, target.OrganizerID, item.Total(), s.currency, email)
		if err != nil {
			return nil, err
		}
		pending = append(pending, d)
	}

	total := domain.Amount(c.TotalAmount())
	tx, err := payment.New(userID, total, s.currency, utils.NewReference("CH"), s.gateway.Name(), email)
	if err != nil {
		return nil, err
	}
	resp, err := s.gateway.InitiatePayment(ctx, &provider.InitiatePaymentParams{
		UserID:    userID,
		PaymentID: tx.ID,
		Reference: tx.Reference,
		Email:     email,
		Amount:    domain.ToMinorUnits(total),
		Currency:  s.currency,
		Metadata: map[string]string{
			"payment_id":     tx.ID.String(),
			"cart_id":        c.ID.String(),
			"donation_count": strconv.Itoa(len(pending)),
		},
	})
	if err != nil {
		return nil, err
	}
	if resp.Reference != "" {
		tx.Reference = resp.Reference
	}

	if err := payments.Create(ctx, tx); err != nil {
		return nil, err
	}
	for _, d := range pending {
		d.PaymentID = &tx.ID
		if err := donations.Create(ctx, d); err != nil {
			return nil, err
		}
	}
	return &Result{
		PaymentID:        tx.ID,
		Reference:        tx.Reference,
		AuthorizationURL: resp.AuthorizationURL,
		AccessCode:       resp.AccessCode,
		TotalAmount:      total,
		Currency:         tx.Currency,
	}, nil
}

func donorEmail(actor *dto.Actor, email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" && actor != nil {
		return actor.Email
	}
	return email
}
