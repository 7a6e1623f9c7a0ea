// Package payment settles gateway charges and fans the outcome out to the
// donations they pay for.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/eventbus"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	paymentrepo "github.com/amirasaad/causehive/pkg/repository/payment"
	"github.com/google/uuid"
)

// TransferUpdater applies payout webhook notifications.
type TransferUpdater interface {
	ApplyTransferEvent(ctx context.Context, event *provider.PaymentEvent) error
}

// outcome is a gateway's view of a charge.
type outcome struct {
	status   provider.PaymentStatus
	amount   int64
	channel  string
	response string
}

type Service struct {
	uow       repository.UnitOfWork
	gateway   provider.Payment
	transfers TransferUpdater
	bus       eventbus.Bus
	logger    *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	gateway provider.Payment,
	transfers TransferUpdater,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:       uow,
		gateway:   gateway,
		transfers: transfers,
		bus:       bus,
		logger:    logger,
	}
}

// Verify asks the gateway for the state of the charge and settles the
// payment. Payments that already completed or failed are returned as is.
func (s *Service) Verify(ctx context.Context, reference string) (*payment.Transaction, error) {
	log := s.logger.With("context", "VerifyPayment", "reference", reference)
	repo, err := repository.Resolve[paymentrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	tx, err := repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx.IsTerminal() {
		log.Debug("payment already settled", "status", tx.Status)
		return tx, nil
	}

	resp, err := s.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		log.Error("gateway verification failed", "error", err)
		return nil, err
	}
	return s.settle(ctx, reference, outcome{
		status:   resp.Status,
		amount:   resp.Amount,
		channel:  resp.Channel,
		response: resp.GatewayResponse,
	})
}

// HandleWebhook verifies and applies a gateway notification. Transfer
// notifications are passed on to the withdrawal flow.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := s.logger.With("context", "PaymentWebhook")
	event, err := s.gateway.HandleWebhook(ctx, payload, signature)
	if err != nil {
		log.Warn("webhook rejected", "error", err)
		return err
	}
	if event == nil {
		return nil
	}
	log = log.With("type", event.Type, "reference", event.Reference)

	switch {
	case event.Type.IsTransfer():
		if s.transfers == nil {
			log.Warn("no transfer handler configured")
			return nil
		}
		return s.transfers.ApplyTransferEvent(ctx, event)
	case event.Type == provider.EventChargeSuccess:
		_, err = s.settle(ctx, event.Reference, outcome{
			status:   provider.PaymentCompleted,
			amount:   event.Amount,
			channel:  event.Channel,
			response: event.GatewayResponse,
		})
	case event.Type == provider.EventChargeFailed:
		_, err = s.settle(ctx, event.Reference, outcome{
			status:   provider.PaymentFailed,
			response: firstNonEmpty(event.Reason, event.GatewayResponse),
		})
	default:
		log.Debug("ignoring webhook event")
		return nil
	}
	if err != nil {
		log.Error("webhook processing failed", "error", err)
		return err
	}
	log.Info("webhook processed")
	return nil
}

// settle moves a pending payment and its donations to the state described
// by out and emits the resulting events once committed.
func (s *Service) settle(
	ctx context.Context,
	reference string,
	out outcome,
) (tx *payment.Transaction, err error) {
	log := s.logger.With("context", "SettlePayment", "reference", reference)
	var emitted []events.Event
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		emitted = nil
		payments, err := repository.Resolve[paymentrepo.Repository](uow)
		if err != nil {
			return err
		}
		donations, err := repository.Resolve[donationrepo.Repository](uow)
		if err != nil {
			return err
		}
		// held until commit, so a concurrent verify or webhook waits here
		// and then finds the payment settled
		tx, err = payments.GetByReferenceForUpdate(ctx, reference)
		if err != nil {
			return err
		}
		if tx.IsTerminal() {
			log.Debug("payment already settled", "status", tx.Status)
			return nil
		}

		status := out.status
		reason := out.response
		if status == provider.PaymentCompleted && out.amount != domain.ToMinorUnits(tx.Amount) {
			log.Warn("charged amount does not match payment",
				"expected", domain.ToMinorUnits(tx.Amount),
				"charged", out.amount,
			)
			status = provider.PaymentFailed
			reason = fmt.Sprintf("amount mismatch: expected %d, charged %d",
				domain.ToMinorUnits(tx.Amount), out.amount)
		}

		switch status {
		case provider.PaymentCompleted:
			if err := tx.Complete(out.channel, out.response); err != nil {
				return err
			}
		case provider.PaymentFailed:
			if err := tx.Fail(reason); err != nil {
				return err
			}
		default:
			return nil
		}
		if err := payments.Update(ctx, tx); err != nil {
			return err
		}

		linked, err := donations.ListByPayment(ctx, tx.ID)
		if err != nil {
			return err
		}
		correlation := uuid.New()
		for _, d := range linked {
			if d.Status != donation.StatusPending {
				continue
			}
			if tx.Status == payment.StatusCompleted {
				err = d.Complete()
			} else {
				err = d.Fail()
			}
			if err != nil {
				return err
			}
			if err := donations.Update(ctx, d); err != nil {
				return err
			}
			emitted = append(emitted, donationEvent(d, correlation, reason))
		}
		if tx.Status == payment.StatusCompleted {
			emitted = append([]events.Event{&events.PaymentCompleted{
				FlowEvent: events.NewFlowEvent(correlation),
				PaymentID: tx.ID,
				Reference: tx.Reference,
				Amount:    tx.Amount,
				Currency:  tx.Currency,
			}}, emitted...)
		} else {
			emitted = append([]events.Event{&events.PaymentFailed{
				FlowEvent: events.NewFlowEvent(correlation),
				PaymentID: tx.ID,
				Reference: tx.Reference,
				Reason:    reason,
			}}, emitted...)
		}
		return nil
	})
	if err != nil {
		log.Error("settle failed", "error", err)
		return nil, err
	}

	for _, e := range emitted {
		if err := s.bus.Emit(ctx, e); err != nil {
			log.Error("failed to emit event", "type", e.Type(), "error", err)
		}
	}
	if len(emitted) > 0 {
		log.Info("Payment settled", "status", tx.Status, "events", len(emitted))
	}
	return tx, nil
}

func donationEvent(d *donation.Donation, correlation uuid.UUID, reason string) events.Event {
	payload := events.DonationEvent{
		FlowEvent:   events.NewFlowEvent(correlation),
		DonationID:  d.ID,
		CauseID:     d.CauseID,
		RecipientID: d.RecipientID,
		DonorEmail:  d.Email,
		Amount:      d.Amount,
		Currency:    d.Currency,
	}
	if d.PaymentID != nil {
		payload.PaymentID = *d.PaymentID
	}
	if d.Status == donation.StatusCompleted {
		return &events.DonationCompleted{DonationEvent: payload}
	}
	return &events.DonationFailed{DonationEvent: payload, Reason: reason}
}

// Get returns a payment visible to actor.
func (s *Service) Get(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*payment.Transaction, error) {
	repo, err := repository.Resolve[paymentrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	tx, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || (!actor.IsStaff && (tx.UserID == nil || *tx.UserID != actor.UserID)) {
		return nil, payment.ErrPaymentNotFound
	}
	return tx, nil
}

// AdminList returns payments matching filter.
func (s *Service) AdminList(
	ctx context.Context,
	filter paymentrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*payment.Transaction], error) {
	repo, err := repository.Resolve[paymentrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	items, count, err := repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
