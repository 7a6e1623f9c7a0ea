// Package withdrawal pays out funds raised by a cause to its organizer.
//
// A request reserves funds as soon as it is accepted. The transfer itself
// is started by the Withdrawal.Requested handler and settled either by a
// gateway webhook or by the periodic VerifyPending sweep.
package withdrawal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/eventbus"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	withdrawalrepo "github.com/amirasaad/causehive/pkg/repository/withdrawal"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transferReason = "CauseHive withdrawal"

// Summary reports the result of a VerifyPending sweep.
type Summary struct {
	Checked         int `json:"checked"`
	Completed       int `json:"completed"`
	Failed          int `json:"failed"`
	StillProcessing int `json:"still_processing"`
	Errors          int `json:"errors"`
}

type Service struct {
	uow      repository.UnitOfWork
	gateway  provider.Payout
	bus      eventbus.Bus
	feeRate  float64
	currency string
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	gateway provider.Payout,
	bus eventbus.Bus,
	feeRate float64,
	currency string,
	logger *slog.Logger,
) *Service {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Service{
		uow:      uow,
		gateway:  gateway,
		bus:      bus,
		feeRate:  feeRate,
		currency: currency,
		logger:   logger,
	}
}

// Request reserves amount from the cause balance for a payout to its
// organizer. method overrides the profile's payout method when set.
func (s *Service) Request(
	ctx context.Context,
	userID, causeID uuid.UUID,
	amount decimal.Decimal,
	method *user.WithdrawalMethod,
) (w *withdrawal.Request, err error) {
	log := s.logger.With("context", "RequestWithdrawal", "userID", userID, "causeID", causeID)
	if !amount.IsPositive() {
		return nil, domain.ErrAmountMustBePositive
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		causes, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		withdrawals, err := repository.Resolve[withdrawalrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Resolve[userrepo.Repository](uow)
		if err != nil {
			return err
		}

		// the row lock serialises concurrent requests against one cause
		c, err := causes.GetForUpdate(ctx, causeID)
		if err != nil {
			return err
		}
		if c.OrganizerID != userID {
			return cause.ErrNotOrganizer
		}
		reserved, err := withdrawals.ReservedAmount(ctx, causeID)
		if err != nil {
			return err
		}
		available := c.CurrentAmount.Sub(reserved)
		if domain.Amount(amount).GreaterThan(available) {
			log.Warn("insufficient funds", "requested", amount, "available", available)
			return withdrawal.ErrInsufficientFunds
		}

		profile, err := users.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		if method != nil {
			if !method.Valid() {
				return user.ErrInvalidWithdrawalMethod
			}
			profile.WithdrawalMethod = *method
		}
		if !profile.HasCompleteWithdrawalInfo() {
			return user.ErrIncompleteWithdrawalInfo
		}

		w, err = withdrawal.New(userID, causeID, amount, s.feeRate, s.currency,
			profile.WithdrawalMethod, profile.PayoutDetails())
		if err != nil {
			return err
		}
		return withdrawals.Create(ctx, w)
	})
	if err != nil {
		log.Warn("RequestWithdrawal failed", "error", err)
		return nil, err
	}
	log.Info("Withdrawal requested", "withdrawalID", w.ID, "amount", w.Amount, "fee", w.Fee)
	s.emit(ctx, &events.WithdrawalRequested{WithdrawalEvent: withdrawalEvent(w)})
	return w, nil
}

// Process starts the gateway transfer for a processing request. Requests
// that already have a transfer are left alone. Gateway errors mark the
// request failed rather than being returned.
func (s *Service) Process(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error) {
	log := s.logger.With("context", "ProcessWithdrawal", "withdrawalID", id)
	var (
		w           *withdrawal.Request
		started     provider.PayoutStatus
		transferErr error
		step        string
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		started, transferErr, step = "", nil, ""
		withdrawals, err := repository.Resolve[withdrawalrepo.Repository](uow)
		if err != nil {
			return err
		}
		// held until the transfer reference is stored, so a second delivery
		// waits here and then finds the transfer already started
		w, err = withdrawals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if w.Status != withdrawal.StatusProcessing || w.TransactionID != "" {
			log.Debug("nothing to process", "status", w.Status, "transactionID", w.TransactionID)
			return nil
		}

		recipient, err := s.recipientCode(ctx, uow, w)
		if err != nil {
			transferErr, step = err, "create recipient"
			return nil
		}
		reference := utils.NewReference("WD")
		resp, err := s.gateway.InitiatePayout(ctx, &provider.InitiatePayoutParams{
			Reference:     reference,
			RecipientCode: recipient,
			Amount:        domain.ToMinorUnits(w.NetAmount),
			Currency:      w.Currency,
			Reason:        transferReason,
		})
		if err != nil {
			transferErr, step = err, "initiate transfer"
			return nil
		}
		if resp.Reference != "" {
			reference = resp.Reference
		}
		w.MarkTransferInitiated(recipient, reference)
		started = resp.Status
		return withdrawals.Update(ctx, w)
	})
	if err != nil {
		log.Error("ProcessWithdrawal failed", "error", err)
		return nil, err
	}
	if transferErr != nil {
		log.Error("transfer not started", "step", step, "error", transferErr)
		return s.apply(ctx, id, provider.PayoutFailed, transferErr.Error())
	}
	if started == "" {
		return w, nil
	}
	log.Info("Transfer initiated", "reference", w.TransactionID, "status", started)
	if started.IsFinal() {
		return s.apply(ctx, w.ID, started, "")
	}
	return w, nil
}

// recipientCode returns the gateway recipient for the request's payout
// details, creating and caching it on the profile when needed.
func (s *Service) recipientCode(
	ctx context.Context,
	uow repository.UnitOfWork,
	w *withdrawal.Request,
) (string, error) {
	users, err := repository.Resolve[userrepo.Repository](uow)
	if err != nil {
		return "", err
	}
	profile, err := users.GetProfile(ctx, w.UserID)
	if err != nil {
		return "", err
	}
	if profile.RecipientCode != "" && profile.WithdrawalMethod == w.PaymentMethod {
		return profile.RecipientCode, nil
	}

	params := &provider.CreateRecipientParams{
		Type:          provider.BankTypeBank,
		Name:          w.PaymentDetails["account_name"],
		AccountNumber: w.PaymentDetails["account_number"],
		BankCode:      w.PaymentDetails["bank_code"],
		Currency:      w.Currency,
	}
	if w.PaymentMethod == user.WithdrawalMethodMobileMoney {
		params.Type = provider.BankTypeMobileMoney
		params.AccountNumber = w.PaymentDetails["phone_number"]
		params.BankCode = w.PaymentDetails["provider"]
	}
	code, err := s.gateway.CreateRecipient(ctx, params)
	if err != nil {
		return "", err
	}
	if profile.WithdrawalMethod == w.PaymentMethod {
		profile.RecipientCode = code
		if err := users.SaveProfile(ctx, profile); err != nil {
			s.logger.Warn("failed to cache recipient code", "userID", w.UserID, "error", err)
		}
	}
	return code, nil
}

// Verify asks the gateway for the state of the request's transfer.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error) {
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	w, err := withdrawals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.verify(ctx, w)
}

// VerifyByReference is Verify keyed by the transfer reference.
func (s *Service) VerifyByReference(ctx context.Context, reference string) (*withdrawal.Request, error) {
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	w, err := withdrawals.GetByTransactionID(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.verify(ctx, w)
}

func (s *Service) verify(ctx context.Context, w *withdrawal.Request) (*withdrawal.Request, error) {
	if w.Status != withdrawal.StatusProcessing || w.TransactionID == "" {
		return w, nil
	}
	resp, err := s.gateway.VerifyPayout(ctx, w.TransactionID)
	if err != nil {
		s.logger.Error("transfer verification failed", "withdrawalID", w.ID, "error", err)
		return nil, err
	}
	return s.apply(ctx, w.ID, resp.Status, resp.Reason)
}

// ApplyTransferEvent settles a request from a transfer webhook.
func (s *Service) ApplyTransferEvent(ctx context.Context, event *provider.PaymentEvent) error {
	log := s.logger.With("context", "ApplyTransferEvent", "reference", event.Reference, "type", event.Type)
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return err
	}
	w, err := withdrawals.GetByTransactionID(ctx, event.Reference)
	if errors.Is(err, withdrawal.ErrWithdrawalNotFound) {
		log.Warn("transfer does not match any withdrawal")
		return nil
	}
	if err != nil {
		return err
	}

	status := provider.PayoutPending
	switch event.Type {
	case provider.EventTransferSuccess:
		status = provider.PayoutSuccess
	case provider.EventTransferFailed:
		status = provider.PayoutFailed
	case provider.EventTransferReversed:
		status = provider.PayoutReversed
	}
	_, err = s.apply(ctx, w.ID, status, event.Reason)
	return err
}

// apply moves a processing request according to a gateway payout status.
// otp, pending and processing leave it untouched.
func (s *Service) apply(
	ctx context.Context,
	id uuid.UUID,
	status provider.PayoutStatus,
	reason string,
) (w *withdrawal.Request, err error) {
	log := s.logger.With("context", "ApplyPayoutStatus", "withdrawalID", id, "status", status)
	var emitted events.Event
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		emitted = nil
		withdrawals, err := repository.Resolve[withdrawalrepo.Repository](uow)
		if err != nil {
			return err
		}
		w, err = withdrawals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if w.Status != withdrawal.StatusProcessing && w.Status != withdrawal.StatusPending {
			return nil
		}
		switch status {
		case provider.PayoutSuccess:
			if err := w.Complete(); err != nil {
				return err
			}
			emitted = &events.WithdrawalCompleted{
				WithdrawalEvent: withdrawalEvent(w),
				Reference:       w.TransactionID,
			}
		case provider.PayoutFailed, provider.PayoutReversed:
			if reason == "" && status == provider.PayoutReversed {
				reason = "transfer reversed"
			}
			if err := w.Fail(reason); err != nil {
				return err
			}
			emitted = &events.WithdrawalFailed{
				WithdrawalEvent: withdrawalEvent(w),
				Reason:          w.FailureReason,
			}
		default:
			return nil
		}
		return withdrawals.Update(ctx, w)
	})
	if err != nil {
		log.Error("failed to apply payout status", "error", err)
		return nil, err
	}
	if emitted != nil {
		log.Info("Withdrawal settled", "result", w.Status)
		s.emit(ctx, emitted)
	}
	return w, nil
}

// VerifyPending checks up to limit in-flight transfers.
func (s *Service) VerifyPending(ctx context.Context, limit int) (*Summary, error) {
	log := s.logger.With("context", "VerifyPendingWithdrawals")
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	pending, err := withdrawals.ListInFlight(ctx, limit)
	if err != nil {
		return nil, err
	}
	summary := &Summary{}
	for _, w := range pending {
		if ctx.Err() != nil {
			break
		}
		summary.Checked++
		got, err := s.verify(ctx, w)
		if err != nil {
			summary.Errors++
			continue
		}
		switch got.Status {
		case withdrawal.StatusCompleted:
			summary.Completed++
		case withdrawal.StatusFailed:
			summary.Failed++
		default:
			summary.StillProcessing++
		}
	}
	if summary.Checked > 0 {
		log.Info("Pending withdrawals verified",
			"checked", summary.Checked,
			"completed", summary.Completed,
			"failed", summary.Failed,
			"errors", summary.Errors,
		)
	}
	return summary, nil
}

// ListMine returns the caller's withdrawal requests.
func (s *Service) ListMine(
	ctx context.Context,
	userID uuid.UUID,
	filter withdrawalrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*withdrawal.Request], error) {
	filter.UserID = &userID
	return s.AdminList(ctx, filter, page)
}

// Get returns a request visible to its owner or staff.
func (s *Service) Get(ctx context.Context, id uuid.UUID, actor *dto.Actor) (*withdrawal.Request, error) {
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	w, err := withdrawals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(w.UserID) {
		return nil, withdrawal.ErrWithdrawalNotFound
	}
	return w, nil
}

// Cancel withdraws the owner's pending or failed request.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, userID uuid.UUID) (w *withdrawal.Request, err error) {
	log := s.logger.With("context", "CancelWithdrawal", "withdrawalID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		withdrawals, err := repository.Resolve[withdrawalrepo.Repository](uow)
		if err != nil {
			return err
		}
		w, err = withdrawals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if w.UserID != userID {
			return withdrawal.ErrWithdrawalNotFound
		}
		if err := w.Cancel(); err != nil {
			return err
		}
		return withdrawals.Update(ctx, w)
	})
	if err != nil {
		log.Warn("CancelWithdrawal failed", "error", err)
		return nil, err
	}
	log.Info("Withdrawal cancelled")
	return w, nil
}

func (s *Service) AdminList(
	ctx context.Context,
	filter withdrawalrepo.Filter,
	page dto.PageRequest,
) (*dto.Page[*withdrawal.Request], error) {
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	items, count, err := withdrawals.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(items, count, page), nil
}

func (s *Service) AdminStatistics(ctx context.Context) (*dto.WithdrawalStats, error) {
	withdrawals, err := repository.Resolve[withdrawalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return withdrawals.Stats(ctx)
}

// Retry puts a failed request back into processing and starts a new
// transfer. The request reserves its amount again, so the cause must still
// have that much available.
func (s *Service) Retry(ctx context.Context, id uuid.UUID) (w *withdrawal.Request, err error) {
	log := s.logger.With("context", "RetryWithdrawal", "withdrawalID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		withdrawals, err := repository.Resolve[withdrawalrepo.Repository](uow)
		if err != nil {
			return err
		}
		causes, err := repository.Resolve[causerepo.Repository](uow)
		if err != nil {
			return err
		}
		w, err = withdrawals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := w.Retry(); err != nil {
			return err
		}

		c, err := causes.GetForUpdate(ctx, w.CauseID)
		if err != nil {
			return err
		}
		// w is still failed in the database, so it is not part of reserved
		reserved, err := withdrawals.ReservedAmount(ctx, w.CauseID)
		if err != nil {
			return err
		}
		available := c.CurrentAmount.Sub(reserved)
		if w.Amount.GreaterThan(available) {
			log.Warn("insufficient funds", "requested", w.Amount, "available", available)
			return withdrawal.ErrInsufficientFunds
		}
		return withdrawals.Update(ctx, w)
	})
	if err != nil {
		log.Warn("RetryWithdrawal failed", "error", err)
		return nil, err
	}
	log.Info("Withdrawal queued for retry")
	s.emit(ctx, &events.WithdrawalRequested{WithdrawalEvent: withdrawalEvent(w)})
	return w, nil
}

func (s *Service) emit(ctx context.Context, e events.Event) {
	if err := s.bus.Emit(ctx, e); err != nil {
		s.logger.Error("failed to emit event", "type", e.Type(), "error", err)
	}
}

func withdrawalEvent(w *withdrawal.Request) events.WithdrawalEvent {
	return events.WithdrawalEvent{
		FlowEvent:    events.NewFlowEvent(uuid.Nil),
		WithdrawalID: w.ID,
		UserID:       w.UserID,
		CauseID:      w.CauseID,
		Amount:       w.Amount,
		NetAmount:    w.NetAmount,
		Currency:     w.Currency,
	}
}
