package stripepayment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripePaymentProvider implements payment.Gateway using Stripe Checkout for
// charges and Connect transfers for payouts. Stripe has no bank directory
// for Ghana, so those operations return payment.ErrUnsupported.
type StripePaymentProvider struct {
	client          *stripe.Client
	cfg             *config.Stripe
	logger          *slog.Logger
	webhookHandlers map[stripe.EventType]webhookHandler
}

type webhookHandler func(stripe.Event, *slog.Logger) (*payment.PaymentEvent, error)

// New creates a StripePaymentProvider.
func New(cfg *config.Stripe, logger *slog.Logger) *StripePaymentProvider {
	s := &StripePaymentProvider{
		client: stripe.NewClient(cfg.ApiKey),
		cfg:    cfg,
		logger: logger.With("provider", "stripe"),
	}
	s.webhookHandlers = map[stripe.EventType]webhookHandler{
		"checkout.session.completed": s.handleCheckoutSessionCompleted,
		"checkout.session.expired":   s.handleCheckoutSessionExpired,
		"transfer.created":           s.handleTransfer(payment.EventTransferSuccess),
		"transfer.reversed":          s.handleTransfer(payment.EventTransferReversed),
	}
	return s
}

func (s *StripePaymentProvider) Name() string { return "stripe" }

// InitiatePayment creates a Checkout Session. The session ID becomes the
// payment reference.
func (s *StripePaymentProvider) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	log := s.logger.With(
		"handler", "stripe.InitiatePayment",
		"reference", params.Reference,
		"amount", params.Amount,
		"currency", params.Currency,
	)
	log.Info("🛒 [START] InitiatePayment")

	metadata := map[string]string{
		"reference":  params.Reference,
		"payment_id": params.PaymentID.String(),
	}
	for k, v := range params.Metadata {
		metadata[k] = v
	}

	sp := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.cfg.SuccessPath),
		CancelURL:          stripe.String(s.cfg.CancelPath),
		ClientReferenceID:  stripe.String(params.Reference),
		Metadata:           metadata,
		PaymentIntentData: &stripe.CheckoutSessionCreatePaymentIntentDataParams{
			Metadata: metadata,
		},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(params.Currency)),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String("CauseHive donation")},
				UnitAmount: stripe.Int64(params.Amount),
			},
			Quantity: stripe.Int64(1),
		}},
	}
	if params.Email != "" {
		sp.CustomerEmail = stripe.String(params.Email)
	}

	session, err := s.client.V1CheckoutSessions.Create(ctx, sp)
	if err != nil {
		log.Error("failed to create checkout session", "error", err)
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	log.Info("✅ Created checkout session", "session_id", session.ID)
	return &payment.InitiatePaymentResponse{
		AuthorizationURL: session.URL,
		AccessCode:       session.ID,
		Reference:        session.ID,
	}, nil
}

// VerifyPayment retrieves the Checkout Session named by reference.
func (s *StripePaymentProvider) VerifyPayment(
	ctx context.Context,
	reference string,
) (*payment.VerifyPaymentResponse, error) {
	session, err := s.client.V1CheckoutSessions.Retrieve(ctx, reference, nil)
	if err != nil {
		s.logger.Error("failed to retrieve checkout session", "reference", reference, "error", err)
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	return &payment.VerifyPaymentResponse{
		Reference:       reference,
		Status:          sessionStatus(session),
		Amount:          session.AmountTotal,
		Currency:        strings.ToUpper(string(session.Currency)),
		Channel:         "card",
		GatewayResponse: string(session.PaymentStatus),
	}, nil
}

func sessionStatus(session *stripe.CheckoutSession) payment.PaymentStatus {
	switch {
	case session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return payment.PaymentCompleted
	case session.Status == stripe.CheckoutSessionStatusExpired:
		return payment.PaymentFailed
	default:
		return payment.PaymentPending
	}
}

// HandleWebhook verifies the Stripe-Signature header and normalises the event.
// Unhandled event types yield a nil event.
func (s *StripePaymentProvider) HandleWebhook(
	_ context.Context,
	payload []byte,
	signature string,
) (*payment.PaymentEvent, error) {
	log := s.logger.With("method", "HandleWebhook")
	if s.cfg.SigningSecret == "" {
		return nil, fmt.Errorf("webhook signing secret not configured")
	}
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		s.cfg.SigningSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Error("Failed to verify webhook signature", "error", err)
		return nil, fmt.Errorf("%w: %v", payment.ErrInvalidSignature, err)
	}
	log.Info("Received webhook event", "type", event.Type, "id", event.ID)

	handler, ok := s.webhookHandlers[event.Type]
	if !ok {
		log.Debug("No handler found for event type", "type", event.Type)
		return nil, nil
	}
	return handler(event, log)
}

func (s *StripePaymentProvider) handleCheckoutSessionCompleted(
	event stripe.Event,
	log *slog.Logger,
) (*payment.PaymentEvent, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("error parsing checkout.session.completed: %w", err)
	}
	t := payment.EventChargeSuccess
	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		t = payment.EventChargeFailed
	}
	log.Info("✅ Checkout session completed", "session_id", session.ID, "payment_status", session.PaymentStatus)
	return &payment.PaymentEvent{
		Type:            t,
		Reference:       session.ID,
		Amount:          session.AmountTotal,
		Currency:        strings.ToUpper(string(session.Currency)),
		Channel:         "card",
		GatewayResponse: string(session.PaymentStatus),
		Metadata:        session.Metadata,
	}, nil
}

func (s *StripePaymentProvider) handleCheckoutSessionExpired(
	event stripe.Event,
	log *slog.Logger,
) (*payment.PaymentEvent, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("error parsing checkout.session.expired: %w", err)
	}
	log.Info("⏰ Checkout session expired", "session_id", session.ID)
	return &payment.PaymentEvent{
		Type:            payment.EventChargeFailed,
		Reference:       session.ID,
		Amount:          session.AmountTotal,
		Currency:        strings.ToUpper(string(session.Currency)),
		GatewayResponse: "expired",
		Reason:          "checkout session expired",
		Metadata:        session.Metadata,
	}, nil
}

func (s *StripePaymentProvider) handleTransfer(t payment.EventType) webhookHandler {
	return func(event stripe.Event, log *slog.Logger) (*payment.PaymentEvent, error) {
		var transfer stripe.Transfer
		if err := json.Unmarshal(event.Data.Raw, &transfer); err != nil {
			return nil, fmt.Errorf("error parsing transfer: %w", err)
		}
		log.Info("Transfer event", "transfer_id", transfer.ID, "type", t, "reversed", transfer.Reversed)
		pe := &payment.PaymentEvent{
			Type:      t,
			Reference: transfer.ID,
			Amount:    transfer.Amount,
			Currency:  strings.ToUpper(string(transfer.Currency)),
			Metadata:  transfer.Metadata,
		}
		if t == payment.EventTransferReversed {
			pe.Reason = "transfer reversed"
		}
		return pe, nil
	}
}

// CreateRecipient creates an Express connected account for the organizer.
// The organizer finishes onboarding through Stripe before payouts settle.
func (s *StripePaymentProvider) CreateRecipient(
	ctx context.Context,
	params *payment.CreateRecipientParams,
) (string, error) {
	ap := &stripe.AccountCreateParams{
		Type:         stripe.String("express"),
		BusinessType: stripe.String("individual"),
		Capabilities: &stripe.AccountCreateCapabilitiesParams{
			Transfers: &stripe.AccountCreateCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
		Params: stripe.Params{
			Metadata: map[string]string{
				"name":           params.Name,
				"account_number": params.AccountNumber,
				"bank_code":      params.BankCode,
			},
		},
	}
	account, err := s.client.V1Accounts.Create(ctx, ap)
	if err != nil {
		s.logger.Error("Failed to create Stripe Connect account", "error", err)
		return "", fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	s.logger.Info("Created Stripe Connect account", "account_id", account.ID)
	return account.ID, nil
}

// InitiatePayout transfers funds to the connected account. The transfer ID
// becomes the payout reference.
func (s *StripePaymentProvider) InitiatePayout(
	ctx context.Context,
	params *payment.InitiatePayoutParams,
) (*payment.InitiatePayoutResponse, error) {
	tp := &stripe.TransferCreateParams{
		Amount:        stripe.Int64(params.Amount),
		Currency:      stripe.String(strings.ToLower(params.Currency)),
		Destination:   stripe.String(params.RecipientCode),
		Description:   stripe.String(params.Reason),
		TransferGroup: stripe.String(params.Reference),
	}
	tp.AddMetadata("reference", params.Reference)

	transfer, err := s.client.V1Transfers.Create(ctx, tp)
	if err != nil {
		s.logger.Error("failed to create transfer", "reference", params.Reference, "error", err)
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	status := payment.PayoutSuccess
	if transfer.Reversed {
		status = payment.PayoutReversed
	}
	return &payment.InitiatePayoutResponse{
		Reference:    transfer.ID,
		TransferCode: transfer.ID,
		Status:       status,
	}, nil
}

// VerifyPayout retrieves the transfer named by reference.
func (s *StripePaymentProvider) VerifyPayout(
	ctx context.Context,
	reference string,
) (*payment.VerifyPayoutResponse, error) {
	transfer, err := s.client.V1Transfers.Retrieve(ctx, reference, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	if transfer.Reversed {
		return &payment.VerifyPayoutResponse{
			Reference: reference,
			Status:    payment.PayoutReversed,
			Reason:    "transfer reversed",
		}, nil
	}
	return &payment.VerifyPayoutResponse{Reference: reference, Status: payment.PayoutSuccess}, nil
}

func (s *StripePaymentProvider) ListBanks(
	context.Context,
	string,
	payment.BankType,
) ([]payment.Bank, error) {
	return nil, payment.ErrUnsupported
}

func (s *StripePaymentProvider) ResolveAccount(
	context.Context,
	string,
	string,
) (*payment.ResolvedAccount, error) {
	return nil, payment.ErrUnsupported
}

var _ payment.Gateway = (*StripePaymentProvider)(nil)
