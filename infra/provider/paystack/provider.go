package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/provider/payment"
)

// Provider implements payment.Gateway against the Paystack API.
type Provider struct {
	api         *client
	secretKey   string
	callbackURL string
	logger      *slog.Logger
}

// New creates a Paystack provider.
func New(cfg *config.Paystack, logger *slog.Logger) *Provider {
	logger = logger.With("provider", "paystack")
	return &Provider{
		api:         newClient(cfg, logger),
		secretKey:   cfg.SecretKey,
		callbackURL: cfg.CallbackURL,
		logger:      logger,
	}
}

func (p *Provider) Name() string { return "paystack" }

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	Currency    string            `json:"currency"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

func (p *Provider) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	log := p.logger.With("handler", "paystack.InitiatePayment", "reference", params.Reference, "amount", params.Amount)
	log.Info("🛒 [START] InitiatePayment")

	metadata := map[string]string{"payment_id": params.PaymentID.String()}
	for k, v := range params.Metadata {
		metadata[k] = v
	}
	var data initializeData
	if err := p.api.post(ctx, "/transaction/initialize", initializeRequest{
		Email:       params.Email,
		Amount:      params.Amount,
		Reference:   params.Reference,
		Currency:    params.Currency,
		CallbackURL: p.callbackURL,
		Metadata:    metadata,
	}, &data); err != nil {
		log.Error("failed to initialize transaction", "error", err)
		return nil, err
	}
	if data.Reference == "" {
		data.Reference = params.Reference
	}
	log.Info("✅ [SUCCESS] transaction initialized")
	return &payment.InitiatePaymentResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

type verifyData struct {
	Reference       string `json:"reference"`
	Status          string `json:"status"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Channel         string `json:"channel"`
	GatewayResponse string `json:"gateway_response"`
}

func chargeStatus(s string) payment.PaymentStatus {
	switch s {
	case "success":
		return payment.PaymentCompleted
	case "failed", "abandoned", "reversed":
		return payment.PaymentFailed
	default:
		return payment.PaymentPending
	}
}

func (p *Provider) VerifyPayment(ctx context.Context, reference string) (*payment.VerifyPaymentResponse, error) {
	var data verifyData
	if err := p.api.get(ctx, "/transaction/verify/"+url.PathEscape(reference), nil, &data); err != nil {
		return nil, err
	}
	return &payment.VerifyPaymentResponse{
		Reference:       reference,
		Status:          chargeStatus(data.Status),
		Amount:          data.Amount,
		Currency:        data.Currency,
		Channel:         data.Channel,
		GatewayResponse: data.GatewayResponse,
	}, nil
}

type recipientRequest struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	Currency      string `json:"currency"`
}

func (p *Provider) CreateRecipient(ctx context.Context, params *payment.CreateRecipientParams) (string, error) {
	var data struct {
		RecipientCode string `json:"recipient_code"`
	}
	if err := p.api.post(ctx, "/transferrecipient", recipientRequest{
		Type:          string(params.Type),
		Name:          params.Name,
		AccountNumber: params.AccountNumber,
		BankCode:      params.BankCode,
		Currency:      params.Currency,
	}, &data); err != nil {
		return "", err
	}
	if data.RecipientCode == "" {
		return "", fmt.Errorf("%w: empty recipient code", payment.ErrGateway)
	}
	return data.RecipientCode, nil
}

type transferRequest struct {
	Source    string `json:"source"`
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
	Reason    string `json:"reason,omitempty"`
	Reference string `json:"reference"`
	Currency  string `json:"currency,omitempty"`
}

type transferData struct {
	Reference    string `json:"reference"`
	TransferCode string `json:"transfer_code"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
}

func (p *Provider) InitiatePayout(
	ctx context.Context,
	params *payment.InitiatePayoutParams,
) (*payment.InitiatePayoutResponse, error) {
	var data transferData
	if err := p.api.post(ctx, "/transfer", transferRequest{
		Source:    "balance",
		Amount:    params.Amount,
		Recipient: params.RecipientCode,
		Reason:    params.Reason,
		Reference: params.Reference,
		Currency:  params.Currency,
	}, &data); err != nil {
		p.logger.Error("failed to initiate transfer", "reference", params.Reference, "error", err)
		return nil, err
	}
	if data.Reference == "" {
		data.Reference = params.Reference
	}
	return &payment.InitiatePayoutResponse{
		Reference:    data.Reference,
		TransferCode: data.TransferCode,
		Status:       payment.PayoutStatus(data.Status),
	}, nil
}

func (p *Provider) VerifyPayout(ctx context.Context, reference string) (*payment.VerifyPayoutResponse, error) {
	var data transferData
	if err := p.api.get(ctx, "/transfer/verify/"+url.PathEscape(reference), nil, &data); err != nil {
		return nil, err
	}
	return &payment.VerifyPayoutResponse{
		Reference: reference,
		Status:    payment.PayoutStatus(data.Status),
		Reason:    data.Reason,
	}, nil
}

func (p *Provider) ListBanks(ctx context.Context, currency string, kind payment.BankType) ([]payment.Bank, error) {
	q := url.Values{}
	q.Set("currency", currency)
	q.Set("type", string(kind))
	var banks []payment.Bank
	if err := p.api.get(ctx, "/bank", q, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

func (p *Provider) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*payment.ResolvedAccount, error) {
	q := url.Values{}
	q.Set("account_number", accountNumber)
	q.Set("bank_code", bankCode)
	var data struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
	}
	if err := p.api.get(ctx, "/bank/resolve", q, &data); err != nil {
		return nil, err
	}
	return &payment.ResolvedAccount{
		AccountNumber: data.AccountNumber,
		AccountName:   data.AccountName,
		BankCode:      bankCode,
	}, nil
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference       string `json:"reference"`
		Status          string `json:"status"`
		Amount          int64  `json:"amount"`
		Currency        string `json:"currency"`
		Channel         string `json:"channel"`
		GatewayResponse string `json:"gateway_response"`
		Reason          string `json:"reason"`
	} `json:"data"`
}

// Sign returns the x-paystack-signature for payload.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// HandleWebhook verifies x-paystack-signature and normalises the event.
// Events other than charges and transfers yield a nil event.
func (p *Provider) HandleWebhook(_ context.Context, payload []byte, signature string) (*payment.PaymentEvent, error) {
	expected := Sign(p.secretKey, payload)
	if signature == "" || !hmac.Equal([]byte(expected), []byte(signature)) {
		p.logger.Warn("Webhook signature mismatch")
		return nil, payment.ErrInvalidSignature
	}
	var ev webhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("error parsing webhook event: %w", err)
	}
	p.logger.Info("Received webhook event", "event", ev.Event, "reference", ev.Data.Reference)

	t := payment.EventType(ev.Event)
	switch t {
	case payment.EventChargeSuccess, payment.EventChargeFailed,
		payment.EventTransferSuccess, payment.EventTransferFailed, payment.EventTransferReversed:
	default:
		return nil, nil
	}
	return &payment.PaymentEvent{
		Type:            t,
		Reference:       ev.Data.Reference,
		Amount:          ev.Data.Amount,
		Currency:        ev.Data.Currency,
		Channel:         ev.Data.Channel,
		GatewayResponse: ev.Data.GatewayResponse,
		Reason:          ev.Data.Reason,
	}, nil
}

var _ payment.Gateway = (*Provider)(nil)
