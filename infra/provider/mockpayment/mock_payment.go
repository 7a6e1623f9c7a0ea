package mockpayment

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/amirasaad/causehive/pkg/provider/payment"
)

// WebhookSignature is the only signature the mock accepts.
const WebhookSignature = "mock-signature"

// MockPaymentProvider simulates a gateway for tests and local development.
// Charges and transfers succeed on first verification unless a different
// outcome was set with SetPaymentStatus or SetPayoutStatus.
type MockPaymentProvider struct {
	mu       sync.Mutex
	payments map[string]payment.PaymentStatus
	payouts  map[string]payment.PayoutStatus
	seq      int
}

// NewMockPaymentProvider creates a new instance of MockPaymentProvider.
func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{
		payments: make(map[string]payment.PaymentStatus),
		payouts:  make(map[string]payment.PayoutStatus),
	}
}

func (m *MockPaymentProvider) Name() string { return "mock" }

// SetPaymentStatus forces the outcome reported for reference.
func (m *MockPaymentProvider) SetPaymentStatus(reference string, status payment.PaymentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[reference] = status
}

// SetPayoutStatus forces the outcome reported for reference.
func (m *MockPaymentProvider) SetPayoutStatus(reference string, status payment.PayoutStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payouts[reference] = status
}

func (m *MockPaymentProvider) InitiatePayment(
	_ context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[params.Reference]; !ok {
		m.payments[params.Reference] = payment.PaymentCompleted
	}
	return &payment.InitiatePaymentResponse{
		AuthorizationURL: "https://mock.gateway.local/pay/" + params.Reference,
		AccessCode:       "mock_" + params.Reference,
		Reference:        params.Reference,
	}, nil
}

func (m *MockPaymentProvider) VerifyPayment(_ context.Context, reference string) (*payment.VerifyPaymentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.payments[reference]
	if !ok {
		return nil, fmt.Errorf("%w: unknown reference %s", payment.ErrGateway, reference)
	}
	return &payment.VerifyPaymentResponse{
		Reference:       reference,
		Status:          status,
		Channel:         "mock",
		GatewayResponse: string(status),
	}, nil
}

type webhookPayload struct {
	Event     string `json:"event"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
}

// HandleWebhook accepts {"event","reference","amount","reason"} signed with
// WebhookSignature.
func (m *MockPaymentProvider) HandleWebhook(
	_ context.Context,
	payload []byte,
	signature string,
) (*payment.PaymentEvent, error) {
	if signature != WebhookSignature {
		return nil, payment.ErrInvalidSignature
	}
	var p webhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("error parsing webhook event: %w", err)
	}
	return &payment.PaymentEvent{
		Type:      payment.EventType(p.Event),
		Reference: p.Reference,
		Amount:    p.Amount,
		Reason:    p.Reason,
	}, nil
}

func (m *MockPaymentProvider) CreateRecipient(_ context.Context, params *payment.CreateRecipientParams) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("RCP_mock_%d", m.seq), nil
}

func (m *MockPaymentProvider) InitiatePayout(
	_ context.Context,
	params *payment.InitiatePayoutParams,
) (*payment.InitiatePayoutResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payouts[params.Reference]; !ok {
		m.payouts[params.Reference] = payment.PayoutSuccess
	}
	return &payment.InitiatePayoutResponse{
		Reference:    params.Reference,
		TransferCode: "TRF_" + params.Reference,
		Status:       payment.PayoutPending,
	}, nil
}

func (m *MockPaymentProvider) VerifyPayout(_ context.Context, reference string) (*payment.VerifyPayoutResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.payouts[reference]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transfer %s", payment.ErrGateway, reference)
	}
	resp := &payment.VerifyPayoutResponse{Reference: reference, Status: status}
	if status == payment.PayoutFailed || status == payment.PayoutReversed {
		resp.Reason = "mock transfer " + string(status)
	}
	return resp, nil
}

func (m *MockPaymentProvider) ListBanks(_ context.Context, currency string, kind payment.BankType) ([]payment.Bank, error) {
	if kind == payment.BankTypeMobileMoney {
		return []payment.Bank{
			{Name: "MTN Mobile Money", Code: "MTN", Type: string(kind), Currency: currency},
			{Name: "Vodafone Cash", Code: "VOD", Type: string(kind), Currency: currency},
			{Name: "AirtelTigo Money", Code: "ATL", Type: string(kind), Currency: currency},
		}, nil
	}
	return []payment.Bank{
		{Name: "GCB Bank", Code: "040100", Type: string(kind), Currency: currency},
		{Name: "Ecobank Ghana", Code: "130100", Type: string(kind), Currency: currency},
	}, nil
}

func (m *MockPaymentProvider) ResolveAccount(_ context.Context, accountNumber, bankCode string) (*payment.ResolvedAccount, error) {
	return &payment.ResolvedAccount{
		AccountNumber: accountNumber,
		AccountName:   "MOCK ACCOUNT HOLDER",
		BankCode:      bankCode,
	}, nil
}

var _ payment.Gateway = (*MockPaymentProvider)(nil)
