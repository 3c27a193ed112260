package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brightwash/booking-service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges booking deposits through Mercado Pago. The
// booking id travels as external_reference so confirmation can prove which
// booking a provider payment belongs to.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateDeposit(ctx context.Context, bookingID, payerEmail string, amount float64) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock create-deposit booking_id=%s amount=%.2f", bookingID, amount)
		return mockPayment(bookingID, amount), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-deposit start booking_id=%s amount=%.2f", bookingID, amount)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("Booking deposit %s", bookingID),
		ExternalReference: bookingID,
		PaymentMethodID:   getenvDefault("MERCADOPAGO_PAYMENT_METHOD_ID", "pix"),
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed booking_id=%s err=%v", bookingID, err)
		return interfaces.GatewayPayment{}, err
	}

	gp, err := fromProviderResponse(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] create-deposit success booking_id=%s provider_payment_id=%s provider_status=%s", bookingID, gp.ID, gp.Status)
	return gp, nil
}

// GetPayment re-reads a payment from the provider. Mock mode never fabricates
// one here: the gateway does not know which booking or amount the caller is
// confirming, so confirmation mocking lives with the caller.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.GatewayPayment, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		log.Printf("[payment][gateway] invalid provider payment id %q", providerPaymentID)
		return interfaces.GatewayPayment{}, fmt.Errorf("invalid provider payment id %q", providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return interfaces.GatewayPayment{}, err
	}

	gp, err := fromProviderResponse(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%s provider_status=%s", gp.ID, gp.Status)
	return gp, nil
}

func fromProviderResponse(resp *payment.Response) (interfaces.GatewayPayment, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.GatewayPayment{}, err
	}
	return interfaces.GatewayPayment{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		Amount:            resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
		Raw:               b,
	}, nil
}

func mockPayment(bookingID string, amount float64) interfaces.GatewayPayment {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	raw, _ := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": amount,
		"external_reference": bookingID,
		"date_created":       now,
		"date_approved":      now,
	})
	return interfaces.GatewayPayment{
		ID:                id,
		Status:            "approved",
		Amount:            amount,
		ExternalReference: bookingID,
		Raw:               raw,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
