package payments

import (
	"context"
	"errors"
	"testing"
)

func enableGatewayMock(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	t.Setenv("MERCADOPAGO_MOCK", "")
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockCreateDeposit(t *testing.T) {
	enableGatewayMock(t)

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gp, err := g.CreateDeposit(context.Background(), "bk-1", "ana@example.com", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gp.Status != "approved" {
		t.Fatalf("expected approved, got %q", gp.Status)
	}
	if gp.ExternalReference != "bk-1" {
		t.Fatalf("expected external reference bk-1, got %q", gp.ExternalReference)
	}
	if gp.Amount != 50 {
		t.Fatalf("expected amount 50, got %v", gp.Amount)
	}
	if gp.ID == "" || len(gp.Raw) == 0 {
		t.Fatalf("expected a populated mock payment, got %+v", gp)
	}
}

func TestMercadoPagoGateway_MockGetPaymentNotConfigured(t *testing.T) {
	enableGatewayMock(t)

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.GetPayment(context.Background(), "12345"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
