package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayPayment is the provider-side view of a payment, as needed to confirm
// a booking: its status, the charged amount and the booking id the charge was
// created with (external_reference on Mercado Pago).
type GatewayPayment struct {
	ID                string
	Status            string
	Amount            float64
	ExternalReference string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The booking-service uses it to create the hosted deposit charge for a
// booking and to read a payment back during confirmation.
type IPaymentGateway interface {
	CreateDeposit(ctx context.Context, bookingID, payerEmail string, amount float64) (GatewayPayment, error)
	GetPayment(ctx context.Context, providerPaymentID string) (GatewayPayment, error)
}
