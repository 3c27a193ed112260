package response

import (
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Type:      string(p.Type),
		Status:    string(p.Status),
		Date:      p.Date,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// DepositResponse is the provider charge handed back to the client so it can
// finish the hosted checkout.
type DepositResponse struct {
	ProviderPaymentID string  `json:"provider_payment_id"`
	Status            string  `json:"status"`
	Amount            float64 `json:"amount"`
	BookingID         string  `json:"booking_id"`
}

func FromGatewayPayment(bookingID string, gp interfaces.GatewayPayment) DepositResponse {
	return DepositResponse{
		ProviderPaymentID: gp.ID,
		Status:            gp.Status,
		Amount:            gp.Amount,
		BookingID:         bookingID,
	}
}
