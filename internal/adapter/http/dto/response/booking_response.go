package response

import (
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
)

type BookingResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id,omitempty"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone,omitempty"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	Address         string                 `json:"address"`
	City            string                 `json:"city"`
	State           string                 `json:"state"`
	Zip             string                 `json:"zip"`
	Services        []ServiceQuoteResponse `json:"services"`
	TotalAmount     float64                `json:"total_amount"`
	FormattedTotal  string                 `json:"formatted_total"`
	DepositAmount   float64                `json:"deposit_amount"`
	IsGuest         bool                   `json:"is_guest"`
	Status          string                 `json:"status"`
	PaymentIntentID string                 `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CustomerName:    b.CustomerName,
		Address:         b.Address,
		City:            b.City,
		State:           b.State,
		Zip:             b.Zip,
		Services:        FromServiceQuotes(b.Services),
		TotalAmount:     b.TotalAmount,
		FormattedTotal:  pricing.FormatPrice(b.TotalAmount),
		DepositAmount:   b.DepositAmount,
		IsGuest:         b.IsGuest,
		Status:          string(b.Status),
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
