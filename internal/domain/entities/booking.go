package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - A booking is created pending before any money moves; payment failures
//     leave it pending for retry (no automatic cleanup of abandoned pending
//     bookings).
//   - Confirming the deposit moves it to deposit_paid; paying in full moves it
//     straight to paid.

type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusDepositPaid BookingStatus = "deposit_paid"
	BookingStatusPaid        BookingStatus = "paid"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusCompleted   BookingStatus = "completed"
)

// ContactInfo is the contact/address record captured on the contact step.
// Email is required and format-validated; phone is optional but
// format-checked when present; name is optional; the address fields are all
// required.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Booking is the booking record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_email-index): customer_email

type Booking struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id,omitempty"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	State           string         `json:"state"`
	Zip             string         `json:"zip"`
	Services        []ServiceQuote `json:"services"`
	TotalAmount     float64        `json:"total_amount"`
	DepositAmount   float64        `json:"deposit_amount"`
	IsGuest         bool           `json:"is_guest"`
	Status          BookingStatus  `json:"status"`
	PaymentIntentID string         `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
