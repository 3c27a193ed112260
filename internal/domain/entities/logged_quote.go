package entities

import "time"

// LoggedQuote is a pre-booking quote captured for drop-off analytics the
// moment a customer submits the contact step. Logging is fire-and-forget: a
// failure here never gates the booking flow.
//
// Storage model (DynamoDB):
//   - PK: id

type LoggedQuote struct {
	ID          string         `json:"id"`
	Email       string         `json:"email,omitempty"`
	Services    []ServiceQuote `json:"services"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
}
