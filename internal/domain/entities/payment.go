package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentType distinguishes the upfront deposit from a full payment.

type PaymentType string

const (
	PaymentTypeDeposit     PaymentType = "deposit"
	PaymentTypeFullPayment PaymentType = "full_payment"
)

// Payment is a confirmed provider payment persisted by the booking service.
//
// Storage model (DynamoDB):
//   - PK: id (the provider's payment id)
//   - GSI1 (booking_id-index): booking_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Amount    float64       `json:"amount"`
	Type      PaymentType   `json:"type"`
	Status    PaymentStatus `json:"status"`
	Date      time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
