package request

// ConfirmPaymentRequest carries the provider payment id the client got back
// from the hosted checkout.
type ConfirmPaymentRequest struct {
	ProviderPaymentID string `json:"provider_payment_id"`
}
