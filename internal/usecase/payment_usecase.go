package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrInvalidPaymentBookingID = errors.New("invalid booking_id")
	ErrBookingNotPayable       = errors.New("booking is not awaiting payment")
	ErrPaymentNotApproved      = errors.New("payment not approved by provider")
	ErrPaymentMismatch         = errors.New("payment does not reference this booking")
	ErrPaymentAmountMismatch   = errors.New("payment amount matches neither deposit nor total")
)

// IPaymentUseCase encapsulates the deposit flow against the hosted provider.
//
// Requested behavior:
//   - CreateDeposit opens the provider charge for a booking's deposit. Nothing
//     is persisted; money state only changes on confirmation.
//   - Confirm re-reads the payment from the provider and, when it checks out,
//     records it and advances the booking to deposit_paid or paid.

type IPaymentUseCase interface {
	CreateDeposit(ctx context.Context, bookingID string) (interfaces.GatewayPayment, error)
	Confirm(ctx context.Context, bookingID, providerPaymentID string) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bookingRepo: bookingRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateDeposit(ctx context.Context, bookingID string) (interfaces.GatewayPayment, error) {
	log.Printf("[payment][usecase] create-deposit start raw_booking_id=%q", bookingID)
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return interfaces.GatewayPayment{}, ErrInvalidPaymentBookingID
	}
	if u.bookingRepo == nil {
		return interfaces.GatewayPayment{}, errors.New("booking repository not configured")
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking booking_id=%s err=%v", bookingID, err)
		return interfaces.GatewayPayment{}, err
	}
	if b.ID == "" {
		return interfaces.GatewayPayment{}, ErrBookingNotFound
	}
	if b.Status != entities.BookingStatusPending {
		log.Printf("[payment][usecase] booking not payable booking_id=%s status=%s", bookingID, b.Status)
		return interfaces.GatewayPayment{}, ErrBookingNotPayable
	}

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway booking_id=%s", bookingID)
		return mockGatewayPayment(bookingID, b.DepositAmount), nil
	}
	if u.gateway == nil {
		return interfaces.GatewayPayment{}, errors.New("payment gateway not configured")
	}

	gp, err := u.gateway.CreateDeposit(ctx, bookingID, b.CustomerEmail, b.DepositAmount)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed booking_id=%s err=%v", bookingID, err)
		return interfaces.GatewayPayment{}, err
	}
	log.Printf("[payment][usecase] create-deposit success booking_id=%s provider_payment_id=%s provider_status=%s", bookingID, gp.ID, gp.Status)
	return gp, nil
}

func (u *PaymentUseCase) Confirm(ctx context.Context, bookingID, providerPaymentID string) (entities.Booking, error) {
	log.Printf("[payment][usecase] confirm start booking_id=%q provider_payment_id=%q", bookingID, providerPaymentID)
	bookingID = strings.TrimSpace(bookingID)
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidPaymentBookingID
	}
	if providerPaymentID == "" && !isPaymentGatewayMockEnabled() {
		return entities.Booking{}, ErrInvalidPaymentID
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	switch b.Status {
	case entities.BookingStatusPending, entities.BookingStatusDepositPaid:
	default:
		log.Printf("[payment][usecase] booking not payable booking_id=%s status=%s", bookingID, b.Status)
		return entities.Booking{}, ErrBookingNotPayable
	}

	var gp interfaces.GatewayPayment
	if isPaymentGatewayMockEnabled() {
		gp = mockGatewayPayment(bookingID, b.DepositAmount)
		if providerPaymentID != "" {
			gp.ID = providerPaymentID
		}
	} else {
		gp, err = u.gateway.GetPayment(ctx, providerPaymentID)
		if err != nil {
			log.Printf("[payment][usecase] provider lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
			return entities.Booking{}, err
		}
	}

	if !isApprovedStatus(gp.Status) {
		log.Printf("[payment][usecase] payment not approved booking_id=%s provider_status=%s", bookingID, gp.Status)
		return entities.Booking{}, ErrPaymentNotApproved
	}
	if gp.ExternalReference != bookingID {
		log.Printf("[payment][usecase] external_reference mismatch booking_id=%s got=%q", bookingID, gp.ExternalReference)
		return entities.Booking{}, ErrPaymentMismatch
	}

	var (
		paymentType entities.PaymentType
		nextStatus  entities.BookingStatus
	)
	switch {
	case amountsEqual(gp.Amount, b.DepositAmount):
		paymentType = entities.PaymentTypeDeposit
		nextStatus = entities.BookingStatusDepositPaid
	case amountsEqual(gp.Amount, b.TotalAmount):
		paymentType = entities.PaymentTypeFullPayment
		nextStatus = entities.BookingStatusPaid
	default:
		log.Printf("[payment][usecase] amount mismatch booking_id=%s amount=%.2f deposit=%.2f total=%.2f", bookingID, gp.Amount, b.DepositAmount, b.TotalAmount)
		return entities.Booking{}, ErrPaymentAmountMismatch
	}

	var parsed map[string]interface{}
	if len(gp.Raw) > 0 {
		if err := json.Unmarshal(gp.Raw, &parsed); err != nil {
			log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", bookingID, err)
		}
	}

	p := entities.Payment{
		ID:                 gp.ID,
		BookingID:          bookingID,
		Amount:             gp.Amount,
		Type:               paymentType,
		Status:             entities.PaymentStatusSuccessful,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: gp.Raw,
		ProviderPayload:    parsed,
	}
	if _, err := u.repo.Create(ctx, p); err != nil {
		log.Printf("[payment][usecase] payment repository create failed booking_id=%s payment_id=%s err=%v", bookingID, p.ID, err)
		return entities.Booking{}, err
	}

	updated, err := u.bookingRepo.UpdatePayment(ctx, bookingID, nextStatus, gp.ID)
	if err != nil {
		log.Printf("[payment][usecase] booking update failed booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}
	log.Printf("[payment][usecase] confirm success booking_id=%s payment_id=%s status=%s", bookingID, gp.ID, updated.Status)
	return updated, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}

// isApprovedStatus accepts the provider spellings seen across gateways.
func isApprovedStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "succeeded":
		return true
	}
	return false
}

// amountsEqual compares money values to the cent.
func amountsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func mockGatewayPayment(bookingID string, amount float64) interfaces.GatewayPayment {
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

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
