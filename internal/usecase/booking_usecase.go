package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
	"github.com/brightwash/booking-service/internal/domain/validation"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"
	"github.com/brightwash/booking-service/pkg"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidBookingEmail   = errors.New("invalid email")
	ErrBookingHasNoServices  = errors.New("booking has no services")
	ErrBookingBelowMinimum   = errors.New("booking total below minimum")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")
	ErrBookingNotConfirmable = errors.New("booking cannot be confirmed")
	ErrBookingNotCompletable = errors.New("booking cannot be completed")
)

// IBookingUseCase exposes booking lifecycle operations.
//
// CreateBooking is the single entry point out of the flow's contact step:
// it re-validates everything server side and never trusts client prices.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, contact entities.ContactInfo, services []entities.ServiceQuote, isGuest bool, userID string) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	Confirm(ctx context.Context, id string) (entities.Booking, error)
	Complete(ctx context.Context, id string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo     interfaces.IBookingRepository
	notifier interfaces.INotifier
	deposit  float64
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, notifier interfaces.INotifier) *BookingUseCase {
	return &BookingUseCase{repo: repo, notifier: notifier, deposit: DepositAmount()}
}

// DepositAmount is the flat deposit charged per booking, overridable through
// DEPOSIT_AMOUNT.
func DepositAmount() float64 {
	if v := strings.TrimSpace(os.Getenv("DEPOSIT_AMOUNT")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return 50
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, contact entities.ContactInfo, services []entities.ServiceQuote, isGuest bool, userID string) (entities.Booking, error) {
	log.Printf("[booking][usecase] create start email=%s services=%d guest=%v", contact.Email, len(services), isGuest)

	if res := validation.Contact(contact); !res.Valid() {
		log.Printf("[booking][usecase] contact rejected email=%s fields=%v", contact.Email, res.Fields)
		return entities.Booking{}, pkg.NewFieldError(res.Fields)
	}
	if len(services) == 0 {
		return entities.Booking{}, ErrBookingHasNoServices
	}

	// Quotes are re-validated and re-priced against the catalog; client
	// supplied prices are discarded.
	priced := make([]entities.ServiceQuote, 0, len(services))
	var total float64
	for _, q := range services {
		svc, err := catalog.ByID(q.ServiceID)
		if err != nil {
			return entities.Booking{}, err
		}
		cfg := validation.ServiceConfig{
			Material:  q.Material,
			Size:      q.Size,
			Stories:   q.Stories,
			RoofPitch: q.RoofPitch,
		}
		if res := validation.ServiceDetails(svc, cfg); !res.Valid() {
			log.Printf("[booking][usecase] service rejected service_id=%s fields=%v", q.ServiceID, res.Fields)
			return entities.Booking{}, pkg.NewFieldError(res.Fields)
		}
		q.Price = pricing.Price(svc, cfg.Size, cfg.Material, cfg.Stories, cfg.RoofPitch)
		priced = append(priced, q)
		total += q.Price
	}
	if total < catalog.MinimumFloor() {
		return entities.Booking{}, ErrBookingBelowMinimum
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		CustomerEmail: strings.TrimSpace(contact.Email),
		CustomerPhone: strings.TrimSpace(contact.Phone),
		CustomerName:  strings.TrimSpace(contact.Name),
		Address:       strings.TrimSpace(contact.Address),
		City:          strings.TrimSpace(contact.City),
		State:         strings.TrimSpace(contact.State),
		Zip:           strings.TrimSpace(contact.Zip),
		Services:      priced,
		TotalAmount:   total,
		DepositAmount: u.deposit,
		IsGuest:       isGuest,
		Status:        entities.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] repository create failed booking_id=%s err=%v", b.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] create success booking_id=%s total=%.2f deposit=%.2f", created.ID, created.TotalAmount, created.DepositAmount)

	if u.notifier != nil {
		go func(b entities.Booking) {
			nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := u.notifier.BookingCreated(nctx, b); err != nil {
				log.Printf("[booking][usecase] notify failed booking_id=%s err=%v", b.ID, err)
			}
		}(created)
	}

	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidBookingEmail
	}
	return u.repo.ListByEmail(ctx, email)
}

func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	switch b.Status {
	case entities.BookingStatusCancelled, entities.BookingStatusCompleted:
		return entities.Booking{}, ErrBookingNotCancellable
	}
	return u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusCancelled)
}

func (u *BookingUseCase) Confirm(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	switch b.Status {
	case entities.BookingStatusDepositPaid, entities.BookingStatusPaid:
		return u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusConfirmed)
	}
	return entities.Booking{}, ErrBookingNotConfirmable
}

func (u *BookingUseCase) Complete(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.Status != entities.BookingStatusConfirmed {
		return entities.Booking{}, ErrBookingNotCompletable
	}
	return u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusCompleted)
}
