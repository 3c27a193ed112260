package interfaces

import (
	"context"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	UpdatePayment(ctx context.Context, id string, status entities.BookingStatus, paymentIntentID string) (entities.Booking, error)
	Count(ctx context.Context) (int, error)
}
