package interfaces

import (
	"context"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

// INotifier pushes operational notifications (e.g. Slack webhook) when a
// booking is created. Implementations must be safe to call concurrently;
// failures are logged by callers and never block the booking.

type INotifier interface {
	BookingCreated(ctx context.Context, b entities.Booking) error
}
