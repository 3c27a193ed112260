package interfaces

import (
	"context"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for LoggedQuote, the
// pre-booking quote log feeding conversion analytics.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.LoggedQuote) (entities.LoggedQuote, error)
	List(ctx context.Context) ([]entities.LoggedQuote, error)
	Count(ctx context.Context) (int, error)
}
