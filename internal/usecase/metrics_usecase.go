package usecase

import (
	"context"

	"github.com/brightwash/booking-service/internal/usecase/interfaces"
)

// ConversionMetrics is the quote-to-booking funnel snapshot served to admins.
// Dropped quotes are quotes that never became a booking.
type ConversionMetrics struct {
	TotalQuotes     int     `json:"total_quotes"`
	ConvertedQuotes int     `json:"converted_quotes"`
	DroppedQuotes   int     `json:"dropped_quotes"`
	ConversionRate  float64 `json:"conversion_rate"`
}

type IMetricsUseCase interface {
	Conversion(ctx context.Context) (ConversionMetrics, error)
}

type MetricsUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	bookingRepo interfaces.IBookingRepository
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(quoteRepo interfaces.IQuoteRepository, bookingRepo interfaces.IBookingRepository) *MetricsUseCase {
	return &MetricsUseCase{quoteRepo: quoteRepo, bookingRepo: bookingRepo}
}

func (u *MetricsUseCase) Conversion(ctx context.Context) (ConversionMetrics, error) {
	total, err := u.quoteRepo.Count(ctx)
	if err != nil {
		return ConversionMetrics{}, err
	}
	converted, err := u.bookingRepo.Count(ctx)
	if err != nil {
		return ConversionMetrics{}, err
	}

	// A booking can only exist for a logged quote, but counts are read in two
	// scans; clamp instead of reporting a negative drop.
	if converted > total {
		converted = total
	}
	m := ConversionMetrics{
		TotalQuotes:     total,
		ConvertedQuotes: converted,
		DroppedQuotes:   total - converted,
	}
	if total > 0 {
		m.ConversionRate = float64(converted) / float64(total)
	}
	return m, nil
}
