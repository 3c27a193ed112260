package response

import (
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
)

type ServiceQuoteResponse struct {
	ServiceID      string  `json:"service_id"`
	Material       string  `json:"material,omitempty"`
	Size           string  `json:"size"`
	Stories        string  `json:"stories,omitempty"`
	RoofPitch      string  `json:"roof_pitch,omitempty"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
}

func FromServiceQuote(q entities.ServiceQuote) ServiceQuoteResponse {
	return ServiceQuoteResponse{
		ServiceID:      q.ServiceID,
		Material:       q.Material,
		Size:           q.Size,
		Stories:        q.Stories,
		RoofPitch:      q.RoofPitch,
		Price:          q.Price,
		FormattedPrice: pricing.FormatPrice(q.Price),
	}
}

func FromServiceQuotes(quotes []entities.ServiceQuote) []ServiceQuoteResponse {
	out := make([]ServiceQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromServiceQuote(q))
	}
	return out
}

// QuotePreviewResponse is a priced cart without any persisted state.
type QuotePreviewResponse struct {
	Services       []ServiceQuoteResponse `json:"services"`
	Total          float64                `json:"total"`
	FormattedTotal string                 `json:"formatted_total"`
	Fundable       bool                   `json:"fundable"`
	Deposit        float64                `json:"deposit"`
}
