package request

import (
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/validation"
)

// ServiceQuoteRequest is one service configuration as submitted by a client.
// Sizes travel as strings; the validation layer owns parsing.
type ServiceQuoteRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Material  string `json:"material"`
	Size      string `json:"size"`
	Stories   string `json:"stories"`
	RoofPitch string `json:"roof_pitch"`
}

func (r ServiceQuoteRequest) ToServiceConfig() validation.ServiceConfig {
	return validation.ServiceConfig{
		Material:  r.Material,
		Size:      r.Size,
		Stories:   r.Stories,
		RoofPitch: r.RoofPitch,
	}
}

func (r ServiceQuoteRequest) ToEntity() entities.ServiceQuote {
	return entities.ServiceQuote{
		ServiceID: r.ServiceID,
		Material:  r.Material,
		Size:      r.Size,
		Stories:   r.Stories,
		RoofPitch: r.RoofPitch,
	}
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (r ContactRequest) ToEntity() entities.ContactInfo {
	return entities.ContactInfo{
		Email:   r.Email,
		Phone:   r.Phone,
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
	}
}

type CreateBookingRequest struct {
	Contact  ContactRequest        `json:"contact" binding:"required"`
	Services []ServiceQuoteRequest `json:"services" binding:"required"`
	IsGuest  bool                  `json:"is_guest"`
}

func (r CreateBookingRequest) ToQuotes() []entities.ServiceQuote {
	quotes := make([]entities.ServiceQuote, 0, len(r.Services))
	for _, s := range r.Services {
		quotes = append(quotes, s.ToEntity())
	}
	return quotes
}

// QuotePreviewRequest prices a cart without creating anything.
type QuotePreviewRequest struct {
	Services []ServiceQuoteRequest `json:"services" binding:"required"`
}
