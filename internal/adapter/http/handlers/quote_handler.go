package handlers

import (
	"net/http"

	request "github.com/brightwash/booking-service/internal/adapter/http/dto/request"
	response "github.com/brightwash/booking-service/internal/adapter/http/dto/response"
	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
	"github.com/brightwash/booking-service/internal/domain/validation"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler prices carts without persisting anything. The same catalog,
// validation and pricing rules used on booking creation apply, so a preview
// total always matches what a booking would charge.

type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

// PreviewQuote godoc
// @Summary      Price a cart
// @Description  Validates and prices a set of service configurations.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload body request.QuotePreviewRequest true "Cart to price"
// @Success      200 {object} response.QuotePreviewResponse
// @Failure      400 {object} pkg.FieldError
// @Failure      404 {object} pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuotePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quotes := make([]entities.ServiceQuote, 0, len(payload.Services))
	var total float64
	for _, s := range payload.Services {
		svc, err := catalog.ByID(s.ServiceID)
		if err != nil {
			c.JSON(errServiceNotFound.HTTPStatus, errServiceNotFound.ToHTTPError())
			return
		}
		cfg := s.ToServiceConfig()
		if res := validation.ServiceDetails(svc, cfg); !res.Valid() {
			c.JSON(http.StatusBadRequest, pkg.NewFieldError(res.Fields))
			return
		}
		q := s.ToEntity()
		q.Price = pricing.Price(svc, cfg.Size, cfg.Material, cfg.Stories, cfg.RoofPitch)
		quotes = append(quotes, q)
		total += q.Price
	}

	c.JSON(http.StatusOK, response.QuotePreviewResponse{
		Services:       response.FromServiceQuotes(quotes),
		Total:          total,
		FormattedTotal: pricing.FormatPrice(total),
		Fundable:       len(quotes) > 0 && total >= catalog.MinimumFloor(),
		Deposit:        usecase.DepositAmount(),
	})
}
