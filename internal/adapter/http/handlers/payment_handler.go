package handlers

import (
	"errors"
	"net/http"

	request "github.com/brightwash/booking-service/internal/adapter/http/dto/request"
	response "github.com/brightwash/booking-service/internal/adapter/http/dto/response"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles the deposit flow against the hosted provider.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateDeposit godoc
// @Summary      Open the deposit charge for a booking
// @Tags         payments
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Success      201 {object} response.DepositResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /payments/{booking_id}/deposit [post]
func (h *PaymentHandler) CreateDeposit(c *gin.Context) {
	bookingID := c.Param("booking_id")

	gp, err := h.usecase.CreateDeposit(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGatewayPayment(bookingID, gp))
}

// ConfirmPayment godoc
// @Summary      Confirm a provider payment for a booking
// @Description  Re-reads the payment from the provider and advances the booking when it matches.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Param        payload body request.ConfirmPaymentRequest true "Provider payment reference"
// @Success      200 {object} response.BookingResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      402 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments/{booking_id}/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Confirm(c.Request.Context(), c.Param("booking_id"), payload.ProviderPaymentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListPayments godoc
// @Summary      List recorded payments for a booking
// @Tags         payments
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Success      200 {array} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/{booking_id} [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByBookingID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBookingID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotPayable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAYABLE", "Booking is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_MISMATCH", "Payment does not reference this booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAmountMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_AMOUNT_MISMATCH", "Payment amount matches neither the deposit nor the total", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
