package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "github.com/brightwash/booking-service/internal/adapter/http/dto/request"
	response "github.com/brightwash/booking-service/internal/adapter/http/dto/response"
	"github.com/brightwash/booking-service/internal/adapter/http/middleware"
	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errBookingUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errBookingForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Booking belongs to another customer", http.StatusForbidden)
)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Validates the contact record and services, prices them server side and creates a pending booking.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateBookingRequest true "Booking to create"
// @Success      201 {object} response.BookingResponse
// @Failure      400 {object} pkg.FieldError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	userID := ""
	isGuest := payload.IsGuest
	if s, ok := middleware.SessionFrom(c); ok {
		userID = s.UserID
		isGuest = false
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), payload.Contact.ToEntity(), payload.ToQuotes(), isGuest, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListBookings godoc
// @Summary      Booking history for a customer
// @Description  Lists the session customer's bookings. Admins may list any email.
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Param        email query string false "Customer email (admin only)"
// @Success      200 {array} response.BookingResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errBookingUnauthorized.HTTPStatus, errBookingUnauthorized.ToHTTPError())
		return
	}

	email := s.Email
	if q := strings.TrimSpace(c.Query("email")); q != "" && !strings.EqualFold(q, email) {
		if !s.IsAdmin() {
			c.JSON(errBookingForbidden.HTTPStatus, errBookingForbidden.ToHTTPError())
			return
		}
		email = q
	}

	bookings, err := h.usecase.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Cancels the session customer's booking. Admins may cancel any booking.
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Param        booking_id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /bookings/{booking_id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errBookingUnauthorized.HTTPStatus, errBookingUnauthorized.ToHTTPError())
		return
	}

	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !s.IsAdmin() && !strings.EqualFold(booking.CustomerEmail, s.Email) {
		c.JSON(errBookingForbidden.HTTPStatus, errBookingForbidden.ToHTTPError())
		return
	}

	h.patchBookingStatus(c, h.usecase.Cancel)
}

// ConfirmBooking godoc
// @Summary      Confirm a paid booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /bookings/{booking_id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Confirm)
}

// CompleteBooking godoc
// @Summary      Mark a booking completed
// @Tags         bookings
// @Produce      json
// @Param        booking_id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /bookings/{booking_id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Complete)
}

func (h *BookingHandler) patchBookingStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Booking, error),
) {
	booking, err := updater(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func respondBookingError(c *gin.Context, err error) {
	var fe *pkg.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	appErr := mapBookingError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidBookingEmail),
		errors.Is(err, usecase.ErrBookingHasNoServices), errors.Is(err, usecase.ErrBookingBelowMinimum):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, catalog.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotCancellable), errors.Is(err, usecase.ErrBookingNotConfirmable),
		errors.Is(err, usecase.ErrBookingNotCompletable):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_STATE", "Booking is not in a state that allows this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
