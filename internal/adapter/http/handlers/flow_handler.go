package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	request "github.com/brightwash/booking-service/internal/adapter/http/dto/request"
	response "github.com/brightwash/booking-service/internal/adapter/http/dto/response"
	"github.com/brightwash/booking-service/internal/adapter/http/middleware"
	"github.com/brightwash/booking-service/internal/booking/flow"
	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/validation"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidFlowPayload = pkg.NewDomainErrorSimple("INVALID_FLOW_INPUT", "Invalid flow payload", http.StatusBadRequest)
	errFlowNotFound       = pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "Flow not found", http.StatusNotFound)
)

// flowStore keeps live flows in memory keyed by flow id. Flows are
// session-scoped interaction state, not domain records; losing them on
// restart only sends the customer back to service selection.
type flowStore struct {
	mu    sync.Mutex
	flows map[string]*flow.Flow
}

func newFlowStore() *flowStore {
	return &flowStore{flows: make(map[string]*flow.Flow)}
}

func (s *flowStore) put(id string, f *flow.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[id] = f
}

func (s *flowStore) get(id string) (*flow.Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[id]
	return f, ok
}

// bookingCreatorAdapter lets the flow submit bookings through the booking
// usecase. The usecase re-validates and re-prices, so the flow's totals are
// advisory here.
type bookingCreatorAdapter struct {
	usecase usecase.IBookingUseCase
}

func (a bookingCreatorAdapter) CreateBooking(ctx context.Context, contact entities.ContactInfo, services []entities.ServiceQuote, _ float64, _ float64, isGuest bool, userID string) (entities.Booking, error) {
	return a.usecase.CreateBooking(ctx, contact, services, isGuest, userID)
}

type quoteLoggerAdapter struct {
	usecase usecase.IQuoteLogUseCase
}

func (a quoteLoggerAdapter) LogQuote(ctx context.Context, email string, services []entities.ServiceQuote, total float64) error {
	return a.usecase.LogQuote(ctx, email, services, total)
}

// FlowHandler drives the step-by-step booking flow over HTTP. Each customer
// holds one flow, created by StartFlow and addressed by flow id afterwards.

type FlowHandler struct {
	store    *flowStore
	bookings usecase.IBookingUseCase
	quotes   usecase.IQuoteLogUseCase
}

func NewFlowHandler(bookings usecase.IBookingUseCase, quotes usecase.IQuoteLogUseCase) *FlowHandler {
	return &FlowHandler{
		store:    newFlowStore(),
		bookings: bookings,
		quotes:   quotes,
	}
}

func (h *FlowHandler) deps() flow.Deps {
	d := flow.Deps{Deposit: usecase.DepositAmount()}
	if h.bookings != nil {
		d.Bookings = bookingCreatorAdapter{usecase: h.bookings}
	}
	if h.quotes != nil {
		d.Quotes = quoteLoggerAdapter{usecase: h.quotes}
	}
	return d
}

// StartFlow godoc
// @Summary      Start a booking flow
// @Tags         flow
// @Produce      json
// @Success      201 {object} response.FlowStateResponse
// @Router       /flow [post]
func (h *FlowHandler) StartFlow(c *gin.Context) {
	var session *flow.Session
	if s, ok := middleware.SessionFrom(c); ok {
		session = &flow.Session{UserID: s.UserID, Email: s.Email, Role: s.Role}
	}

	id := uuid.NewString()
	f := flow.New(h.deps(), session)
	h.store.put(id, f)

	c.JSON(http.StatusCreated, response.FromFlowState(id, f.Snapshot()))
}

// GetFlow godoc
// @Summary      Current flow state
// @Tags         flow
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /flow/{flow_id} [get]
func (h *FlowHandler) GetFlow(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

// SelectService godoc
// @Summary      Select a service to configure
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Param        payload body request.FlowSelectRequest true "Service to select"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/select [post]
func (h *FlowHandler) SelectService(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}

	var payload request.FlowSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	if err := f.Select(payload.ServiceID); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

// ConfigureService godoc
// @Summary      Submit the configuration for the selected service
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Param        payload body request.FlowConfigureRequest true "Configuration"
// @Success      200 {object} response.FlowStateResponse
// @Failure      400 {object} pkg.FieldError
// @Failure      404 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/configure [post]
func (h *FlowHandler) ConfigureService(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}

	var payload request.FlowConfigureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	res, err := f.Configure(validation.ServiceConfig{
		Material:  payload.Material,
		Size:      payload.Size,
		Stories:   payload.Stories,
		RoofPitch: payload.RoofPitch,
	})
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if !res.Valid() {
		c.JSON(http.StatusBadRequest, pkg.NewFieldError(res.Fields))
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

// CancelConfiguration godoc
// @Summary      Discard the in-progress configuration
// @Tags         flow
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/cancel-configuration [post]
func (h *FlowHandler) CancelConfiguration(c *gin.Context) {
	h.simpleEvent(c, func(f *flow.Flow) error { return f.CancelConfiguration() })
}

// RemoveQuote godoc
// @Summary      Remove a line item from the cart
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Param        payload body request.FlowRemoveRequest true "Position to remove"
// @Success      200 {object} response.FlowStateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/remove [post]
func (h *FlowHandler) RemoveQuote(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}

	var payload request.FlowRemoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Index == nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	if err := f.Remove(*payload.Index); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

// Continue godoc
// @Summary      Continue towards checkout
// @Tags         flow
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/continue [post]
func (h *FlowHandler) Continue(c *gin.Context) {
	h.simpleEvent(c, func(f *flow.Flow) error { return f.Continue() })
}

// ContinueAsGuest godoc
// @Summary      Proceed past the auth prompt without an account
// @Tags         flow
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/guest [post]
func (h *FlowHandler) ContinueAsGuest(c *gin.Context) {
	h.simpleEvent(c, func(f *flow.Flow) error { return f.ContinueAsGuest() })
}

// SignIn godoc
// @Summary      Attach the authenticated session at the auth prompt
// @Tags         flow
// @Produce      json
// @Security     Bearer
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/signin [post]
func (h *FlowHandler) SignIn(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.simpleEvent(c, func(f *flow.Flow) error {
		return f.SignedIn(flow.Session{UserID: s.UserID, Email: s.Email, Role: s.Role})
	})
}

// Back godoc
// @Summary      Return from the contact step to selection
// @Tags         flow
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/back [post]
func (h *FlowHandler) Back(c *gin.Context) {
	h.simpleEvent(c, func(f *flow.Flow) error { return f.Back() })
}

// SubmitContact godoc
// @Summary      Submit contact details and create the booking
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Param        payload body request.ContactRequest true "Contact record"
// @Success      200 {object} response.FlowStateResponse
// @Failure      400 {object} pkg.FieldError
// @Failure      404 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/contact [post]
func (h *FlowHandler) SubmitContact(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}

	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	res, err := f.SubmitContact(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondFlowError(c, err)
		return
	}
	if !res.Valid() {
		c.JSON(http.StatusBadRequest, pkg.NewFieldError(res.Fields))
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

// PaymentResult godoc
// @Summary      Report the payment outcome for this flow
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        flow_id path string true "Flow id"
// @Param        payload body request.FlowPaymentResultRequest true "Payment outcome"
// @Success      200 {object} response.FlowStateResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /flow/{flow_id}/payment-result [post]
func (h *FlowHandler) PaymentResult(c *gin.Context) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}

	var payload request.FlowPaymentResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	var err error
	if payload.Success {
		err = f.PaymentSucceeded()
	} else {
		err = f.PaymentFailed(payload.Message)
	}
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

func (h *FlowHandler) simpleEvent(c *gin.Context, event func(*flow.Flow) error) {
	f, ok := h.store.get(c.Param("flow_id"))
	if !ok {
		c.JSON(errFlowNotFound.HTTPStatus, errFlowNotFound.ToHTTPError())
		return
	}
	if err := event(f); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFlowState(c.Param("flow_id"), f.Snapshot()))
}

func respondFlowError(c *gin.Context, err error) {
	var fe *pkg.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	appErr := mapFlowError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, flow.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, flow.ErrNotFundable):
		return pkg.NewDomainErrorSimple("CART_NOT_FUNDABLE", "Cart total has not reached the minimum", http.StatusConflict)
	case errors.Is(err, flow.ErrInvalidTransition), errors.Is(err, flow.ErrNoConfiguration):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Event is not allowed in the current step", http.StatusConflict)
	case errors.Is(err, flow.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingHasNoServices), errors.Is(err, usecase.ErrBookingBelowMinimum):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("BOOKING_SUBMISSION_FAILED", "Failed to submit booking", err, http.StatusBadGateway)
	}
}
