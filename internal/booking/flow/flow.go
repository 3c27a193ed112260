// Package flow implements the booking flow state machine: the guarded step
// sequence a customer walks from service selection to payment confirmation.
// All state is session-local; collaborators for persistence and quote logging
// are injected and only touched on the contact step.
package flow

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
	"github.com/brightwash/booking-service/internal/domain/validation"
)

// Step constants for the booking flow state machine.

type Step string

const (
	StepSelection     Step = "selection"
	StepConfiguration Step = "configuration"
	StepAuthPrompt    Step = "auth_prompt"
	StepContact       Step = "contact"
	StepPayment       Step = "payment"
	StepConfirmation  Step = "confirmation"
)

var transitions = map[Step]map[Step]struct{}{
	StepSelection: {
		StepConfiguration: {},
		StepAuthPrompt:    {},
		StepContact:       {},
	},
	StepConfiguration: {
		StepSelection: {},
	},
	StepAuthPrompt: {
		StepContact: {},
	},
	StepContact: {
		StepPayment:   {},
		StepSelection: {},
	},
	StepPayment: {
		StepConfirmation: {},
		StepContact:      {},
	},
	StepConfirmation: {},
}

// CanTransition returns whether the flow may move from one step to another.
func CanTransition(from, to Step) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

var (
	ErrInvalidTransition  = errors.New("invalid flow transition")
	ErrNotFundable        = errors.New("cart total is not fundable yet")
	ErrNoConfiguration    = errors.New("no service is being configured")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Session identifies an authenticated customer. A nil session selects the
// guest branch.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// BookingCreator persists a booking when the contact step is submitted.
type BookingCreator interface {
	CreateBooking(ctx context.Context, contact entities.ContactInfo, services []entities.ServiceQuote, total, deposit float64, isGuest bool, userID string) (entities.Booking, error)
}

// QuoteLogger records a pre-booking quote for drop-off analytics. Failures
// are logged and dropped, never surfaced.
type QuoteLogger interface {
	LogQuote(ctx context.Context, email string, services []entities.ServiceQuote, total float64) error
}

// Deps are the external collaborators a flow needs.
type Deps struct {
	Bookings BookingCreator
	Quotes   QuoteLogger
	Deposit  float64
}

// Flow is one customer's booking flow. Methods are safe for concurrent use;
// the in-flight submission flag is the only concurrency control; duplicate
// contact submissions are rejected rather than de-duplicated downstream.
type Flow struct {
	mu sync.Mutex

	deps    Deps
	session *Session

	step       Step
	selected   *entities.Service
	config     validation.ServiceConfig
	cart       Accumulator
	contact    entities.ContactInfo
	guest      bool
	bookingID  string
	lastError  string
	submitting bool
}

// State is a render-ready snapshot of a flow.
type State struct {
	Step              Step
	SelectedServiceID string
	Quotes            []entities.ServiceQuote
	Total             float64
	Fundable          bool
	Contact           entities.ContactInfo
	IsGuest           bool
	Authenticated     bool
	BookingID         string
	Error             string
}

func New(deps Deps, session *Session) *Flow {
	return &Flow{deps: deps, session: session, step: StepSelection}
}

func (f *Flow) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	total, fundable := f.cart.Total()
	st := State{
		Step:          f.step,
		Quotes:        f.cart.Quotes(),
		Total:         total,
		Fundable:      fundable,
		Contact:       f.contact,
		IsGuest:       f.guest,
		Authenticated: f.session != nil,
		BookingID:     f.bookingID,
		Error:         f.lastError,
	}
	if f.selected != nil {
		st.SelectedServiceID = f.selected.ID
	}
	return st
}

// Select moves from selection to configuration for a catalog service.
func (f *Flow) Select(serviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !CanTransition(f.step, StepConfiguration) {
		return ErrInvalidTransition
	}
	svc, err := catalog.ByID(serviceID)
	if err != nil {
		return err
	}
	f.selected = &svc
	f.config = validation.ServiceConfig{}
	f.step = StepConfiguration
	return nil
}

// Configure validates the captured configuration and, when valid, prices it
// and appends the line item to the cart, returning the flow to selection with
// the configuration reset. An invalid configuration is reported through the
// Result and causes no transition.
func (f *Flow) Configure(cfg validation.ServiceConfig) (validation.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepConfiguration {
		return validation.Result{}, ErrInvalidTransition
	}
	if f.selected == nil {
		return validation.Result{}, ErrNoConfiguration
	}

	res := validation.ServiceDetails(*f.selected, cfg)
	if !res.Valid() {
		f.config = cfg
		return res, nil
	}

	f.cart.Add(entities.ServiceQuote{
		ServiceID: f.selected.ID,
		Material:  cfg.Material,
		Size:      cfg.Size,
		Stories:   cfg.Stories,
		RoofPitch: cfg.RoofPitch,
		Price:     pricing.Price(*f.selected, cfg.Size, cfg.Material, cfg.Stories, cfg.RoofPitch),
	})
	f.selected = nil
	f.config = validation.ServiceConfig{}
	f.step = StepSelection
	return res, nil
}

// CancelConfiguration discards the in-progress configuration without adding a
// line item.
func (f *Flow) CancelConfiguration() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepConfiguration {
		return ErrInvalidTransition
	}
	f.selected = nil
	f.config = validation.ServiceConfig{}
	f.step = StepSelection
	return nil
}

// Remove deletes the line item at the given position.
func (f *Flow) Remove(i int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepSelection {
		return ErrInvalidTransition
	}
	return f.cart.Remove(i)
}

// Continue advances from selection towards the contact step once the cart is
// fundable. An anonymous customer who has not chosen guest checkout is routed
// through the auth prompt first.
func (f *Flow) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepSelection {
		return ErrInvalidTransition
	}
	if f.cart.Len() == 0 {
		return ErrNotFundable
	}
	if _, ok := f.cart.Total(); !ok {
		return ErrNotFundable
	}

	if f.session == nil && !f.guest {
		f.step = StepAuthPrompt
		return nil
	}
	f.step = StepContact
	return nil
}

// ContinueAsGuest proceeds past the auth prompt without an account.
func (f *Flow) ContinueAsGuest() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !CanTransition(f.step, StepContact) || f.step != StepAuthPrompt {
		return ErrInvalidTransition
	}
	f.guest = true
	f.step = StepContact
	return nil
}

// SignedIn attaches a session delivered by the auth collaborator and proceeds
// to the contact step.
func (f *Flow) SignedIn(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepAuthPrompt {
		return ErrInvalidTransition
	}
	f.session = &s
	f.guest = false
	f.step = StepContact
	return nil
}

// SubmitContact validates the contact record and, when valid, logs the quote
// (fire-and-forget), creates the booking through the persistence collaborator
// and advances to payment. A collaborator failure keeps the flow on the
// contact step with a user-facing error; the submission is always retryable.
func (f *Flow) SubmitContact(ctx context.Context, contact entities.ContactInfo) (validation.Result, error) {
	f.mu.Lock()
	if f.step != StepContact {
		f.mu.Unlock()
		return validation.Result{}, ErrInvalidTransition
	}
	if f.submitting {
		f.mu.Unlock()
		return validation.Result{}, ErrSubmissionInFlight
	}

	res := validation.Contact(contact)
	if !res.Valid() {
		f.contact = contact
		f.mu.Unlock()
		return res, nil
	}

	total, ok := f.cart.Total()
	if !ok {
		f.mu.Unlock()
		return res, ErrNotFundable
	}

	f.contact = contact
	f.submitting = true
	quotes := f.cart.Quotes()
	isGuest := f.guest
	userID := ""
	if f.session != nil {
		userID = f.session.UserID
	}
	deps := f.deps
	f.mu.Unlock()

	if deps.Quotes != nil {
		go func() {
			if err := deps.Quotes.LogQuote(context.Background(), contact.Email, quotes, total); err != nil {
				log.Printf("[flow] quote log failed email=%s err=%v", contact.Email, err)
			}
		}()
	}

	booking, err := deps.Bookings.CreateBooking(ctx, contact, quotes, total, deps.Deposit, isGuest, userID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.lastError = "failed to submit booking"
		return res, err
	}
	f.bookingID = booking.ID
	f.lastError = ""
	f.step = StepPayment
	return res, nil
}

// Back returns from the contact step to selection so the cart can be edited.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepContact || f.submitting {
		return ErrInvalidTransition
	}
	f.step = StepSelection
	return nil
}

// PaymentSucceeded is triggered by the payment collaborator callback.
func (f *Flow) PaymentSucceeded() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !CanTransition(f.step, StepConfirmation) {
		return ErrInvalidTransition
	}
	f.lastError = ""
	f.step = StepConfirmation
	return nil
}

// PaymentFailed surfaces a payment error and keeps the flow on the payment
// step for a user-initiated retry. The pending booking is left in place.
func (f *Flow) PaymentFailed(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return ErrInvalidTransition
	}
	f.lastError = message
	return nil
}
