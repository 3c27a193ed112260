package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/validation"
)

type fakeBookings struct {
	created []entities.Booking
	err     error
}

func (f *fakeBookings) CreateBooking(_ context.Context, contact entities.ContactInfo, services []entities.ServiceQuote, total, deposit float64, isGuest bool, userID string) (entities.Booking, error) {
	if f.err != nil {
		return entities.Booking{}, f.err
	}
	b := entities.Booking{
		ID:            "bk-1",
		CustomerEmail: contact.Email,
		Services:      services,
		TotalAmount:   total,
		DepositAmount: deposit,
		IsGuest:       isGuest,
		UserID:        userID,
		Status:        entities.BookingStatusPending,
	}
	f.created = append(f.created, b)
	return b, nil
}

type fakeQuotes struct {
	logged chan struct{}
}

func (f *fakeQuotes) LogQuote(context.Context, string, []entities.ServiceQuote, float64) error {
	if f.logged != nil {
		close(f.logged)
	}
	return nil
}

func validContact() entities.ContactInfo {
	return entities.ContactInfo{
		Email:   "jane@example.com",
		Address: "123 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62704",
	}
}

func addConcrete(t *testing.T, f *Flow, size string) {
	t.Helper()
	if err := f.Select("concrete"); err != nil {
		t.Fatalf("select: %v", err)
	}
	res, err := f.Configure(validation.ServiceConfig{Size: size})
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("configure rejected: %v", res.Fields)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Step
		want     bool
	}{
		{StepSelection, StepConfiguration, true},
		{StepConfiguration, StepSelection, true},
		{StepSelection, StepAuthPrompt, true},
		{StepAuthPrompt, StepContact, true},
		{StepContact, StepPayment, true},
		{StepPayment, StepConfirmation, true},
		{StepPayment, StepContact, true},
		{StepConfirmation, StepSelection, false},
		{StepSelection, StepPayment, false},
		{StepConfiguration, StepContact, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestSelectGuardedByCatalog(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)

	if err := f.Select("window"); err == nil {
		t.Fatalf("expected unknown service to be rejected")
	}
	if st := f.Snapshot(); st.Step != StepSelection {
		t.Fatalf("failed select must not transition, step=%s", st.Step)
	}

	if err := f.Select("house"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := f.Snapshot(); st.Step != StepConfiguration || st.SelectedServiceID != "house" {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestConfigureAddsPricedQuote(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	addConcrete(t, f, "500")

	st := f.Snapshot()
	if st.Step != StepSelection {
		t.Fatalf("expected return to selection, got %s", st.Step)
	}
	if len(st.Quotes) != 1 {
		t.Fatalf("expected one quote, got %d", len(st.Quotes))
	}
	if st.Quotes[0].Price != 199 {
		t.Fatalf("expected minimum 199, got %v", st.Quotes[0].Price)
	}
	if !st.Fundable || st.Total != 199 {
		t.Fatalf("expected fundable 199 total, got %v fundable=%v", st.Total, st.Fundable)
	}
}

func TestConfigureInvalidStaysPut(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	if err := f.Select("house"); err != nil {
		t.Fatalf("select: %v", err)
	}

	res, err := f.Configure(validation.ServiceConfig{Size: "-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid() {
		t.Fatalf("expected validation failure")
	}
	st := f.Snapshot()
	if st.Step != StepConfiguration || len(st.Quotes) != 0 {
		t.Fatalf("invalid configure must not transition or add: %+v", st)
	}
}

func TestCancelConfigurationDiscards(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	if err := f.Select("roof"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := f.CancelConfiguration(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	st := f.Snapshot()
	if st.Step != StepSelection || len(st.Quotes) != 0 || st.SelectedServiceID != "" {
		t.Fatalf("cancel must discard: %+v", st)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	addConcrete(t, f, "500")  // 199
	addConcrete(t, f, "1000") // 250
	addConcrete(t, f, "2000") // 500

	if err := f.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	st := f.Snapshot()
	if len(st.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(st.Quotes))
	}
	if st.Quotes[0].Price != 199 || st.Quotes[1].Price != 500 {
		t.Fatalf("remove broke ordering: %+v", st.Quotes)
	}

	if err := f.Remove(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestContinueRequiresFundableCart(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	if err := f.Continue(); !errors.Is(err, ErrNotFundable) {
		t.Fatalf("expected ErrNotFundable on empty cart, got %v", err)
	}

	addConcrete(t, f, "500")
	if err := f.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}
}

func TestContinueBranchesOnSession(t *testing.T) {
	t.Run("anonymous goes through auth prompt", func(t *testing.T) {
		f := New(Deps{Deposit: 50}, nil)
		addConcrete(t, f, "500")
		if err := f.Continue(); err != nil {
			t.Fatalf("continue: %v", err)
		}
		if st := f.Snapshot(); st.Step != StepAuthPrompt {
			t.Fatalf("expected auth prompt, got %s", st.Step)
		}
		if err := f.ContinueAsGuest(); err != nil {
			t.Fatalf("guest: %v", err)
		}
		st := f.Snapshot()
		if st.Step != StepContact || !st.IsGuest {
			t.Fatalf("expected guest contact step: %+v", st)
		}
	})

	t.Run("authenticated skips auth prompt", func(t *testing.T) {
		f := New(Deps{Deposit: 50}, &Session{UserID: "u-1", Email: "jane@example.com"})
		addConcrete(t, f, "500")
		if err := f.Continue(); err != nil {
			t.Fatalf("continue: %v", err)
		}
		st := f.Snapshot()
		if st.Step != StepContact || st.IsGuest || !st.Authenticated {
			t.Fatalf("expected authenticated contact step: %+v", st)
		}
	})

	t.Run("sign in at the prompt", func(t *testing.T) {
		f := New(Deps{Deposit: 50}, nil)
		addConcrete(t, f, "500")
		if err := f.Continue(); err != nil {
			t.Fatalf("continue: %v", err)
		}
		if err := f.SignedIn(Session{UserID: "u-2", Email: "joe@example.com"}); err != nil {
			t.Fatalf("signed in: %v", err)
		}
		st := f.Snapshot()
		if st.Step != StepContact || !st.Authenticated {
			t.Fatalf("expected contact step after sign in: %+v", st)
		}
	})
}

func TestSubmitContact(t *testing.T) {
	t.Run("invalid contact stays on contact", func(t *testing.T) {
		bookings := &fakeBookings{}
		f := New(Deps{Bookings: bookings, Deposit: 50}, nil)
		addConcrete(t, f, "500")
		_ = f.Continue()
		_ = f.ContinueAsGuest()

		contact := validContact()
		contact.Email = "not-an-email"
		res, err := f.SubmitContact(context.Background(), contact)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid() {
			t.Fatalf("expected validation failure")
		}
		if _, ok := res.Fields["email"]; !ok || len(res.Fields) != 1 {
			t.Fatalf("expected only email flagged: %v", res.Fields)
		}
		if st := f.Snapshot(); st.Step != StepContact {
			t.Fatalf("invalid contact must not transition, step=%s", st.Step)
		}
		if len(bookings.created) != 0 {
			t.Fatalf("no booking must be created on invalid contact")
		}
	})

	t.Run("valid contact creates booking and advances", func(t *testing.T) {
		bookings := &fakeBookings{}
		quotes := &fakeQuotes{logged: make(chan struct{})}
		f := New(Deps{Bookings: bookings, Quotes: quotes, Deposit: 50}, nil)
		addConcrete(t, f, "500")
		_ = f.Continue()
		_ = f.ContinueAsGuest()

		res, err := f.SubmitContact(context.Background(), validContact())
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if !res.Valid() {
			t.Fatalf("unexpected validation failure: %v", res.Fields)
		}
		st := f.Snapshot()
		if st.Step != StepPayment || st.BookingID != "bk-1" {
			t.Fatalf("expected payment step with booking id: %+v", st)
		}
		if len(bookings.created) != 1 {
			t.Fatalf("expected one booking, got %d", len(bookings.created))
		}
		b := bookings.created[0]
		if !b.IsGuest || b.TotalAmount != 199 || b.DepositAmount != 50 {
			t.Fatalf("unexpected booking: %+v", b)
		}
		<-quotes.logged
	})

	t.Run("persistence failure keeps contact step", func(t *testing.T) {
		bookings := &fakeBookings{err: errors.New("db down")}
		f := New(Deps{Bookings: bookings, Deposit: 50}, nil)
		addConcrete(t, f, "500")
		_ = f.Continue()
		_ = f.ContinueAsGuest()

		_, err := f.SubmitContact(context.Background(), validContact())
		if err == nil {
			t.Fatalf("expected collaborator error")
		}
		st := f.Snapshot()
		if st.Step != StepContact || st.Error == "" {
			t.Fatalf("expected contact step with flow error: %+v", st)
		}

		// Retry after the collaborator recovers.
		bookings.err = nil
		if _, err := f.SubmitContact(context.Background(), validContact()); err != nil {
			t.Fatalf("retry: %v", err)
		}
		if st := f.Snapshot(); st.Step != StepPayment || st.Error != "" {
			t.Fatalf("expected payment step after retry: %+v", st)
		}
	})
}

func TestPaymentOutcomes(t *testing.T) {
	setup := func(t *testing.T) *Flow {
		t.Helper()
		f := New(Deps{Bookings: &fakeBookings{}, Deposit: 50}, nil)
		addConcrete(t, f, "500")
		_ = f.Continue()
		_ = f.ContinueAsGuest()
		if _, err := f.SubmitContact(context.Background(), validContact()); err != nil {
			t.Fatalf("submit: %v", err)
		}
		return f
	}

	t.Run("success terminates at confirmation", func(t *testing.T) {
		f := setup(t)
		if err := f.PaymentSucceeded(); err != nil {
			t.Fatalf("payment succeeded: %v", err)
		}
		if st := f.Snapshot(); st.Step != StepConfirmation {
			t.Fatalf("expected confirmation, got %s", st.Step)
		}
	})

	t.Run("failure keeps payment step for retry", func(t *testing.T) {
		f := setup(t)
		if err := f.PaymentFailed("card declined"); err != nil {
			t.Fatalf("payment failed: %v", err)
		}
		st := f.Snapshot()
		if st.Step != StepPayment || st.Error != "card declined" {
			t.Fatalf("expected payment step with error: %+v", st)
		}
		if err := f.PaymentSucceeded(); err != nil {
			t.Fatalf("retry success: %v", err)
		}
		if st := f.Snapshot(); st.Step != StepConfirmation {
			t.Fatalf("expected confirmation after retry, got %s", st.Step)
		}
	})
}

func TestBackFromContact(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)
	addConcrete(t, f, "500")
	_ = f.Continue()
	_ = f.ContinueAsGuest()

	if err := f.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if st := f.Snapshot(); st.Step != StepSelection || len(st.Quotes) != 1 {
		t.Fatalf("back must keep the cart: %+v", st)
	}
}

func TestEventsRejectWrongStep(t *testing.T) {
	f := New(Deps{Deposit: 50}, nil)

	if _, err := f.Configure(validation.ServiceConfig{Size: "1"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := f.CancelConfiguration(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := f.ContinueAsGuest(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := f.PaymentSucceeded(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.SubmitContact(context.Background(), validContact()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
