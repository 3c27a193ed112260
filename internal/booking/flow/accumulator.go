package flow

import (
	"errors"

	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
)

var ErrIndexOutOfRange = errors.New("quote index out of range")

// Accumulator is the ordered list of priced line items building up a cart.
// Items are appended as configured (no de-duplication: the same service may
// appear twice with different configurations) and removal by position is the
// only edit. Prices were computed once at add time and are trusted here; the
// accumulator never re-prices.
type Accumulator struct {
	quotes []entities.ServiceQuote
}

func (a *Accumulator) Add(q entities.ServiceQuote) {
	a.quotes = append(a.quotes, q)
}

func (a *Accumulator) Remove(i int) error {
	if i < 0 || i >= len(a.quotes) {
		return ErrIndexOutOfRange
	}
	a.quotes = append(a.quotes[:i], a.quotes[i+1:]...)
	return nil
}

func (a *Accumulator) Len() int { return len(a.quotes) }

// Quotes returns a copy in insertion order.
func (a *Accumulator) Quotes() []entities.ServiceQuote {
	out := make([]entities.ServiceQuote, len(a.quotes))
	copy(out, a.quotes)
	return out
}

// Total sums the line items. The sum only counts as fundable once it reaches
// the catalog-wide minimum floor; below that the second return is false so
// callers can tell "no items / below minimum" apart from a real total.
func (a *Accumulator) Total() (float64, bool) {
	var sum float64
	for _, q := range a.quotes {
		sum += q.Price
	}
	if sum < catalog.MinimumFloor() {
		return 0, false
	}
	return sum, true
}
