package entities

// ServiceQuote is one priced, configured instance of a Service inside a cart.
//
// Size stays string-encoded the way the client captured it; configuration
// validation guarantees it parses to a positive number before a quote is
// built. Price is always the pricing engine's output for the other fields and
// is never edited afterwards; removal and re-add is the only mutation path.

type ServiceQuote struct {
	ServiceID string  `json:"service_id"`
	Material  string  `json:"material,omitempty"`
	Size      string  `json:"size"`
	Stories   string  `json:"stories,omitempty"`
	RoofPitch string  `json:"roof_pitch,omitempty"`
	Price     float64 `json:"price"`
}
