package request

import "testing"

func TestCreateBookingRequest_ToQuotes(t *testing.T) {
	req := CreateBookingRequest{
		Services: []ServiceQuoteRequest{
			{ServiceID: "house", Material: "brick", Size: "1500", Stories: "2"},
			{ServiceID: "concrete", Size: "800"},
		},
	}

	quotes := req.ToQuotes()
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].ServiceID != "house" || quotes[0].Material != "brick" || quotes[0].Stories != "2" {
		t.Fatalf("unexpected quote: %+v", quotes[0])
	}
	if quotes[1].ServiceID != "concrete" || quotes[1].Size != "800" {
		t.Fatalf("unexpected quote: %+v", quotes[1])
	}
	if quotes[0].Price != 0 {
		t.Fatalf("request quotes must not carry a price, got %v", quotes[0].Price)
	}
}

func TestContactRequest_ToEntity(t *testing.T) {
	req := ContactRequest{
		Email:   "jane@example.com",
		Phone:   "+15551234567",
		Address: "123 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62704",
	}

	c := req.ToEntity()
	if c.Email != req.Email || c.Zip != req.Zip || c.Address != req.Address {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

func TestServiceQuoteRequest_ToServiceConfig(t *testing.T) {
	req := ServiceQuoteRequest{ServiceID: "roof", Material: "tile", Size: "900", RoofPitch: "high"}
	cfg := req.ToServiceConfig()
	if cfg.Material != "tile" || cfg.Size != "900" || cfg.RoofPitch != "high" || cfg.Stories != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
