package pricing

import (
	"math"
	"testing"

	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPrice(t *testing.T) {
	cases := []struct {
		name      string
		serviceID string
		size      string
		material  string
		stories   string
		roofPitch string
		want      float64
	}{
		{"concrete floor applies", "concrete", "500", "", "", "", 199},
		{"concrete above floor", "concrete", "1000", "", "", "", 250},
		{"house stucco two stories", "house", "2000", "stucco", "2", "", 900},
		{"house vinyl single story", "house", "2000", "vinyl", "1", "", 400},
		{"roof tile high pitch", "roof", "1000", "tile", "", "high pitch", 742.5},
		{"gutter below minimum", "gutter", "100", "", "1", "", 199},
		{"gutter three stories", "gutter", "150", "", "3", "", 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := catalog.ByID(tc.serviceID)
			if err != nil {
				t.Fatalf("catalog lookup failed: %v", err)
			}
			got := Price(svc, tc.size, tc.material, tc.stories, tc.roofPitch)
			if !approx(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestPriceNeverBelowMinimum(t *testing.T) {
	for _, svc := range catalog.All() {
		for _, size := range []string{"1", "50", "500", "5000", "100000"} {
			got := Price(svc, size, "", "", "")
			if got < svc.Minimum {
				t.Fatalf("%s size %s priced %v below minimum %v", svc.ID, size, got, svc.Minimum)
			}
		}
	}
}

func TestPriceUnknownMultiplierKeyBehavesAsOne(t *testing.T) {
	house, _ := catalog.ByID("house")
	plain := Price(house, "2000", "", "", "")
	unknown := Price(house, "2000", "adobe", "7", "vertical")
	if !approx(plain, unknown) {
		t.Fatalf("unknown keys must price as 1x: %v vs %v", plain, unknown)
	}
}

func TestPriceMalformedSizeClampsToMinimum(t *testing.T) {
	svc := entities.Service{ID: "x", BaseRate: 2, Minimum: 150}
	for _, size := range []string{"", "abc", "-10", "0"} {
		if got := Price(svc, size, "", "", ""); got != 150 {
			t.Fatalf("size %q: expected minimum 150, got %v", size, got)
		}
	}
}

func TestPriceIsDeterministic(t *testing.T) {
	roof, _ := catalog.ByID("roof")
	first := Price(roof, "1234.5", "steel", "", "medium pitch")
	for i := 0; i < 10; i++ {
		if got := Price(roof, "1234.5", "steel", "", "medium pitch"); got != first {
			t.Fatalf("expected %v on call %d, got %v", first, i, got)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{199, "$199.00"},
		{742.5, "$742.50"},
		{1234.56, "$1,234.56"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Fatalf("expected %q got %q", tc.want, got)
		}
	}
}
