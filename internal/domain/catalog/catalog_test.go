package catalog

import (
	"errors"
	"testing"
)

func TestByID(t *testing.T) {
	for _, id := range []string{"concrete", "house", "roof", "gutter"} {
		s, err := ByID(id)
		if err != nil {
			t.Fatalf("expected %s in catalog, got %v", id, err)
		}
		if s.BaseRate <= 0 {
			t.Fatalf("expected positive base rate for %s, got %v", id, s.BaseRate)
		}
		if s.Minimum < 0 {
			t.Fatalf("expected non-negative minimum for %s, got %v", id, s.Minimum)
		}
	}

	_, err := ByID("window")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestMinimumFloor(t *testing.T) {
	if got := MinimumFloor(); got != 199 {
		t.Fatalf("expected floor 199, got %v", got)
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 services, got %d", len(all))
	}
	all[0].BaseRate = 999
	again, _ := ByID(all[0].ID)
	if again.BaseRate == 999 {
		t.Fatalf("catalog must not be mutable through All()")
	}
}

func TestMaterialRequiredFlags(t *testing.T) {
	house, _ := ByID("house")
	if !house.MaterialRequired || house.MaterialMultipliers == nil {
		t.Fatalf("house must require a material selection")
	}
	concrete, _ := ByID("concrete")
	if concrete.MaterialRequired {
		t.Fatalf("concrete must not require a material selection")
	}
	roof, _ := ByID("roof")
	if roof.RoofPitchMultipliers == nil {
		t.Fatalf("roof must carry pitch multipliers")
	}
}
