// Package catalog holds the static service catalog. The catalog is built once
// at init into a typed map so lookups are O(1) and a miss is an explicit
// not-found instead of a silently propagating zero value.
package catalog

import (
	"errors"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

var ErrServiceNotFound = errors.New("service not found")

// Building-exterior and roof material multipliers. Keys missing from these
// tables price at 1x.
var (
	buildingMaterials = map[string]float64{
		"vinyl":  1.0,
		"brick":  1.3,
		"stucco": 1.5,
	}
	roofMaterials = map[string]float64{
		"asphalt shingles": 1.0,
		"steel":            1.2,
		"tile":             1.5,
	}
	storyMultipliers = map[string]float64{
		"1": 1.0,
		"2": 1.5,
		"3": 2.0,
	}
	roofPitchMultipliers = map[string]float64{
		"low pitch":    1.0,
		"medium pitch": 1.2,
		"high pitch":   1.5,
	}
)

var services = []entities.Service{
	{
		ID:          "concrete",
		Name:        "Concrete Cleaning",
		Description: "Professional concrete cleaning for driveways, patios, and walkways",
		Unit:        "sqft",
		BaseRate:    0.25,
		Minimum:     199,
	},
	{
		ID:                  "house",
		Name:                "House Cleaning",
		Description:         "Exterior house washing to remove dirt, mold, and mildew",
		Unit:                "sqft",
		BaseRate:            0.20,
		Minimum:             299,
		MaterialRequired:    true,
		MaterialMultipliers: buildingMaterials,
		StoryMultipliers:    storyMultipliers,
	},
	{
		ID:                   "roof",
		Name:                 "Roof Cleaning",
		Description:          "Safe and effective roof cleaning to remove stains and algae",
		Unit:                 "sqft",
		BaseRate:             0.33,
		Minimum:              299,
		MaterialRequired:     true,
		MaterialMultipliers:  roofMaterials,
		RoofPitchMultipliers: roofPitchMultipliers,
	},
	{
		ID:               "gutter",
		Name:             "Gutter Cleaning",
		Description:      "Complete gutter cleaning and maintenance",
		Unit:             "ft",
		BaseRate:         1.0,
		Minimum:          199,
		StoryMultipliers: storyMultipliers,
	},
}

var (
	byID         map[string]entities.Service
	minimumFloor float64
)

func init() {
	byID = make(map[string]entities.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
		if minimumFloor == 0 || s.Minimum < minimumFloor {
			minimumFloor = s.Minimum
		}
	}
}

// All returns the catalog in display order.
func All() []entities.Service {
	out := make([]entities.Service, len(services))
	copy(out, services)
	return out
}

// ByID resolves a service by its stable identifier.
func ByID(id string) (entities.Service, error) {
	s, ok := byID[id]
	if !ok {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// MinimumFloor is the smallest minimum charge across the catalog. A cart
// total below this floor is not fundable.
func MinimumFloor() float64 {
	return minimumFloor
}
