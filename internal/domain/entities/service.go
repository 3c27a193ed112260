package entities

// Service is a catalog entry describing one purchasable offering and the
// inputs to its pricing rule.
//
// Domain notes:
//   - The catalog is defined statically at process start and never mutated.
//   - Multiplier tables are optional; a missing table, or a missing key in a
//     present table, behaves exactly like a multiplier of 1.
//   - BaseRate is charged per Unit ("sqft" or "ft"); Minimum is the floor the
//     pricing engine never goes below.

type Service struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Unit             string  `json:"unit"`
	BaseRate         float64 `json:"base_rate"`
	Minimum          float64 `json:"minimum"`
	MaterialRequired bool    `json:"material_required"`

	MaterialMultipliers  map[string]float64 `json:"material_multipliers,omitempty"`
	StoryMultipliers     map[string]float64 `json:"story_multipliers,omitempty"`
	RoofPitchMultipliers map[string]float64 `json:"roof_pitch_multipliers,omitempty"`
}
