package response

import (
	"sort"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
)

// ServiceResponse is the catalog entry as served to clients: multiplier
// tables flattened into sorted option lists so UIs can render selectors
// without knowing the rates.
type ServiceResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Unit             string   `json:"unit"`
	BaseRate         float64  `json:"base_rate"`
	Minimum          float64  `json:"minimum"`
	FormattedMinimum string   `json:"formatted_minimum"`
	MaterialRequired bool     `json:"material_required"`
	Materials        []string `json:"materials,omitempty"`
	Stories          []string `json:"stories,omitempty"`
	RoofPitches      []string `json:"roof_pitches,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Unit:             s.Unit,
		BaseRate:         s.BaseRate,
		Minimum:          s.Minimum,
		FormattedMinimum: pricing.FormatPrice(s.Minimum),
		MaterialRequired: s.MaterialRequired,
		Materials:        sortedKeys(s.MaterialMultipliers),
		Stories:          sortedKeys(s.StoryMultipliers),
		RoofPitches:      sortedKeys(s.RoofPitchMultipliers),
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
