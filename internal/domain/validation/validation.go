// Package validation holds the declarative validation rules applied at each
// guarded flow transition. Every rule set produces a Result: either valid, or
// a field-to-message map the caller renders next to the offending inputs.
// Validation failures never escape as Go errors and never cause a transition.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

// Result is the outcome of a rule set. A nil/empty Fields map means valid.
type Result struct {
	Fields map[string]string
}

func (r Result) Valid() bool { return len(r.Fields) == 0 }

func (r Result) add(field, message string) Result {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[field] = message
	return r
}

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// ServiceConfig is the raw configuration captured for one selected service
// before it becomes a priced quote.
type ServiceConfig struct {
	Material  string
	Size      string
	Stories   string
	RoofPitch string
}

// ServiceDetails validates a service configuration against its catalog entry:
// size must parse to a positive number, a material is required when the
// service says so, stories must be one of the fixed enumeration when the
// service carries a story table, and the pitch tier must be known when the
// service carries a pitch table.
func ServiceDetails(svc entities.Service, cfg ServiceConfig) Result {
	var res Result

	size := strings.TrimSpace(cfg.Size)
	if size == "" {
		res = res.add("size", "Size is required")
	} else if n, err := strconv.ParseFloat(size, 64); err != nil || n <= 0 {
		res = res.add("size", "Size must be a positive number")
	}

	if svc.MaterialRequired && strings.TrimSpace(cfg.Material) == "" {
		res = res.add("material", "Material is required")
	}
	if cfg.Material != "" && svc.MaterialMultipliers != nil {
		if _, ok := svc.MaterialMultipliers[cfg.Material]; !ok {
			res = res.add("material", "Unknown material")
		}
	}

	if svc.StoryMultipliers != nil && cfg.Stories != "" {
		if _, ok := svc.StoryMultipliers[cfg.Stories]; !ok {
			res = res.add("stories", "Stories must be 1, 2 or 3")
		}
	}

	if svc.RoofPitchMultipliers != nil && cfg.RoofPitch != "" {
		if _, ok := svc.RoofPitchMultipliers[cfg.RoofPitch]; !ok {
			res = res.add("roof_pitch", "Unknown roof pitch")
		}
	}

	return res
}

// Contact validates the contact/address record submitted on the contact step.
func Contact(c entities.ContactInfo) Result {
	var res Result

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		res = res.add("email", "Email is required")
	case !emailPattern.MatchString(email):
		res = res.add("email", "Invalid email address")
	}

	if phone := strings.TrimSpace(c.Phone); phone != "" && !phonePattern.MatchString(phone) {
		res = res.add("phone", "Invalid phone number")
	}

	if strings.TrimSpace(c.Address) == "" {
		res = res.add("address", "Address is required")
	}
	if strings.TrimSpace(c.City) == "" {
		res = res.add("city", "City is required")
	}
	if strings.TrimSpace(c.State) == "" {
		res = res.add("state", "State is required")
	}
	if zip := strings.TrimSpace(c.Zip); zip == "" {
		res = res.add("zip", "ZIP code is required")
	} else if len(zip) < 5 {
		res = res.add("zip", "ZIP code must be at least 5 characters")
	}

	return res
}
