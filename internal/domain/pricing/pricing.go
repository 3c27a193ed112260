// Package pricing implements the quote pricing engine: a pure function from a
// catalog service plus its configuration options to a dollar amount.
package pricing

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/brightwash/booking-service/internal/domain/entities"
)

// Price computes the quote for one configured service.
//
// size is the string-encoded quantity captured from the client; material,
// stories and roofPitch are optional selectors into the service's multiplier
// tables. A selector whose key is absent from its table multiplies by 1.
//
// Configuration validation rejects a non-positive or unparseable size before
// this function is reached; the engine still clamps that case to the service
// minimum so the result is >= svc.Minimum for every input. No rounding is
// performed here; amounts are rounded at display time only.
func Price(svc entities.Service, size, material, stories, roofPitch string) float64 {
	qty, err := strconv.ParseFloat(size, 64)
	if err != nil || qty <= 0 {
		return svc.Minimum
	}

	price := svc.BaseRate * qty

	if material != "" && svc.MaterialMultipliers != nil {
		price *= multiplier(svc.MaterialMultipliers, material)
	}
	if stories != "" && svc.StoryMultipliers != nil {
		price *= multiplier(svc.StoryMultipliers, stories)
	}
	if roofPitch != "" && svc.RoofPitchMultipliers != nil {
		price *= multiplier(svc.RoofPitchMultipliers, roofPitch)
	}

	if price < svc.Minimum {
		return svc.Minimum
	}
	return price
}

func multiplier(table map[string]float64, key string) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as a US dollar string, e.g. "$1,234.56".
func FormatPrice(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}
