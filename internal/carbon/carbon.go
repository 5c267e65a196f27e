package carbon

import (
	"errors"
	"math"
)

// Diet presets, in tons CO2/year. The calculator does not enforce these;
// diet is passed through as supplied and the UI offers the presets.
const (
	DietVegan      = 1.0
	DietVegetarian = 1.5
	DietMixed      = 2.5
	DietHighMeat   = 3.5
)

// Emission factors (approximate values).
const (
	transportKgPerKm       = 0.2    // kg CO2 per km driven
	electricityTonsPerKwh  = 0.0007 // tons CO2 per kWh
	flightTonsPerRoundTrip = 0.25   // tons CO2 per round-trip flight
	wasteTonsPerKg         = 0.001  // tons CO2 per kg of waste

	daysPerYear   = 365
	monthsPerYear = 12
	weeksPerYear  = 52
)

// ErrNegativeInput is returned when transport, electricity, flights or waste
// is negative. Diet is deliberately not range-checked.
var ErrNegativeInput = errors.New("values cannot be negative")

// Inputs are the five raw lifestyle quantities.
type Inputs struct {
	Transport   float64 // average daily distance traveled, km/day
	Electricity float64 // average monthly consumption, kWh/month
	Diet        float64 // annual dietary CO2, tons/year, supplied directly
	Flights     float64 // round-trip flights in the past year
	Waste       float64 // average weekly household waste, kg/week
}

// Result holds the per-source breakdown and the total, all in tons CO2/year
// and all unrounded. Display rounding is applied separately with Round3 so
// the reported total is rounded from the true sum rather than summed from
// rounded components.
type Result struct {
	Transport   float64
	Electricity float64
	Diet        float64
	Flights     float64
	Waste       float64
	Total       float64
}

// Calculate converts the five lifestyle inputs into an annual CO2 estimate.
func Calculate(in Inputs) (Result, error) {
	if in.Transport < 0 || in.Electricity < 0 || in.Flights < 0 || in.Waste < 0 {
		return Result{}, ErrNegativeInput
	}

	r := Result{
		Transport:   in.Transport * transportKgPerKm * daysPerYear / 1000,
		Electricity: in.Electricity * monthsPerYear * electricityTonsPerKwh,
		Diet:        in.Diet,
		Flights:     in.Flights * flightTonsPerRoundTrip,
		Waste:       in.Waste * weeksPerYear * wasteTonsPerKg,
	}
	r.Total = r.Transport + r.Electricity + r.Diet + r.Flights + r.Waste

	return r, nil
}

// Round3 rounds to 3 decimal places, half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
