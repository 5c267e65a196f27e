package dto

import (
	"time"

	"github.com/ecotrack/ecotrack-api/internal/carbon"
	"github.com/ecotrack/ecotrack-api/internal/models"
)

// FootprintBreakdownDTO is the per-source CO2 breakdown, tons/year, rounded
// to 3 decimals for display.
type FootprintBreakdownDTO struct {
	Transport   float64 `json:"transport"`
	Electricity float64 `json:"electricity"`
	Diet        float64 `json:"diet"`
	Flights     float64 `json:"flights"`
	Waste       float64 `json:"waste"`
}

// FootprintInputsDTO echoes the raw lifestyle inputs back to the caller.
type FootprintInputsDTO struct {
	Transport   float64 `json:"transport"`
	Electricity float64 `json:"electricity"`
	Diet        float64 `json:"diet"`
	Flights     float64 `json:"flights"`
	Waste       float64 `json:"waste"`
}

// CalculationDTO represents a footprint calculation in API responses
type CalculationDTO struct {
	ID              uint64                `json:"id"`
	TotalCO2        float64               `json:"totalCO2"`
	Breakdown       FootprintBreakdownDTO `json:"breakdown"`
	Inputs          FootprintInputsDTO    `json:"inputs"`
	CalculationDate time.Time             `json:"calculationDate"`
}

// ToCalculationDTO converts a FootprintCalculation to CalculationDTO. Stored
// values are unrounded; display rounding happens here, and the total is
// rounded from the true sum rather than re-summed from rounded parts.
func ToCalculationDTO(calc models.FootprintCalculation) CalculationDTO {
	return CalculationDTO{
		ID:       calc.ID,
		TotalCO2: carbon.Round3(calc.TotalCO2Tons),
		Breakdown: FootprintBreakdownDTO{
			Transport:   carbon.Round3(calc.TransportCO2),
			Electricity: carbon.Round3(calc.ElectricityCO2),
			Diet:        carbon.Round3(calc.DietCO2),
			Flights:     carbon.Round3(calc.FlightsCO2),
			Waste:       carbon.Round3(calc.WasteCO2),
		},
		Inputs: FootprintInputsDTO{
			Transport:   calc.TransportKmDaily,
			Electricity: calc.ElectricityKwhMonthly,
			Diet:        calc.DietType,
			Flights:     calc.FlightsYearly,
			Waste:       calc.WasteKgWeekly,
		},
		CalculationDate: calc.CalculationDate,
	}
}

// HistoryPaginationDTO is the limit/offset pagination block for history
// responses.
type HistoryPaginationDTO struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ToCalculationDTOs converts a slice of calculations
func ToCalculationDTOs(calcs []models.FootprintCalculation) []CalculationDTO {
	items := make([]CalculationDTO, len(calcs))
	for i, calc := range calcs {
		items[i] = ToCalculationDTO(calc)
	}
	return items
}
