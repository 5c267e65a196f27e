package models

import (
	"time"
)

// FootprintCalculation is an immutable snapshot of one full-footprint
// submission: the five raw lifestyle inputs, the five derived CO2 values and
// the total, all in tons CO2/year. Rows are only ever created, read and
// deleted.
type FootprintCalculation struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"user_id"`

	TransportKmDaily      float64 `gorm:"not null" json:"transport_km_daily"`
	ElectricityKwhMonthly float64 `gorm:"not null" json:"electricity_kwh_monthly"`
	DietType              float64 `gorm:"not null" json:"diet_type"`
	FlightsYearly         float64 `gorm:"not null" json:"flights_yearly"`
	WasteKgWeekly         float64 `gorm:"not null" json:"waste_kg_weekly"`

	TransportCO2   float64 `gorm:"column:transport_co2;not null" json:"transport_co2"`
	ElectricityCO2 float64 `gorm:"column:electricity_co2;not null" json:"electricity_co2"`
	DietCO2        float64 `gorm:"column:diet_co2;not null" json:"diet_co2"`
	FlightsCO2     float64 `gorm:"column:flights_co2;not null" json:"flights_co2"`
	WasteCO2       float64 `gorm:"column:waste_co2;not null" json:"waste_co2"`
	TotalCO2Tons   float64 `gorm:"column:total_co2_tons;not null" json:"total_co2_tons"`

	CalculationDate time.Time `gorm:"not null;index" json:"calculation_date"`
}

func (FootprintCalculation) TableName() string {
	return "carbon_footprint_calculations"
}
