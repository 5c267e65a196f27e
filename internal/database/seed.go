package database

import (
	"fmt"

	"github.com/ecotrack/ecotrack-api/internal/models"
	"go.uber.org/zap"
)

// defaultCategories is the reference data the ledger computes against.
// Factors are kg CO2 per unit.
var defaultCategories = []models.ActivityCategory{
	{Name: "Car Travel", Description: "Driving a petrol or diesel car", EmissionFactor: 0.21, Unit: "km"},
	{Name: "Public Transport", Description: "Bus, train or tram journeys", EmissionFactor: 0.05, Unit: "km"},
	{Name: "Air Travel", Description: "Commercial flights", EmissionFactor: 0.15, Unit: "km"},
	{Name: "Electricity", Description: "Household electricity consumption", EmissionFactor: 0.5, Unit: "kWh"},
	{Name: "Natural Gas", Description: "Household gas for heating and cooking", EmissionFactor: 2.0, Unit: "m3"},
	{Name: "Meat Meal", Description: "Meals containing red meat", EmissionFactor: 3.0, Unit: "meal"},
	{Name: "Vegetarian Meal", Description: "Meals without meat", EmissionFactor: 0.5, Unit: "meal"},
	{Name: "Household Waste", Description: "General waste sent to landfill", EmissionFactor: 0.7, Unit: "kg"},
}

// SeedCategories inserts the default emission categories when the table is
// empty. Existing rows are never modified; factor changes must not rewrite
// history.
func SeedCategories() error {
	var count int64
	if err := DB.Model(&models.ActivityCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := DB.Create(&defaultCategories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	zap.L().Info("Seeded activity categories", zap.Int("count", len(defaultCategories)))
	return nil
}
