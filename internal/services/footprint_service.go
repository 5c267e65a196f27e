package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecotrack/ecotrack-api/internal/carbon"
	"github.com/ecotrack/ecotrack-api/internal/models"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"go.uber.org/zap"
)

var ErrCalculationNotFound = errors.New("carbon footprint calculation not found")

// FootprintService runs full-footprint calculations and manages their
// append-only history.
type FootprintService struct {
	calcRepo repository.CalculationRepository
}

// NewFootprintService creates a new FootprintService
func NewFootprintService(calcRepo repository.CalculationRepository) *FootprintService {
	return &FootprintService{
		calcRepo: calcRepo,
	}
}

// Calculate converts the lifestyle inputs to an annual estimate and persists
// the snapshot. Validation failures and store failures both leave nothing
// written.
func (s *FootprintService) Calculate(userID uint64, inputs carbon.Inputs) (*models.FootprintCalculation, error) {
	result, err := carbon.Calculate(inputs)
	if err != nil {
		return nil, err
	}

	calc := &models.FootprintCalculation{
		UserID:                userID,
		TransportKmDaily:      inputs.Transport,
		ElectricityKwhMonthly: inputs.Electricity,
		DietType:              inputs.Diet,
		FlightsYearly:         inputs.Flights,
		WasteKgWeekly:         inputs.Waste,
		TransportCO2:          result.Transport,
		ElectricityCO2:        result.Electricity,
		DietCO2:               result.Diet,
		FlightsCO2:            result.Flights,
		WasteCO2:              result.Waste,
		TotalCO2Tons:          result.Total,
		CalculationDate:       time.Now(),
	}

	if err := s.calcRepo.Create(calc); err != nil {
		zap.L().Error("Failed to persist footprint calculation",
			zap.Uint64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}

	return calc, nil
}

// History returns past calculations newest first plus the total count.
func (s *FootprintService) History(userID uint64, limit, offset int) ([]models.FootprintCalculation, int64, error) {
	calcs, total, err := s.calcRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calcs, total, nil
}

// Latest returns the most recent calculation, or nil when there is none.
func (s *FootprintService) Latest(userID uint64) (*models.FootprintCalculation, error) {
	calc, err := s.calcRepo.LatestByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest calculation: %w", err)
	}
	return calc, nil
}

// Delete removes an owned calculation. A row owned by another user is
// reported as not found.
func (s *FootprintService) Delete(userID, id uint64) error {
	deleted, err := s.calcRepo.DeleteByIDAndUser(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}
	if deleted == 0 {
		return ErrCalculationNotFound
	}
	return nil
}
