package repository

import (
	"errors"

	"github.com/ecotrack/ecotrack-api/internal/database"
	"github.com/ecotrack/ecotrack-api/internal/models"
	"gorm.io/gorm"
)

// GormCalculationRepository is a GORM implementation of CalculationRepository
type GormCalculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository creates a new CalculationRepository
func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &GormCalculationRepository{db: db}
}

// Create appends a calculation snapshot
func (r *GormCalculationRepository) Create(calc *models.FootprintCalculation) error {
	return r.db.Create(calc).Error
}

// ListByUser returns calculations newest first plus the total count
func (r *GormCalculationRepository) ListByUser(userID uint64, limit, offset int) ([]models.FootprintCalculation, int64, error) {
	query := r.db.Model(&models.FootprintCalculation{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var calcs []models.FootprintCalculation
	if err := query.Order("calculation_date DESC").
		Scopes(database.Paginate(limit, offset)).
		Find(&calcs).Error; err != nil {
		return nil, 0, err
	}

	return calcs, total, nil
}

// LatestByUser returns the most recent calculation, or nil when the user has
// never calculated
func (r *GormCalculationRepository) LatestByUser(userID uint64) (*models.FootprintCalculation, error) {
	var calc models.FootprintCalculation
	err := r.db.Where("user_id = ?", userID).
		Order("calculation_date DESC").
		First(&calc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &calc, nil
}

// DeleteByIDAndUser hard-deletes an owned calculation
func (r *GormCalculationRepository) DeleteByIDAndUser(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FootprintCalculation{})
	return result.RowsAffected, result.Error
}
