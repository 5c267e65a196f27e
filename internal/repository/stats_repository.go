package repository

import (
	"github.com/ecotrack/ecotrack-api/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// Overview returns ledger-wide totals for a user
func (r *GormStatsRepository) Overview(userID uint64) (*OverviewStats, error) {
	var stats OverviewStats
	err := r.db.Model(&models.Activity{}).
		Select(`COUNT(*) AS total_activities,
			COALESCE(SUM(co2_emissions), 0) AS total_emissions,
			COALESCE(AVG(co2_emissions), 0) AS avg_emissions,
			MIN(activity_date) AS first_activity,
			MAX(activity_date) AS last_activity`).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Monthly returns per-month emission totals, newest first. DATE_TRUNC is
// Postgres SQL; this query has no sqlite equivalent.
func (r *GormStatsRepository) Monthly(userID uint64, months int) ([]MonthlyStat, error) {
	var stats []MonthlyStat
	err := r.db.Raw(`
		SELECT
			DATE_TRUNC('month', activity_date) AS month,
			SUM(co2_emissions) AS monthly_emissions,
			COUNT(*) AS monthly_activities
		FROM activities
		WHERE user_id = ?
		GROUP BY DATE_TRUNC('month', activity_date)
		ORDER BY month DESC
		LIMIT ?`, userID, months).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ByCategory returns per-category emission totals, largest first
func (r *GormStatsRepository) ByCategory(userID uint64) ([]CategoryStat, error) {
	var stats []CategoryStat
	err := r.db.Raw(`
		SELECT
			ac.name AS category,
			SUM(a.co2_emissions) AS total_emissions,
			COUNT(*) AS activity_count
		FROM activities a
		JOIN activity_categories ac ON a.category_id = ac.id
		WHERE a.user_id = ?
		GROUP BY ac.name
		ORDER BY total_emissions DESC`, userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
