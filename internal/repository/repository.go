package repository

import (
	"time"

	"github.com/ecotrack/ecotrack-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// CategoryRepository defines the interface for emission category data access
type CategoryRepository interface {
	// List returns all categories ordered by name
	List() ([]models.ActivityCategory, error)

	// FindByID finds a category by ID
	FindByID(id uint64) (*models.ActivityCategory, error)
}

// ActivityFilter holds filtering options for listing activities. All present
// filters are ANDed together.
type ActivityFilter struct {
	UserID     uint64
	CategoryID *uint64
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	Page       int
	PageSize   int
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create creates a new activity
	Create(activity *models.Activity) error

	// FindByIDAndUser finds an activity by ID scoped to its owner. A row
	// owned by someone else is indistinguishable from a missing row.
	FindByIDAndUser(id, userID uint64) (*models.Activity, error)

	// List retrieves activities with filtering and pagination, newest
	// activity date first, plus the total matching count.
	List(filter ActivityFilter) ([]models.Activity, int64, error)

	// Update updates an activity
	Update(activity *models.Activity) error

	// DeleteByIDAndUser hard-deletes an owned activity, returning the number
	// of rows removed.
	DeleteByIDAndUser(id, userID uint64) (int64, error)
}

// CalculationRepository defines the interface for footprint calculation data access
type CalculationRepository interface {
	// Create appends a calculation snapshot
	Create(calc *models.FootprintCalculation) error

	// ListByUser returns calculations newest first plus the total count
	ListByUser(userID uint64, limit, offset int) ([]models.FootprintCalculation, int64, error)

	// LatestByUser returns the most recent calculation, or nil when the
	// user has never calculated
	LatestByUser(userID uint64) (*models.FootprintCalculation, error)

	// DeleteByIDAndUser hard-deletes an owned calculation, returning the
	// number of rows removed
	DeleteByIDAndUser(id, userID uint64) (int64, error)
}

// OverviewStats summarizes a user's activity ledger.
type OverviewStats struct {
	TotalActivities int64      `json:"total_activities"`
	TotalEmissions  float64    `json:"total_emissions"`
	AvgEmissions    float64    `json:"avg_emissions"`
	FirstActivity   *time.Time `json:"first_activity"`
	LastActivity    *time.Time `json:"last_activity"`
}

// MonthlyStat is one month's emission total.
type MonthlyStat struct {
	Month             time.Time `json:"month"`
	MonthlyEmissions  float64   `json:"monthly_emissions"`
	MonthlyActivities int64     `json:"monthly_activities"`
}

// CategoryStat is one category's emission total.
type CategoryStat struct {
	Category       string  `json:"category"`
	TotalEmissions float64 `json:"total_emissions"`
	ActivityCount  int64   `json:"activity_count"`
}

// StatsRepository defines the interface for reporting aggregations
type StatsRepository interface {
	// Overview returns ledger-wide totals for a user
	Overview(userID uint64) (*OverviewStats, error)

	// Monthly returns per-month emission totals, newest first
	Monthly(userID uint64, months int) ([]MonthlyStat, error)

	// ByCategory returns per-category emission totals, largest first
	ByCategory(userID uint64) ([]CategoryStat, error)
}
