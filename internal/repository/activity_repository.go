package repository

import (
	"github.com/ecotrack/ecotrack-api/internal/database"
	"github.com/ecotrack/ecotrack-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create creates a new activity
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// FindByIDAndUser finds an activity by ID scoped to its owner
func (r *GormActivityRepository) FindByIDAndUser(id, userID uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Category").
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities with filtering and pagination. Present filters
// compose as AND conditions on one query; absent filters add nothing.
func (r *GormActivityRepository) List(filter ActivityFilter) ([]models.Activity, int64, error) {
	query := r.db.Model(&models.Activity{}).Where("activities.user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("activities.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("activities.activity_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("activities.activity_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("activities.activity_date DESC, activities.created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Scopes(database.Paginate(filter.PageSize, offset))
	}

	var activities []models.Activity
	if err := listQuery.Preload("Category").Find(&activities).Error; err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// Update updates an activity. Categories are reference data; saving an
// activity must never write through the preloaded relation.
func (r *GormActivityRepository) Update(activity *models.Activity) error {
	return r.db.Omit(clause.Associations).Save(activity).Error
}

// DeleteByIDAndUser hard-deletes an owned activity
func (r *GormActivityRepository) DeleteByIDAndUser(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Activity{})
	return result.RowsAffected, result.Error
}
