package repository

import (
	"github.com/ecotrack/ecotrack-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List returns all categories ordered by name
func (r *GormCategoryRepository) List() ([]models.ActivityCategory, error) {
	var categories []models.ActivityCategory
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(id uint64) (*models.ActivityCategory, error) {
	var category models.ActivityCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
