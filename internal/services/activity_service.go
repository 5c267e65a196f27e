package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecotrack/ecotrack-api/internal/models"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidCategory  = errors.New("invalid category")
)

// ActivityService handles the activity ledger business logic
type ActivityService struct {
	activityRepo repository.ActivityRepository
	categoryRepo repository.CategoryRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, categoryRepo repository.CategoryRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateActivityInput represents input for logging an activity
type CreateActivityInput struct {
	UserID       uint64
	CategoryID   uint64
	Description  string
	Quantity     float64
	ActivityDate time.Time
}

// CreateActivity logs a new activity. The emission value is the quantity
// times the category's factor as it stands right now; later factor changes
// do not touch the row.
func (s *ActivityService) CreateActivity(input CreateActivityInput) (*models.Activity, error) {
	category, err := s.categoryRepo.FindByID(input.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	activity := &models.Activity{
		UserID:       input.UserID,
		CategoryID:   input.CategoryID,
		Description:  input.Description,
		Quantity:     input.Quantity,
		CO2Emissions: input.Quantity * category.EmissionFactor,
		ActivityDate: input.ActivityDate,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.activityRepo.FindByIDAndUser(activity.ID, input.UserID)
}

// UpdateActivityInput represents a partial update; nil fields are left
// unchanged.
type UpdateActivityInput struct {
	CategoryID   *uint64
	Description  *string
	Quantity     *float64
	ActivityDate *time.Time
}

// UpdateActivity applies a partial update to an owned activity.
//
// The stored emission value is recomputed only when the update carries both
// the category and the quantity; changing either one alone leaves
// co2_emissions as it was. This mirrors the historical behavior exactly.
func (s *ActivityService) UpdateActivity(userID, id uint64, input UpdateActivityInput) (*models.Activity, error) {
	activity, err := s.activityRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	var category *models.ActivityCategory
	if input.CategoryID != nil {
		category, err = s.categoryRepo.FindByID(*input.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCategory
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		// Replace the preloaded relation as well; a stale Category would
		// carry the old foreign key into the save.
		activity.CategoryID = *input.CategoryID
		activity.Category = *category
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.Quantity != nil {
		activity.Quantity = *input.Quantity
	}
	if input.ActivityDate != nil {
		activity.ActivityDate = *input.ActivityDate
	}

	if input.CategoryID != nil && input.Quantity != nil {
		activity.CO2Emissions = *input.Quantity * category.EmissionFactor
	}

	if err := s.activityRepo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return s.activityRepo.FindByIDAndUser(activity.ID, userID)
}

// DeleteActivity hard-deletes an owned activity. A row owned by another user
// is reported as not found.
func (s *ActivityService) DeleteActivity(userID, id uint64) error {
	deleted, err := s.activityRepo.DeleteByIDAndUser(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if deleted == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// ListActivities returns a page of the user's activities plus the total count.
func (s *ActivityService) ListActivities(filter repository.ActivityFilter) ([]models.Activity, int64, error) {
	activities, total, err := s.activityRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, total, nil
}

// ListCategories returns the emission category reference data.
func (s *ActivityService) ListCategories() ([]models.ActivityCategory, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
