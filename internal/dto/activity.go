package dto

import (
	"time"

	"github.com/ecotrack/ecotrack-api/internal/models"
	"github.com/ecotrack/ecotrack-api/internal/utils"
)

// ActivityDTO represents a logged activity in API responses
type ActivityDTO struct {
	ID           uint64    `json:"id"`
	CategoryID   uint64    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Description  string    `json:"description"`
	Quantity     float64   `json:"quantity"`
	CO2Emissions float64   `json:"co2_emissions"`
	ActivityDate string    `json:"activity_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ActivityListResponse represents a paginated list of activities
type ActivityListResponse struct {
	Activities []ActivityDTO            `json:"activities"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToActivityDTO converts an Activity model to ActivityDTO
func ToActivityDTO(activity models.Activity) ActivityDTO {
	dto := ActivityDTO{
		ID:           activity.ID,
		CategoryID:   activity.CategoryID,
		Description:  activity.Description,
		Quantity:     activity.Quantity,
		CO2Emissions: activity.CO2Emissions,
		ActivityDate: activity.ActivityDate.Format("2006-01-02"),
		CreatedAt:    activity.CreatedAt,
		UpdatedAt:    activity.UpdatedAt,
	}

	// Include category if preloaded
	if activity.Category.ID != 0 {
		dto.CategoryName = activity.Category.Name
		dto.Unit = activity.Category.Unit
	}

	return dto
}

// ToActivityListResponse converts a page of activities to ActivityListResponse
func ToActivityListResponse(activities []models.Activity, page, limit int, total int64) ActivityListResponse {
	items := make([]ActivityDTO, len(activities))
	for i, activity := range activities {
		items[i] = ToActivityDTO(activity)
	}

	return ActivityListResponse{
		Activities: items,
		Pagination: utils.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: utils.TotalPages(total, limit),
		},
	}
}
