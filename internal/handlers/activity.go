package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecotrack/ecotrack-api/internal/dto"
	apierrors "github.com/ecotrack/ecotrack-api/internal/errors"
	"github.com/ecotrack/ecotrack-api/internal/middleware"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"github.com/ecotrack/ecotrack-api/internal/services"
	"github.com/ecotrack/ecotrack-api/internal/utils"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ActivityHandler coordinates activity ledger HTTP handlers.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivities returns the user's activities, filtered and paginated.
// Filters (category, startDate, endDate) compose with AND semantics.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	filter := repository.ActivityFilter{
		UserID:   userID,
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid category filter")
			return
		}
		filter.CategoryID = &categoryID
	}
	if startStr := c.Query("startDate"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		filter.StartDate = &start
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		filter.EndDate = &end
	}

	activities, total, err := h.activityService.ListActivities(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to get activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityListResponse(activities, params.Page, params.Limit, total))
}

// CreateActivity logs a new activity.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateActivityRequest struct {
		CategoryID   uint64  `json:"categoryId" binding:"required"`
		Description  string  `json:"description"`
		Quantity     float64 `json:"quantity" binding:"required"`
		ActivityDate string  `json:"activityDate" binding:"required"`
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Category, quantity, and date are required")
		return
	}

	activityDate, err := time.Parse(dateLayout, req.ActivityDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activityDate, expected YYYY-MM-DD")
		return
	}

	activity, err := h.activityService.CreateActivity(services.CreateActivityInput{
		UserID:       userID,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		Quantity:     req.Quantity,
		ActivityDate: activityDate,
	})
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Activity created successfully",
		"activity": dto.ToActivityDTO(*activity),
	})
}

// UpdateActivity applies a partial update to an owned activity.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activity id")
		return
	}

	type UpdateActivityRequest struct {
		CategoryID   *uint64  `json:"categoryId"`
		Description  *string  `json:"description"`
		Quantity     *float64 `json:"quantity"`
		ActivityDate *string  `json:"activityDate"`
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateActivityInput{
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Quantity:    req.Quantity,
	}
	if req.ActivityDate != nil {
		activityDate, err := time.Parse(dateLayout, *req.ActivityDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid activityDate, expected YYYY-MM-DD")
			return
		}
		input.ActivityDate = &activityDate
	}

	activity, err := h.activityService.UpdateActivity(userID, id, input)
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Activity updated successfully",
		"activity": dto.ToActivityDTO(*activity),
	})
}

// DeleteActivity hard-deletes an owned activity.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activity id")
		return
	}

	if err := h.activityService.DeleteActivity(userID, id); err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity deleted successfully",
	})
}

// ListCategories returns the emission category reference data.
func (h *ActivityHandler) ListCategories(c *gin.Context) {
	categories, err := h.activityService.ListCategories()
	if err != nil {
		apierrors.InternalError(c, "Failed to get categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func respondActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		apierrors.NotFound(c, "Activity not found")
	case errors.Is(err, services.ErrInvalidCategory):
		apierrors.InvalidCategory(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
