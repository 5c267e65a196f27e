package handlers

import (
	"net/http"

	"github.com/ecotrack/ecotrack-api/internal/constants"
	"github.com/ecotrack/ecotrack-api/internal/dto"
	apierrors "github.com/ecotrack/ecotrack-api/internal/errors"
	"github.com/ecotrack/ecotrack-api/internal/middleware"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"github.com/ecotrack/ecotrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile and reporting endpoints.
type UserHandler struct {
	authService *services.AuthService
	statsRepo   repository.StatsRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, statsRepo repository.StatsRepository) *UserHandler {
	return &UserHandler{
		authService: authService,
		statsRepo:   statsRepo,
	}
}

// Profile returns the authenticated user's profile.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(*user)})
}

// UpdateProfile changes the user's display names.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "First name and last name are required")
		return
	}

	user, err := h.authService.UpdateProfile(userID, req.FirstName, req.LastName)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

// Stats returns overall, monthly and per-category emission aggregates for
// the user's activity ledger.
func (h *UserHandler) Stats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	overview, err := h.statsRepo.Overview(userID)
	if err != nil {
		zap.L().Error("Failed to aggregate activity overview", zap.Uint64("user_id", userID), zap.Error(err))
		apierrors.InternalError(c, "Failed to get statistics")
		return
	}

	monthly, err := h.statsRepo.Monthly(userID, constants.MonthlyStatsWindow)
	if err != nil {
		zap.L().Error("Failed to aggregate monthly stats", zap.Uint64("user_id", userID), zap.Error(err))
		apierrors.InternalError(c, "Failed to get statistics")
		return
	}

	categories, err := h.statsRepo.ByCategory(userID)
	if err != nil {
		zap.L().Error("Failed to aggregate category stats", zap.Uint64("user_id", userID), zap.Error(err))
		apierrors.InternalError(c, "Failed to get statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overall":    overview,
		"monthly":    monthly,
		"categories": categories,
	})
}
