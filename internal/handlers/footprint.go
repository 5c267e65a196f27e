package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecotrack/ecotrack-api/internal/carbon"
	"github.com/ecotrack/ecotrack-api/internal/constants"
	"github.com/ecotrack/ecotrack-api/internal/dto"
	apierrors "github.com/ecotrack/ecotrack-api/internal/errors"
	"github.com/ecotrack/ecotrack-api/internal/middleware"
	"github.com/ecotrack/ecotrack-api/internal/services"
	"github.com/gin-gonic/gin"
)

// FootprintHandler coordinates footprint calculation HTTP handlers.
type FootprintHandler struct {
	footprintService *services.FootprintService
}

// NewFootprintHandler creates a new FootprintHandler.
func NewFootprintHandler(footprintService *services.FootprintService) *FootprintHandler {
	return &FootprintHandler{
		footprintService: footprintService,
	}
}

// Calculate runs a full footprint calculation and appends it to the user's
// history. Absent numeric fields default to zero; diet is taken as supplied.
func (h *FootprintHandler) Calculate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CalculateRequest struct {
		Transport   float64 `json:"transport"`
		Electricity float64 `json:"electricity"`
		Diet        float64 `json:"diet"`
		Flights     float64 `json:"flights"`
		Waste       float64 `json:"waste"`
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	calc, err := h.footprintService.Calculate(userID, carbon.Inputs{
		Transport:   req.Transport,
		Electricity: req.Electricity,
		Diet:        req.Diet,
		Flights:     req.Flights,
		Waste:       req.Waste,
	})
	if err != nil {
		if errors.Is(err, carbon.ErrNegativeInput) {
			apierrors.BadRequest(c, "Values cannot be negative")
			return
		}
		apierrors.InternalError(c, "Failed to calculate carbon footprint")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    dto.ToCalculationDTO(*calc),
	})
}

// History lists past calculations, newest first.
func (h *FootprintHandler) History(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	calcs, total, err := h.footprintService.History(userID, limit, offset)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch carbon footprint history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToCalculationDTOs(calcs),
		"pagination": dto.HistoryPaginationDTO{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

// Latest returns the most recent calculation, or null data when the user has
// never calculated.
func (h *FootprintHandler) Latest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	calc, err := h.footprintService.Latest(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch latest carbon footprint")
		return
	}

	if calc == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    nil,
			"message": "No carbon footprint calculations found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToCalculationDTO(*calc),
	})
}

// DeleteCalculation removes an owned calculation from the history.
func (h *FootprintHandler) DeleteCalculation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid calculation id")
		return
	}

	if err := h.footprintService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrCalculationNotFound) {
			apierrors.NotFound(c, "Carbon footprint calculation not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete carbon footprint calculation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Carbon footprint calculation deleted successfully",
	})
}
