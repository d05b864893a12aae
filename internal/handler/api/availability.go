package api

import (
	"errors"
	"net/http"

	resdto "school-booking/internal/handler/dto/response"
	"school-booking/internal/pkg/errs"
	"school-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Day availability
// @Description Slot grid for one calendar day: open, booked and bookable slots
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Param resource_id query string false "Limit to a single resource"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	var resourceID *uuid.UUID
	if raw := c.Query("resource_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource ID format",
			})
			return
		}
		resourceID = &parsed
	}

	view, err := h.availabilityQueries.DaySchedule(c.Request.Context(), date, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}
