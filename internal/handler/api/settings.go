package api

import (
	"errors"
	"net/http"

	reqdto "school-booking/internal/handler/dto/request"
	resdto "school-booking/internal/handler/dto/response"
	"school-booking/internal/pkg/errs"
	"school-booking/internal/usecase/commands"
	"school-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(
	settingsCommands commands.SettingsCommands,
	settingsQueries queries.SettingsQueries,
) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Get operating hours
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OperatingHoursResponse
// @Failure 401 {object} map[string]string
// @Router /settings/operating-hours [get]
func (h *SettingsHandler) GetOperatingHours(c *gin.Context) {
	week, err := h.settingsQueries.OperatingHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekSchedule(week))
}

// @Summary Update operating hours
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateOperatingHoursRequest true "Operating hours"
// @Success 200 {object} resdto.OperatingHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings/operating-hours [put]
func (h *SettingsHandler) UpdateOperatingHours(c *gin.Context) {
	var req reqdto.UpdateOperatingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	week := req.ToDomain()
	if err := h.settingsCommands.UpdateOperatingHours(c.Request.Context(), week); err != nil {
		if errors.Is(err, errs.ErrInvalidOperatingHours) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid operating hours",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekSchedule(week))
}

// @Summary Get reservation policy
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PolicyResponse
// @Failure 401 {object} map[string]string
// @Router /settings/policy [get]
func (h *SettingsHandler) GetPolicy(c *gin.Context) {
	policy, err := h.settingsQueries.Policy(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}

// @Summary Update reservation policy
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePolicyRequest true "Reservation policy"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings/policy [put]
func (h *SettingsHandler) UpdatePolicy(c *gin.Context) {
	var req reqdto.UpdatePolicyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	policy := req.ToDomain()
	if err := h.settingsCommands.UpdatePolicy(c.Request.Context(), policy); err != nil {
		if errors.Is(err, errs.ErrInvalidReservationPolicy) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid reservation policy",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}
