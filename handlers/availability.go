package handlers

import (
	"net/http"

	"brandconnect/models"
	"brandconnect/services/availability"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes weekly schedule endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetMineHandler handles GET /api/creatives/me/availability. A creative
// who has never saved a schedule gets the default one back.
func (h *AvailabilityHandler) GetMineHandler(c *gin.Context) {
	profile, err := h.Service.GetSchedule(c.GetString("accountID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublicHandler handles GET /api/creatives/:id/availability, used by
// clients when picking a booking window.
func (h *AvailabilityHandler) GetPublicHandler(c *gin.Context) {
	profile, err := h.Service.GetSchedule(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type saveAvailabilityRequest struct {
	Days       []models.WeeklyAvailability `json:"days" binding:"required"`
	BufferTime int                         `json:"bufferTime"`
}

// SaveHandler handles PUT /api/creatives/me/availability. The submitted
// schedule is applied through the editor on top of the stored one and
// saved wholesale; any rejection leaves the stored schedule untouched.
func (h *AvailabilityHandler) SaveHandler(c *gin.Context) {
	var req saveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule payload", err.Error())
		return
	}

	editor := availability.NewEditor(h.Service)
	if err := editor.Load(c.GetString("accountID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := editor.SetBufferTime(req.BufferTime); err != nil {
		utils.RespondError(c, err)
		return
	}
	for _, day := range req.Days {
		if err := editor.SetTimes(day.DayOfWeek, day.StartTime, day.EndTime); err != nil {
			// A bad window only matters on a day being offered; a day
			// toggled off keeps the times it had.
			if day.IsAvailable {
				utils.RespondError(c, err)
				return
			}
		}
		current := editor.Profile().Day(day.DayOfWeek)
		if current != nil && current.IsAvailable != day.IsAvailable {
			if err := editor.ToggleDay(day.DayOfWeek); err != nil {
				utils.RespondError(c, err)
				return
			}
		}
	}

	if err := editor.Save(); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, editor.Profile())
}
