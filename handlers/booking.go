package handlers

import (
	"net/http"

	"brandconnect/models"
	"brandconnect/services/booking"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// RequestHandler handles POST /api/bookings (client).
func (h *BookingHandler) RequestHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}
	b, err := h.Service.Request(c.GetString("accountID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// RespondHandler handles PUT /api/bookings/:id/respond (creative).
func (h *BookingHandler) RespondHandler(c *gin.Context) {
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	b, err := h.Service.Respond(c.GetString("accountID"), c.Param("id"), req.Accept)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelHandler handles DELETE /api/bookings/:id (either party).
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	b, err := h.Service.Cancel(c.GetString("accountID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteHandler handles PUT /api/bookings/:id/complete (creative).
func (h *BookingHandler) CompleteHandler(c *gin.Context) {
	b, err := h.Service.Complete(c.GetString("accountID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RateHandler handles POST /api/bookings/:id/rate (client).
func (h *BookingHandler) RateHandler(c *gin.Context) {
	var req struct {
		Score float64 `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.Service.Rate(c.GetString("accountID"), c.Param("id"), req.Score); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating recorded"})
}

// ListMineHandler handles GET /api/bookings. Clients see their own
// bookings; creatives see bookings made with them.
func (h *BookingHandler) ListMineHandler(c *gin.Context) {
	accountID := c.GetString("accountID")
	var (
		bookings []models.Booking
		err      error
	)
	if c.GetString("role") == models.RoleCreative {
		bookings, err = h.Service.ListForCreative(accountID)
	} else {
		bookings, err = h.Service.ListForClient(accountID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
