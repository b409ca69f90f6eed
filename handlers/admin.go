package handlers

import (
	"net/http"

	"brandconnect/models"
	"brandconnect/services/creative"
	"brandconnect/services/user"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the review queue and platform oversight
// endpoints.
type AdminHandler struct {
	Users     user.UserService
	Creatives creative.CreativeService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users user.UserService, creatives creative.CreativeService) *AdminHandler {
	return &AdminHandler{Users: users, Creatives: creatives}
}

// ListPendingHandler handles GET /api/admin/creatives/pending.
func (h *AdminHandler) ListPendingHandler(c *gin.Context) {
	pending, err := h.Creatives.ListPending()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": pending})
}

// ReviewHandler handles PUT /api/admin/creatives/:id/review, moving a
// creative to approved, rejected or suspended.
func (h *AdminHandler) ReviewHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", err.Error())
		return
	}
	if err := h.Creatives.SetStatus(c.Param("id"), req.Status, req.Reason); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Creative is now " + req.Status})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListCreativesHandler handles GET /api/admin/creatives?status=...
func (h *AdminHandler) ListCreativesHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.CreativeStatusPending)
	creatives, err := h.Creatives.ListByStatus(status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": creatives})
}
