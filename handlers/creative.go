package handlers

import (
	"net/http"

	"brandconnect/models"
	"brandconnect/services/creative"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreativeHandler exposes creative account and browsing endpoints.
type CreativeHandler struct {
	Service creative.CreativeService
}

// NewCreativeHandler creates a CreativeHandler.
func NewCreativeHandler(svc creative.CreativeService) *CreativeHandler {
	return &CreativeHandler{Service: svc}
}

// RegisterHandler handles POST /api/creatives/register.
func (h *CreativeHandler) RegisterHandler(c *gin.Context) {
	var req models.CreativeRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}
	created, err := h.Service.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"creative": created,
		"message":  "Registration received. Your profile is pending review.",
	})
}

// LoginHandler handles POST /api/creatives/login.
func (h *CreativeHandler) LoginHandler(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}
	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("creative login failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BrowseHandler handles GET /api/creatives. Only approved profiles are
// returned, in their public projection.
func (h *CreativeHandler) BrowseHandler(c *gin.Context) {
	var query models.CreativeSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search query", err.Error())
		return
	}
	results, err := h.Service.Browse(query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": results})
}

// GetPublicHandler handles GET /api/creatives/:id.
func (h *CreativeHandler) GetPublicHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if found.Status != models.CreativeStatusApproved {
		utils.JSONError(c, http.StatusNotFound, "Not found", "no such creative")
		return
	}
	c.JSON(http.StatusOK, found.PublicView())
}

// MeHandler handles GET /api/creatives/me.
func (h *CreativeHandler) MeHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.GetString("accountID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateHandler handles PUT /api/creatives/me.
func (h *CreativeHandler) UpdateHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.GetString("accountID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		DisplayName string  `json:"displayName"`
		Bio         string  `json:"bio"`
		Category    string  `json:"category"`
		Region      string  `json:"region"`
		HourlyRate  float64 `json:"hourlyRate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}
	if req.DisplayName != "" {
		found.DisplayName = req.DisplayName
	}
	if req.Bio != "" {
		found.Bio = req.Bio
	}
	if req.Category != "" {
		found.Category = req.Category
	}
	if req.Region != "" {
		found.Region = req.Region
	}
	if req.HourlyRate > 0 {
		found.HourlyRate = req.HourlyRate
	}
	if err := h.Service.UpdateProfile(found); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateFCMTokenHandler handles PUT /api/creatives/me/fcm-token.
func (h *CreativeHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.Service.UpdateFCMToken(c.GetString("accountID"), req.Token); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}

// SignOutHandler handles POST /api/creatives/signout.
func (h *CreativeHandler) SignOutHandler(c *gin.Context) {
	if err := h.Service.SignOut(c.GetString("accountID"), c.GetString("sessionID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
