package handlers

import (
	"net/http"

	"brandconnect/services/creative"
	"brandconnect/services/storage"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes portfolio media upload endpoints.
type StorageHandler struct {
	Storage   storage.StorageService
	Creatives creative.CreativeService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(store storage.StorageService, creatives creative.CreativeService) *StorageHandler {
	return &StorageHandler{Storage: store, Creatives: creatives}
}

// UploadPortfolioHandler handles POST /api/creatives/me/portfolio with
// a multipart "image" field. The uploaded image URL is appended to the
// creative's portfolio.
func (h *StorageHandler) UploadPortfolioHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Uploads unavailable", "portfolio storage is not configured")
		return
	}
	creativeID := c.GetString("accountID")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing image", "expected a multipart 'image' field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable image", err.Error())
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadPortfolioImage(c.Request.Context(), creativeID, file)
	if err != nil {
		utils.GetLogger().Error("portfolio upload failed",
			zap.String("creativeId", creativeID), zap.Error(err))
		utils.RespondError(c, utils.Transport("storage.UploadPortfolio", err))
		return
	}

	if err := h.Creatives.AddPortfolioImage(creativeID, url); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
