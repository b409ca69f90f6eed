package handlers

import (
	"net/http"

	"brandconnect/services/session"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the session status and renewal endpoints.
type SessionHandler struct {
	Tracker *session.Tracker
	Renewer *session.Renewer
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(tracker *session.Tracker, renewer *session.Renewer) *SessionHandler {
	return &SessionHandler{Tracker: tracker, Renewer: renewer}
}

// StatusHandler handles GET /api/session. It reports the lifecycle
// state and the time remaining before expiry.
func (h *SessionHandler) StatusHandler(c *gin.Context) {
	status, err := h.Tracker.Status(c.GetString("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ExtendHandler handles POST /api/session/extend. On success the
// session's expiry moves strictly later and the warning flag resets, so
// the countdown notice can fire again next time around.
func (h *SessionHandler) ExtendHandler(c *gin.Context) {
	record, err := h.Renewer.Extend(c.GetString("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Session extended",
		"expiresAt": record.ExpiresAt,
	})
}
