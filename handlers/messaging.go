package handlers

import (
	"net/http"
	"strconv"

	"brandconnect/models"
	"brandconnect/services/messaging"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// MessagingHandler exposes conversation and chat endpoints.
type MessagingHandler struct {
	Service messaging.MessagingService
	Hub     *messaging.Hub
}

// NewMessagingHandler creates a MessagingHandler.
func NewMessagingHandler(svc messaging.MessagingService, hub *messaging.Hub) *MessagingHandler {
	return &MessagingHandler{Service: svc, Hub: hub}
}

// OpenHandler handles POST /api/messages/conversations (client opens a
// thread with a creative).
func (h *MessagingHandler) OpenHandler(c *gin.Context) {
	if c.GetString("role") != models.RoleClient {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "only clients open conversations")
		return
	}
	var req struct {
		CreativeID string `json:"creativeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	conv, err := h.Service.OpenConversation(c.GetString("accountID"), req.CreativeID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ListHandler handles GET /api/messages/conversations.
func (h *MessagingHandler) ListHandler(c *gin.Context) {
	convs, err := h.Service.ListConversations(c.GetString("accountID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

// SendHandler handles POST /api/messages/conversations/:id.
func (h *MessagingHandler) SendHandler(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message payload", err.Error())
		return
	}
	msg, err := h.Service.Send(c.GetString("accountID"), c.Param("id"), req.Body)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// HistoryHandler handles GET /api/messages/conversations/:id.
func (h *MessagingHandler) HistoryHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	msgs, err := h.Service.History(c.GetString("accountID"), c.Param("id"), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// MarkReadHandler handles PUT /api/messages/conversations/:id/read.
func (h *MessagingHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.GetString("accountID"), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked read"})
}

// ServeWSHandler handles GET /api/messages/ws, upgrading to a WebSocket
// that receives realtime chat events for the signed-in account.
func (h *MessagingHandler) ServeWSHandler(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "WebSocket upgrade failed", err.Error())
		return
	}
	h.Hub.Attach(c.GetString("accountID"), conn)
}
