package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai4life/career-advisor-go/internal/service"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

// POST /api/ai/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	reply, err := h.chat.HandleMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reply)
}

// GET /api/ai/chat/:sessionId
func (h *ChatHandler) GetHistory(c *gin.Context) {
	session, err := h.chat.GetHistory(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if session == nil {
		RespondError(c, http.StatusNotFound, "session_not_found", nil)
		return
	}
	RespondOK(c, session)
}

// DELETE /api/ai/chat/:sessionId
func (h *ChatHandler) ClearSession(c *gin.Context) {
	if err := h.chat.ClearSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}
