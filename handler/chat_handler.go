package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
	"github.com/tieubaoca/answer-engine/utils"
)

type ChatHandler struct {
	arbiter *service.Arbiter
}

func NewChatHandler(arbiter *service.Arbiter) *ChatHandler {
	return &ChatHandler{
		arbiter: arbiter,
	}
}

// HandleChat answers one widget question. Anonymous callers are keyed by
// client address so clarification sub-dialogs still work without a login.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message"})
		return
	}

	sessionID := req.MemberID
	if !utils.IsLoggedIn(sessionID) {
		sessionID = c.ClientIP()
	}

	text := h.arbiter.Answer(c.Request.Context(), req.Message, req.MemberID, sessionID)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.ChatResponse{Text: text},
	})
}
