package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
)

type RecommendHandler struct {
	recommend *service.RecommendService
}

func NewRecommendHandler(recommend *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommend: recommend,
	}
}

func (h *RecommendHandler) HandleRecommend(c *gin.Context) {
	var req types.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message"})
		return
	}

	text := h.recommend.Recommend(c.Request.Context(), req.Message, req.MemberID)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.ChatResponse{Text: text},
	})
}
