package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

type TranscriptHandler struct {
	transcripts *service.TranscriptService
	logger      *zap.Logger
}

func NewTranscriptHandler(transcripts *service.TranscriptService, logger *zap.Logger) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		logger:      logger,
	}
}

// HandleExport streams the conversation logs as a spreadsheet download.
func (h *TranscriptHandler) HandleExport(c *gin.Context) {
	workbook, err := h.transcripts.Export(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("transcripts_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		h.logger.Error("transcript export write failed", zap.Error(err))
	}
}
