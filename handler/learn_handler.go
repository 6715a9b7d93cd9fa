package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

// LearnHandler covers the two admin learning flows: document ingestion into
// the corpus and persona replacement.
type LearnHandler struct {
	documents *service.DocumentService
	notes     repository.KnowledgeRepo
	prompts   repository.PromptRepo
	knowledge *service.KnowledgeService
	uploadDir string
	logger    *zap.Logger
}

func NewLearnHandler(
	documents *service.DocumentService,
	notes repository.KnowledgeRepo,
	prompts repository.PromptRepo,
	knowledge *service.KnowledgeService,
	uploadDir string,
	logger *zap.Logger,
) *LearnHandler {
	return &LearnHandler{
		documents: documents,
		notes:     notes,
		prompts:   prompts,
		knowledge: knowledge,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// HandleUploadDocument chunks an uploaded manual into corpus notes. Each
// chunk becomes a searchable entry labeled with the source document and its
// part number.
func (h *LearnHandler) HandleUploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Document file is required",
		})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	localPath := filepath.Join(h.uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, localPath); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	defer os.Remove(localPath)

	text, err := h.documents.ExtractText(localPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	chunks := h.documents.Chunk(h.documents.CleanText(text))
	if len(chunks) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Document contains no extractable text",
		})
		return
	}

	now := time.Now().Unix()
	notes := make([]types.KnowledgeNote, 0, len(chunks))
	for i, chunk := range chunks {
		notes = append(notes, types.KnowledgeNote{
			Question:  fmt.Sprintf("[PDF 학습데이터] %s (Part %d)", fileHeader.Filename, i+1),
			Answer:    chunk,
			Category:  types.CategoryPDF,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := h.notes.InsertMany(c, notes); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	if err := h.knowledge.Reload(c); err != nil {
		h.logger.Error("index reload after ingest failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.IngestResponse{Chunks: len(chunks)},
	})
}

// HandlePersona persists a new system instruction and hot-swaps it into the
// running pipeline.
func (h *LearnHandler) HandlePersona(c *gin.Context) {
	var req types.PersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Role and content are required",
		})
		return
	}

	content := fmt.Sprintf("역할: %s\n지시사항: %s", req.Role, req.Content)
	prompt := &types.SystemPrompt{
		Role:      req.Role,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err := h.prompts.Insert(c, prompt); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	h.knowledge.SetPersona(content)
	c.JSON(http.StatusOK, types.DataResponse{Status: true})
}
