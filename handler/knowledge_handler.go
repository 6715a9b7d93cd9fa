package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

var imgSrcRe = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

type KnowledgeHandler struct {
	notes     repository.KnowledgeRepo
	knowledge *service.KnowledgeService
	images    service.ImageHost
	logger    *zap.Logger
}

func NewKnowledgeHandler(
	notes repository.KnowledgeRepo,
	knowledge *service.KnowledgeService,
	images service.ImageHost,
	logger *zap.Logger,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		notes:     notes,
		knowledge: knowledge,
		images:    images,
		logger:    logger,
	}
}

func (h *KnowledgeHandler) HandlePaginate(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "300"), 10, 64)
	if err != nil || limit < 1 {
		limit = 300
	}
	category := c.Query("category")

	notes, total, err := h.notes.Paginate(c, page, limit, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.PaginateResponse{
			Total:    total,
			Elements: notes,
			Page:     page,
			Limit:    limit,
		},
	})
}

func (h *KnowledgeHandler) HandleCreate(c *gin.Context) {
	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	now := time.Now().Unix()
	note := &types.KnowledgeNote{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.notes.Insert(c, note); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	h.reload(c)
	c.JSON(http.StatusOK, types.DataResponse{Status: true})
}

// HandleUpdate edits a note. A multipart request may carry a replacement
// image: the file is hosted, the answer markup rewritten to the new URL and
// the previously hosted file removed.
func (h *KnowledgeHandler) HandleUpdate(c *gin.Context) {
	id := c.Param("id")

	var req types.CreateNoteRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if !h.bindUpdateForm(c, id, &req) {
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	note := &types.KnowledgeNote{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		UpdatedAt: time.Now().Unix(),
	}
	if err := h.notes.Update(c, id, note); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	h.reload(c)
	c.JSON(http.StatusOK, types.DataResponse{Status: true})
}

// bindUpdateForm fills the update request from a multipart form. Reports
// false after writing the error response itself.
func (h *KnowledgeHandler) bindUpdateForm(c *gin.Context, id string, req *types.CreateNoteRequest) bool {
	req.Question = c.PostForm("question")
	req.Answer = c.PostForm("answer")
	req.Category = c.PostForm("category")
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Question is required",
		})
		return false
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No replacement image, plain field edit.
		if req.Answer == "" {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: "Answer is required",
			})
			return false
		}
		return true
	}
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, types.DataResponse{
			Status:  false,
			Message: "Image hosting is not configured",
		})
		return false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return false
	}
	defer file.Close()

	url, err := h.images.Upload(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return false
	}

	// The rewrite orphans whatever file the old answer pointed at.
	if note, err := h.notes.Get(c, id); err == nil {
		if match := imgSrcRe.FindStringSubmatch(note.Answer); match != nil && match[1] != url {
			if err := h.images.Remove(match[1]); err != nil {
				h.logger.Warn("hosted image removal failed", zap.String("url", match[1]), zap.Error(err))
			}
		}
	}

	if req.Answer != "" {
		req.Answer += "<br>"
	}
	req.Answer += `<img src="` + url + `" style="max-width:100%;">`
	return true
}

// HandleDelete removes the note and any image it hosted.
func (h *KnowledgeHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")

	note, err := h.notes.Get(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Note not found",
		})
		return
	}

	if h.images != nil {
		if match := imgSrcRe.FindStringSubmatch(note.Answer); match != nil {
			if err := h.images.Remove(match[1]); err != nil {
				h.logger.Warn("hosted image removal failed", zap.String("url", match[1]), zap.Error(err))
			}
		}
	}

	if err := h.notes.Delete(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	h.reload(c)
	c.JSON(http.StatusOK, types.DataResponse{Status: true})
}

// HandleUploadImage publishes an image answer: the file goes to the image
// host and the note's answer embeds the public URL.
func (h *KnowledgeHandler) HandleUploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, types.DataResponse{
			Status:  false,
			Message: "Image hosting is not configured",
		})
		return
	}

	question := c.PostForm("question")
	if question == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Question is required",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Image file is required",
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	url, err := h.images.Upload(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	answer := c.PostForm("caption")
	if answer != "" {
		answer += "<br>"
	}
	answer += `<img src="` + url + `" style="max-width:100%;">`

	now := time.Now().Unix()
	note := &types.KnowledgeNote{
		Question:  question,
		Answer:    answer,
		Category:  types.CategoryImage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.notes.Insert(c, note); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	h.reload(c)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   gin.H{"url": url},
	})
}

func (h *KnowledgeHandler) reload(c *gin.Context) {
	if err := h.knowledge.Reload(c); err != nil {
		h.logger.Error("index reload after mutation failed", zap.Error(err))
	}
}
