package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/answer-engine/service"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

type stubNoteRepo struct {
	byID    map[string]types.KnowledgeNote
	updated map[string]types.KnowledgeNote
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{
		byID:    make(map[string]types.KnowledgeNote),
		updated: make(map[string]types.KnowledgeNote),
	}
}

func (s *stubNoteRepo) All(ctx context.Context) ([]types.KnowledgeNote, error) { return nil, nil }

func (s *stubNoteRepo) Get(ctx context.Context, id string) (*types.KnowledgeNote, error) {
	note, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("note %s not found", id)
	}
	return &note, nil
}

func (s *stubNoteRepo) Insert(ctx context.Context, note *types.KnowledgeNote) error { return nil }

func (s *stubNoteRepo) InsertMany(ctx context.Context, notes []types.KnowledgeNote) error {
	return nil
}

func (s *stubNoteRepo) Update(ctx context.Context, id string, note *types.KnowledgeNote) error {
	s.updated[id] = *note
	return nil
}

func (s *stubNoteRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubNoteRepo) Paginate(ctx context.Context, page, limit int64, category string) ([]types.KnowledgeNote, int64, error) {
	return nil, 0, nil
}

type stubPromptRepo struct{}

func (stubPromptRepo) Insert(ctx context.Context, prompt *types.SystemPrompt) error { return nil }
func (stubPromptRepo) Latest(ctx context.Context) (*types.SystemPrompt, error)      { return nil, nil }

type stubImageHost struct {
	url     string
	uploads int
	removed []string
}

func (s *stubImageHost) Upload(name string, r io.Reader) (string, error) {
	s.uploads++
	return s.url, nil
}

func (s *stubImageHost) Remove(url string) error {
	s.removed = append(s.removed, url)
	return nil
}

func newKnowledgeTestRouter(notes *stubNoteRepo, images service.ImageHost) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	knowledge := service.NewKnowledgeService(notes, stubPromptRepo{}, logger)
	h := NewKnowledgeHandler(notes, knowledge, images, logger)

	router := gin.New()
	router.PUT("/admin/api/v1/knowledge/:id", h.HandleUpdate)
	return router
}

func TestHandleUpdateReplacesHostedImage(t *testing.T) {
	const oldURL = "https://img.yogibo.kr/chat/1700000000000_old.jpg"
	notes := newStubNoteRepo()
	notes.byID["abc"] = types.KnowledgeNote{
		ID:       "abc",
		Question: "맥스 실물 사진",
		Answer:   `<img src="` + oldURL + `" style="max-width:100%;">`,
		Category: types.CategoryImage,
	}
	images := &stubImageHost{url: "https://img.yogibo.kr/chat/1700000000001_new.jpg"}
	router := newKnowledgeTestRouter(notes, images)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("question", "맥스 실물 사진"))
	require.NoError(t, form.WriteField("answer", "새로운 안내입니다"))
	require.NoError(t, form.WriteField("category", types.CategoryImage))
	part, err := form.CreateFormFile("image", "new.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/api/v1/knowledge/abc", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, images.uploads)
	assert.Equal(t, []string{oldURL}, images.removed, "the orphaned file is deleted")

	updated, ok := notes.updated["abc"]
	require.True(t, ok)
	assert.Contains(t, updated.Answer, images.url)
	assert.Contains(t, updated.Answer, "새로운 안내입니다")
	assert.NotContains(t, updated.Answer, oldURL)
}

func TestHandleUpdateJSONStillWorks(t *testing.T) {
	notes := newStubNoteRepo()
	router := newKnowledgeTestRouter(notes, &stubImageHost{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/api/v1/knowledge/abc",
		strings.NewReader(`{"question":"배송 문의","answer":"2~5일 걸립니다","category":"faq"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2~5일 걸립니다", notes.updated["abc"].Answer)
}

func TestHandleUpdateMultipartWithoutImage(t *testing.T) {
	notes := newStubNoteRepo()
	router := newKnowledgeTestRouter(notes, &stubImageHost{})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("question", "배송 문의"))
	require.NoError(t, form.WriteField("answer", "2~5일 걸립니다"))
	require.NoError(t, form.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/api/v1/knowledge/abc", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2~5일 걸립니다", notes.updated["abc"].Answer)
}
