package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/stretchr/testify/assert"
)

// stubChatService either fails outright or replays canned chunks.
type stubChatService struct {
	chunks []string
	err    error
}

func (s *stubChatService) StreamCompletion(_ context.Context, _ service.ChatRequest, onChunk func(string) error) error {
	if s.err != nil {
		return s.err
	}
	for _, chunk := range s.chunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return nil
}

func newChatRouter(svc service.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat/completions", NewChatController(svc).StreamCompletion)
	return r
}

func completionRequest(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"messages": [{"role": "user", "content": "hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/chat/completions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStreamCompletionWritesChunks(t *testing.T) {
	r := newChatRouter(&stubChatService{chunks: []string{"hello ", "world"}})

	w := completionRequest(t, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello world", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestStreamCompletionReportsSetupFailures(t *testing.T) {
	r := newChatRouter(&stubChatService{err: errors.New("upstream unavailable")})

	w := completionRequest(t, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to stream completion")
}
