package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/middleware"
	"github.com/stretchr/testify/assert"
)

// stubAnswerService returns canned responses; only Submit is exercised here.
type stubAnswerService struct {
	submitResp *dto.SubmitAnswerResponse
	submitErr  error
}

func (s *stubAnswerService) Submit(uint, dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	return s.submitResp, s.submitErr
}
func (s *stubAnswerService) Update(uint, dto.UpdateAnswerRequest) (*dto.AnswerResponse, error) {
	return nil, nil
}
func (s *stubAnswerService) ListByTitle(uint, uint) (*dto.UserAnswersResponse, error) {
	return nil, nil
}
func (s *stubAnswerService) SaveLlmHistory(uint, dto.SaveLlmHistoryRequest) (*dto.SaveLlmHistoryResponse, error) {
	return nil, nil
}
func (s *stubAnswerService) ListLlmHistory(uint, uint, uint) (*dto.LlmHistoryListResponse, error) {
	return nil, nil
}

func newSubmitRouter(svc *stubAnswerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAnswerController(svc, nil)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserIDKey, uint(7)) })
	r.POST("/answers/submit", ctrl.SubmitAnswer)
	return r
}

func submitRequest(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"question_id": 1, "project_id": 1, "answer_text": "text"}`
	req := httptest.NewRequest(http.MethodPost, "/answers/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAnswerStatusReflectsCreation(t *testing.T) {
	t.Run("fresh answer responds 201", func(t *testing.T) {
		r := newSubmitRouter(&stubAnswerService{submitResp: &dto.SubmitAnswerResponse{
			Message: "Answer submitted successfully",
			Created: true,
		}})
		w := submitRequest(t, r)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("overwritten answer responds 200", func(t *testing.T) {
		r := newSubmitRouter(&stubAnswerService{submitResp: &dto.SubmitAnswerResponse{
			Message: "Answer updated successfully",
		}})
		w := submitRequest(t, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
