package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService satisfies service.AuthService; only ParseAccessToken is
// exercised by the middleware.
type stubAuthService struct {
	claims *service.Claims
	err    error
}

func (s *stubAuthService) Register(dto.RegisterRequest) (*dto.UserResponse, error) { return nil, nil }
func (s *stubAuthService) VerifyEmailOtp(dto.VerifyOtpRequest) error              { return nil }
func (s *stubAuthService) Login(dto.LoginRequest) error                           { return nil }
func (s *stubAuthService) VerifyLoginOtp(dto.VerifyOtpRequest) (*dto.TokenPairResponse, error) {
	return nil, nil
}
func (s *stubAuthService) Refresh(string) (*dto.TokenPairResponse, error) { return nil, nil }
func (s *stubAuthService) ForgotPassword(string) error                    { return nil }
func (s *stubAuthService) ResetPassword(string, string) error             { return nil }
func (s *stubAuthService) ParseAccessToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

func newAuthRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(auth), func(c *gin.Context) {
		userID, _ := c.Get(ContextUserIDKey)
		role, _ := c.Get(ContextRoleKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/admin-only", Auth(auth), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&stubAuthService{err: service.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthPopulatesIdentityContext(t *testing.T) {
	r := newAuthRouter(&stubAuthService{claims: &service.Claims{
		UserID: 42,
		Email:  "ada@example.com",
		RoleID: 1,
		Role:   model.RoleUser,
	}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdminGatesByRole(t *testing.T) {
	userRouter := newAuthRouter(&stubAuthService{claims: &service.Claims{UserID: 1, Role: model.RoleUser}})
	adminRouter := newAuthRouter(&stubAuthService{claims: &service.Claims{UserID: 2, Role: model.RoleAdmin}})

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer token")

	w := httptest.NewRecorder()
	userRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	adminRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
