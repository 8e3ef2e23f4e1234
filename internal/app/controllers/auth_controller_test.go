package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/pkg/apperrors"
)

type fakeAuthService struct {
	user        *models.User
	tokens      *dto.TokenResponse
	err         error
	lastRefresh string
	loggedOut   bool
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	return f.user, f.tokens, f.err
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	f.lastRefresh = refreshToken
	return f.tokens, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	f.loggedOut = true
	return f.err
}

func (f *fakeAuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeAuthService) UpdateUser(ctx context.Context, id int64, patch *dto.UpdateUserRequest) (*models.User, error) {
	return f.user, f.err
}

func authTestRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewAuthController(svc)
	router.POST("/api/auth/register", c.Register)
	router.POST("/api/auth/login", c.Login)
	router.POST("/api/auth/refresh", c.RefreshToken)
	router.POST("/api/auth/logout", c.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsUserAndTokens(t *testing.T) {
	svc := &fakeAuthService{
		user: &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		tokens: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
			TokenType:    "Bearer",
		},
	}
	router := authTestRouter(svc)

	w := postJSON(router, "/api/auth/login", `{"username":"admin","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		User   models.User       `json:"user"`
		Tokens dto.TokenResponse `json:"tokens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Username != "admin" {
		t.Fatalf("user = %+v", resp.User)
	}
	if resp.Tokens.TokenType != "Bearer" || resp.Tokens.AccessToken != "access" {
		t.Fatalf("tokens = %+v", resp.Tokens)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	router := authTestRouter(&fakeAuthService{err: apperrors.ErrInvalidCredentials})

	w := postJSON(router, "/api/auth/login", `{"username":"admin","password":"wrong1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if strings.Contains(w.Body.String(), "admin") {
		t.Fatalf("response must not echo the username: %s", w.Body.String())
	}
}

func TestLoginMissingPassword(t *testing.T) {
	router := authTestRouter(&fakeAuthService{})

	w := postJSON(router, "/api/auth/login", `{"username":"admin"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	router := authTestRouter(&fakeAuthService{})

	w := postJSON(router, "/api/auth/register", `{
		"username": "newuser",
		"password": "secret1",
		"email": "new@example.com",
		"fullName": "New User",
		"role": "superuser"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	svc := &fakeAuthService{err: apperrors.ErrTokenExpired}
	router := authTestRouter(svc)

	w := postJSON(router, "/api/auth/refresh", `{"refreshToken":"stale"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if svc.lastRefresh != "stale" {
		t.Fatalf("refresh token = %q", svc.lastRefresh)
	}
}

func TestLogout(t *testing.T) {
	svc := &fakeAuthService{}
	router := authTestRouter(svc)

	w := postJSON(router, "/api/auth/logout", `{"refreshToken":"tok"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if !svc.loggedOut {
		t.Fatalf("service logout was not called")
	}
}
