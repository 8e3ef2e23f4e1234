package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/pkg/apperrors"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", apperrors.NotFound("Program"), http.StatusNotFound},
		{"validation", apperrors.Validation("year", "must be positive"), http.StatusBadRequest},
		{"conflict", apperrors.Conflict("program code already exists"), http.StatusConflict},
		{"invalid reference", apperrors.InvalidReference("referenced record does not exist"), http.StatusConflict},
		{"has dependents", apperrors.HasDependents("Program has dependent records and cannot be deleted"), http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveError(tc.err)
			if w.Code != tc.code {
				t.Fatalf("status = %d, want %d", w.Code, tc.code)
			}
		})
	}
}

func TestHandleAPIErrorUsesWrappedMessage(t *testing.T) {
	w := serveError(apperrors.NotFound("Student"))
	if !strings.Contains(w.Body.String(), "Student not found") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := serveError(errors.New("pq: relation does not exist"))
	if strings.Contains(w.Body.String(), "relation") {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
}
