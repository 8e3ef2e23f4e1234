package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
)

type fakeDashboardService struct {
	stats *dto.DashboardStats
	err   error
}

func (f *fakeDashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	return f.stats, f.err
}

func dashboardTestRouter(svc *fakeDashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewDashboardController(svc)
	router.GET("/api/dashboard/stats", c.GetStats)
	return router
}

func TestGetStats(t *testing.T) {
	router := dashboardTestRouter(&fakeDashboardService{stats: &dto.DashboardStats{
		TotalStudents: 120,
		TotalFaculty:  14,
		FeeCollection: 255000.50,
		FeeDefaulters: 17,
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got dto.DashboardStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalStudents != 120 || got.TotalFaculty != 14 || got.FeeDefaulters != 17 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if got.FeeCollection != 255000.50 {
		t.Fatalf("feeCollection = %v", got.FeeCollection)
	}
}

func TestGetStatsServiceError(t *testing.T) {
	router := dashboardTestRouter(&fakeDashboardService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
