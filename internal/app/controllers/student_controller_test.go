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

// fakeStudentService records inputs and returns canned results.
type fakeStudentService struct {
	students   []*models.Student
	student    *models.Student
	err        error
	lastFilter *dto.StudentFilter
	lastID     int64
}

func (f *fakeStudentService) GetAllStudents(ctx context.Context, filter *dto.StudentFilter) ([]*models.Student, error) {
	f.lastFilter = filter
	return f.students, f.err
}

func (f *fakeStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	f.lastID = id
	return f.student, f.err
}

func (f *fakeStudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	return f.student, f.err
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, id int64, patch *dto.UpdateStudentRequest) (*models.Student, error) {
	f.lastID = id
	return f.student, f.err
}

func (f *fakeStudentService) DeleteStudent(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

func studentTestRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewStudentController(svc)
	router.GET("/api/students", c.GetAllStudents)
	router.GET("/api/students/:id", c.GetStudentByID)
	router.POST("/api/students", c.CreateStudent)
	router.DELETE("/api/students/:id", c.DeleteStudent)
	return router
}

func TestGetAllStudentsEmptyListIsJSONArray(t *testing.T) {
	router := studentTestRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("empty list must serialize as [], got %s", w.Body.String())
	}
}

func TestGetAllStudentsPassesFilters(t *testing.T) {
	svc := &fakeStudentService{}
	router := studentTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/students?programId=3&sectionId=9&search=ali", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastFilter == nil {
		t.Fatalf("filter not passed to service")
	}
	if svc.lastFilter.ProgramID == nil || *svc.lastFilter.ProgramID != 3 {
		t.Fatalf("programId filter = %v", svc.lastFilter.ProgramID)
	}
	if svc.lastFilter.SectionID == nil || *svc.lastFilter.SectionID != 9 {
		t.Fatalf("sectionId filter = %v", svc.lastFilter.SectionID)
	}
	if svc.lastFilter.Search != "ali" {
		t.Fatalf("search filter = %q", svc.lastFilter.Search)
	}
}

func TestGetAllStudentsIgnoresBadNumericFilter(t *testing.T) {
	svc := &fakeStudentService{}
	router := studentTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students?programId=abc", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, non-numeric filters are ignored not rejected", w.Code)
	}
	if svc.lastFilter.ProgramID != nil {
		t.Fatalf("non-numeric programId should be dropped")
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := &fakeStudentService{err: apperrors.NotFound("Student")}
	router := studentTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students/12", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if svc.lastID != 12 {
		t.Fatalf("id = %d, want 12", svc.lastID)
	}
}

func TestGetStudentByIDBadParam(t *testing.T) {
	router := studentTestRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateStudent(t *testing.T) {
	svc := &fakeStudentService{student: &models.Student{
		ID:       5,
		FullName: "Ali Khan",
		Status:   models.StudentActive,
	}}
	router := studentTestRouter(svc)

	body := `{
		"fullName": "Ali Khan",
		"fatherName": "Ahmed Khan",
		"cnic": "35202-1234567-1",
		"address": "12 Mall Road",
		"contactNumber": "0300-1234567",
		"emergencyContact": "0300-7654321",
		"dateOfBirth": "2008-04-15",
		"gender": "male",
		"enrollmentNo": "ENR-001",
		"registrationNo": "REG-001",
		"programId": 1,
		"sectionId": 2,
		"admissionDate": "2024-09-01"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got models.Student
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 5 || got.FullName != "Ali Khan" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCreateStudentMissingFields(t *testing.T) {
	router := studentTestRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students",
		strings.NewReader(`{"fullName": "Ali Khan"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteStudent(t *testing.T) {
	svc := &fakeStudentService{}
	router := studentTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/students/8", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if svc.lastID != 8 {
		t.Fatalf("id = %d, want 8", svc.lastID)
	}
}

func TestDeleteStudentWithDependents(t *testing.T) {
	svc := &fakeStudentService{err: apperrors.HasDependents("Student has dependent records and cannot be deleted")}
	router := studentTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/students/8", nil))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}
