package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// ExamController handles exam and result endpoints.
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController.
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// GetAllExams handles GET /api/exams?subjectId=.
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams(ctx, queryInt64(ctx, "subjectId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(exams))
}

// GetExamByID handles GET /api/exams/:id.
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// CreateExam handles POST /api/exams.
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	exam, err := c.examService.CreateExam(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// GetResults handles GET /api/results?studentId=&examId=.
func (c *ExamController) GetResults(ctx *gin.Context) {
	filter := &dto.ResultFilter{
		StudentID: queryInt64(ctx, "studentId"),
		ExamID:    queryInt64(ctx, "examId"),
	}

	results, err := c.examService.GetResults(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(results))
}

// CreateResult handles POST /api/results.
func (c *ExamController) CreateResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	result, err := c.examService.CreateResult(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
