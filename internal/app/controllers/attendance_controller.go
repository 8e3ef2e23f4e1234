package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// AttendanceController handles attendance endpoints. There is no delete;
// wrong entries are corrected with a patch.
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetAllAttendance handles GET /api/attendance?studentId=&facultyId=&subjectId=&date=.
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	filter := &dto.AttendanceFilter{
		StudentID: queryInt64(ctx, "studentId"),
		FacultyID: queryInt64(ctx, "facultyId"),
		SubjectID: queryInt64(ctx, "subjectId"),
		Date:      ctx.Query("date"),
	}

	records, err := c.attendanceService.GetAllAttendance(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(records))
}

// CreateAttendance handles POST /api/attendance.
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	record, err := c.attendanceService.CreateAttendance(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// UpdateAttendance handles PUT /api/attendance/:id.
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	record, err := c.attendanceService.UpdateAttendance(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}
