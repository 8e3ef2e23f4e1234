package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// FacultyController handles faculty member and subject assignment endpoints.
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController.
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetAllFaculty handles GET /api/faculty?userId=.
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	members, err := c.facultyService.GetAllFaculty(ctx, queryInt64(ctx, "userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(members))
}

// GetFacultyByID handles GET /api/faculty/:id.
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	member, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, member)
}

// CreateFaculty handles POST /api/faculty.
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	member, err := c.facultyService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, member)
}

// UpdateFaculty handles PUT /api/faculty/:id.
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	member, err := c.facultyService.UpdateFaculty(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, member)
}

// DeleteFaculty handles DELETE /api/faculty/:id.
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAssignments handles GET /api/faculty-subjects?facultyId=&subjectId=&sectionId=.
func (c *FacultyController) GetAssignments(ctx *gin.Context) {
	assignments, err := c.facultyService.GetAssignments(ctx,
		queryInt64(ctx, "facultyId"), queryInt64(ctx, "subjectId"), queryInt64(ctx, "sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(assignments))
}

// CreateAssignment handles POST /api/faculty-subjects.
func (c *FacultyController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateFacultySubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	assignment, err := c.facultyService.CreateAssignment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment handles DELETE /api/faculty-subjects/:id.
func (c *FacultyController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.DeleteAssignment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
