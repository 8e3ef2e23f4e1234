package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// TimetableController handles timetable endpoints.
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController.
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// GetAllEntries handles GET /api/timetable?sectionId=&facultyId=.
func (c *TimetableController) GetAllEntries(ctx *gin.Context) {
	filter := &dto.TimetableFilter{
		SectionID: queryInt64(ctx, "sectionId"),
		FacultyID: queryInt64(ctx, "facultyId"),
	}

	entries, err := c.timetableService.GetAllEntries(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(entries))
}

// GetEntryByID handles GET /api/timetable/:id.
func (c *TimetableController) GetEntryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	entry, err := c.timetableService.GetEntryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// CreateEntry handles POST /api/timetable.
func (c *TimetableController) CreateEntry(ctx *gin.Context) {
	var req dto.CreateTimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entry, err := c.timetableService.CreateEntry(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// UpdateEntry handles PUT /api/timetable/:id.
func (c *TimetableController) UpdateEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateTimetableRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	entry, err := c.timetableService.UpdateEntry(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/timetable/:id.
func (c *TimetableController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.timetableService.DeleteEntry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
