package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// ProgramController handles program, class and section endpoints.
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController.
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// GetAllPrograms handles GET /api/programs.
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(programs))
}

// GetProgramByID handles GET /api/programs/:id.
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	program, err := c.programService.GetProgramByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, program)
}

// CreateProgram handles POST /api/programs.
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	program, err := c.programService.CreateProgram(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, program)
}

// UpdateProgram handles PUT /api/programs/:id.
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	program, err := c.programService.UpdateProgram(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, program)
}

// DeleteProgram handles DELETE /api/programs/:id.
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllClasses handles GET /api/classes?programId=.
func (c *ProgramController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.programService.GetAllClasses(ctx, queryInt64(ctx, "programId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(classes))
}

// GetClassByID handles GET /api/classes/:id.
func (c *ProgramController) GetClassByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	class, err := c.programService.GetClassByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, class)
}

// CreateClass handles POST /api/classes.
func (c *ProgramController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	class, err := c.programService.CreateClass(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, class)
}

// UpdateClass handles PUT /api/classes/:id.
func (c *ProgramController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	class, err := c.programService.UpdateClass(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, class)
}

// DeleteClass handles DELETE /api/classes/:id.
func (c *ProgramController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.programService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllSections handles GET /api/sections?classId=.
func (c *ProgramController) GetAllSections(ctx *gin.Context) {
	sections, err := c.programService.GetAllSections(ctx, queryInt64(ctx, "classId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(sections))
}

// GetSectionByID handles GET /api/sections/:id.
func (c *ProgramController) GetSectionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	section, err := c.programService.GetSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, section)
}

// CreateSection handles POST /api/sections.
func (c *ProgramController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	section, err := c.programService.CreateSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, section)
}

// UpdateSection handles PUT /api/sections/:id.
func (c *ProgramController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateSectionRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	section, err := c.programService.UpdateSection(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, section)
}

// DeleteSection handles DELETE /api/sections/:id.
func (c *ProgramController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.programService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
