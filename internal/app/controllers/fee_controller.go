package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// FeeController handles fee structure and challan endpoints.
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController.
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// GetFeeStructures handles GET /api/fee-structures?programId=&classId=.
func (c *FeeController) GetFeeStructures(ctx *gin.Context) {
	filter := &dto.FeeStructureFilter{
		ProgramID: queryInt64(ctx, "programId"),
		ClassID:   queryInt64(ctx, "classId"),
	}

	structures, err := c.feeService.GetFeeStructures(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(structures))
}

// GetFeeStructureByID handles GET /api/fee-structures/:id.
func (c *FeeController) GetFeeStructureByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	structure, err := c.feeService.GetFeeStructureByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, structure)
}

// CreateFeeStructure handles POST /api/fee-structures.
func (c *FeeController) CreateFeeStructure(ctx *gin.Context) {
	var req dto.CreateFeeStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	structure, err := c.feeService.CreateFeeStructure(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, structure)
}

// GetAllFees handles GET /api/fees?studentId=&status=.
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	filter := &dto.FeeFilter{
		StudentID: queryInt64(ctx, "studentId"),
		Status:    ctx.Query("status"),
	}

	fees, err := c.feeService.GetAllFees(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(fees))
}

// GetFeeByID handles GET /api/fees/:id.
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	fee, err := c.feeService.GetFeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fee)
}

// CreateFee handles POST /api/fees.
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	fee, err := c.feeService.CreateFee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, fee)
}

// UpdateFee handles PUT /api/fees/:id.
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	fee, err := c.feeService.UpdateFee(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fee)
}
