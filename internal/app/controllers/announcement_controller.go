package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// AnnouncementController handles announcement endpoints.
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController.
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// GetAllAnnouncements handles GET /api/announcements?targetRole=&programId=&isPinned=.
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	filter := &dto.AnnouncementFilter{
		TargetRole: ctx.Query("targetRole"),
		ProgramID:  queryInt64(ctx, "programId"),
		IsPinned:   queryBool(ctx, "isPinned"),
	}

	announcements, err := c.announcementService.GetAllAnnouncements(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emptyIfNil(announcements))
}

// GetAnnouncementByID handles GET /api/announcements/:id.
func (c *AnnouncementController) GetAnnouncementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	announcement, err := c.announcementService.GetAnnouncementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, announcement)
}

// CreateAnnouncement handles POST /api/announcements.
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	announcement, err := c.announcementService.CreateAnnouncement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement handles PUT /api/announcements/:id.
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	announcement, err := c.announcementService.UpdateAnnouncement(ctx, id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement handles DELETE /api/announcements/:id.
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
