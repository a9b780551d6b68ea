package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/http/response"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/services"
)

// ExportHandler serves the rendered assets as downloadable attachments.
type ExportHandler struct {
	log *logger.Logger
	svc services.ExportService
}

func NewExportHandler(log *logger.Logger, svc services.ExportService) *ExportHandler {
	return &ExportHandler{log: log.With("handler", "ExportHandler"), svc: svc}
}

func (h *ExportHandler) ExportCard(c *gin.Context) {
	var req services.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	asset, err := h.svc.ExportCard(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, asset)
}

func (h *ExportHandler) ExportStory(c *gin.Context) {
	var req services.StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	asset, err := h.svc.ExportStory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, asset)
}

func (h *ExportHandler) ExportPost(c *gin.Context) {
	var req services.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	asset, err := h.svc.ExportPost(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, asset)
}

func (h *ExportHandler) ExportWeeklyPost(c *gin.Context) {
	var req services.WeeklyPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	asset, err := h.svc.ExportWeeklyPost(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, asset)
}

func (h *ExportHandler) ExportWeeklyStory(c *gin.Context) {
	var req services.WeeklyStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	asset, err := h.svc.ExportWeeklyStory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, asset)
}

func writeAttachment(c *gin.Context, asset *services.Asset) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.FileName))
	c.Data(http.StatusOK, asset.ContentType, asset.Data)
}
