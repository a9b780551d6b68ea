package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/http/response"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/services"
)

type ScheduleHandler struct {
	log *logger.Logger
	svc services.ScheduleService
}

func NewScheduleHandler(log *logger.Logger, svc services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{log: log.With("handler", "ScheduleHandler"), svc: svc}
}

type scheduleRequest struct {
	Caption string   `json:"caption"`
	Images  []string `json:"images"`
}

func (h *ScheduleHandler) ScheduleWithZoho(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.svc.Schedule(c.Request.Context(), req.Caption, req.Images); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Post successfully scheduled to Zoho Social!")
}
