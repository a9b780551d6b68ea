package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/http/response"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/services"
)

// AssistHandler exposes the four content-assist endpoints backed by the
// generative-text API.
type AssistHandler struct {
	log *logger.Logger
	svc services.AssistService
}

func NewAssistHandler(log *logger.Logger, svc services.AssistService) *AssistHandler {
	return &AssistHandler{log: log.With("handler", "AssistHandler"), svc: svc}
}

type strategyPromptRequest struct {
	Title string `json:"title"`
	HowTo string `json:"howTo"`
}

func (h *AssistHandler) GenerateResearch(c *gin.Context) {
	var req strategyPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	out, err := h.svc.GenerateResearch(c.Request.Context(), req.Title, req.HowTo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"researchHtml": out})
}

func (h *AssistHandler) GenerateStoryHook(c *gin.Context) {
	var req strategyPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	out, err := h.svc.GenerateStoryHook(c.Request.Context(), req.Title, req.HowTo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"hook": out})
}

func (h *AssistHandler) GenerateStrategySummary(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	out, err := h.svc.GenerateStrategySummary(c.Request.Context(), req.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"summary": out})
}

func (h *AssistHandler) SummarizeResearch(c *gin.Context) {
	var req struct {
		Research string `json:"research"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	out, err := h.svc.SummarizeResearch(c.Request.Context(), req.Research)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"summarizedHtml": out})
}
