package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/http/response"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/slides"
)

// PreviewHandler returns slide descriptors so the editor can show a
// carousel preview without rasterizing anything server-side.
type PreviewHandler struct {
	log *logger.Logger
}

func NewPreviewHandler(log *logger.Logger) *PreviewHandler {
	return &PreviewHandler{log: log.With("handler", "PreviewHandler")}
}

type previewRequest struct {
	Mode       string                  `json:"mode"`
	Strategy   domain.Strategy         `json:"strategy"`
	Image      string                  `json:"image"`
	Gradient   string                  `json:"gradient"`
	Strategies []domain.WeeklyStrategy `json:"strategies"`
	Article    domain.ArticleContent   `json:"article"`
}

func (h *PreviewHandler) PreviewSlides(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	var seq []domain.SlideDescriptor
	switch req.Mode {
	case "post", "":
		seq = slides.BuildPostSequence(req.Strategy, req.Image, domain.LookupGradient(req.Gradient))
	case "weekly-post":
		seq = slides.BuildWeeklyPostSequence(req.Strategies, req.Article)
	case "weekly-story":
		seq = slides.BuildWeeklyStorySequence(req.Strategies)
	default:
		response.BadRequest(c, fmt.Errorf("unknown preview mode %q", req.Mode))
		return
	}
	response.OK(c, gin.H{"slides": seq})
}

// ListGradients returns the background palette the editor can pick from.
func (h *PreviewHandler) ListGradients(c *gin.Context) {
	response.OK(c, gin.H{"gradients": domain.Gradients()})
}
