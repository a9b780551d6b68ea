package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/brainzones/strategy-studio-backend/internal/http/handlers"
	httpMW "github.com/brainzones/strategy-studio-backend/internal/http/middleware"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AssistHandler   *httpH.AssistHandler
	ExportHandler   *httpH.ExportHandler
	ScheduleHandler *httpH.ScheduleHandler
	PreviewHandler  *httpH.PreviewHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("strategy-studio"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Content assist
		if cfg.AssistHandler != nil {
			api.POST("/generateResearch", cfg.AssistHandler.GenerateResearch)
			api.POST("/generateStoryHook", cfg.AssistHandler.GenerateStoryHook)
			api.POST("/generateStrategySummary", cfg.AssistHandler.GenerateStrategySummary)
			api.POST("/summarizeResearch", cfg.AssistHandler.SummarizeResearch)
		}

		// Asset export
		if cfg.ExportHandler != nil {
			api.POST("/export/card", cfg.ExportHandler.ExportCard)
			api.POST("/export/story", cfg.ExportHandler.ExportStory)
			api.POST("/export/post", cfg.ExportHandler.ExportPost)
			api.POST("/export/weekly-post", cfg.ExportHandler.ExportWeeklyPost)
			api.POST("/export/weekly-story", cfg.ExportHandler.ExportWeeklyStory)
		}

		// Preview
		if cfg.PreviewHandler != nil {
			api.POST("/preview/slides", cfg.PreviewHandler.PreviewSlides)
			api.GET("/gradients", cfg.PreviewHandler.ListGradients)
		}

		// Scheduling
		if cfg.ScheduleHandler != nil {
			api.POST("/scheduleWithZoho", cfg.ScheduleHandler.ScheduleWithZoho)
		}
	}

	return r
}
