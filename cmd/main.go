package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brainzones/strategy-studio-backend/internal/clients/gemini"
	"github.com/brainzones/strategy-studio-backend/internal/clients/zoho"
	apphttp "github.com/brainzones/strategy-studio-backend/internal/http"
	"github.com/brainzones/strategy-studio-backend/internal/http/handlers"
	"github.com/brainzones/strategy-studio-backend/internal/observability"
	"github.com/brainzones/strategy-studio-backend/internal/platform/envutil"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/render"
	"github.com/brainzones/strategy-studio-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "strategy-studio",
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	// Clients
	log.Info("Setting up clients...")
	llm, err := gemini.NewFromEnv(log)
	if err != nil {
		log.Error("Could not init GeminiClient", "error", err)
		os.Exit(1)
	}
	social, err := zoho.NewFromEnv(log)
	if err != nil {
		// Scheduling is optional; the rest of the studio works without it.
		log.Warn("Zoho client unavailable, scheduling disabled", "error", err)
		social = nil
	}

	// Renderer
	renderer, err := render.New(log, render.ConfigFromEnv())
	if err != nil {
		log.Error("Could not init Renderer", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services...")
	assistService, err := services.NewAssistService(log, llm)
	if err != nil {
		log.Error("Could not init AssistService", "error", err)
		os.Exit(1)
	}
	exportService, err := services.NewExportService(log, renderer, assistService)
	if err != nil {
		log.Error("Could not init ExportService", "error", err)
		os.Exit(1)
	}
	var scheduleHandler *handlers.ScheduleHandler
	if social != nil {
		scheduleService, err := services.NewScheduleService(log, social)
		if err != nil {
			log.Error("Could not init ScheduleService", "error", err)
			os.Exit(1)
		}
		scheduleHandler = handlers.NewScheduleHandler(log, scheduleService)
	}

	// HTTP
	server := apphttp.NewServer(apphttp.RouterConfig{
		Log:             log,
		AssistHandler:   handlers.NewAssistHandler(log, assistService),
		ExportHandler:   handlers.NewExportHandler(log, exportService),
		ScheduleHandler: scheduleHandler,
		PreviewHandler:  handlers.NewPreviewHandler(log),
		HealthHandler:   handlers.NewHealthHandler(),
	})

	port := envutil.String("PORT", "8080")
	log.Info("Starting server", "port", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
