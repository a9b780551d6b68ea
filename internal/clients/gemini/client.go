// Package gemini wraps the Google GenAI SDK for the content-assist
// endpoints. Each call is a single prompt in, single text completion out.
package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/brainzones/strategy-studio-backend/internal/platform/envutil"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
)

type Client interface {
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions tunes a single generation. Nil fields keep the model
// defaults.
type GenerateOptions struct {
	Temperature    *float32
	ThinkingBudget *int32
}

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:   envutil.String("GEMINI_MODEL", "gemini-2.5-flash"),
		Timeout: time.Duration(envutil.Int("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	sdk, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &client{
		log: log.With("client", "GeminiClient"),
		cfg: cfg,
		sdk: sdk,
	}, nil
}

type client struct {
	log *logger.Logger
	cfg Config
	sdk *genai.Client
}

func (c *client) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var config *genai.GenerateContentConfig
	if opts.Temperature != nil || opts.ThinkingBudget != nil {
		config = &genai.GenerateContentConfig{Temperature: opts.Temperature}
		if opts.ThinkingBudget != nil {
			config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: opts.ThinkingBudget}
		}
	}

	started := time.Now()
	resp, err := c.sdk.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), config)
	if err != nil {
		c.log.Error("generation failed", "model", c.cfg.Model, "error", err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	c.log.Debug("generation complete",
		"model", c.cfg.Model,
		"duration_ms", time.Since(started).Milliseconds(),
		"output_chars", len(text),
	)
	return text, nil
}
