// Package services holds the application services behind the HTTP handlers:
// content assist, asset export, and social scheduling.
package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/brainzones/strategy-studio-backend/internal/clients/gemini"
	"github.com/brainzones/strategy-studio-backend/internal/platform/apierr"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/richtext"
)

// AssistService proxies the generative-text API for the editor's four assist
// actions. Rich-text inputs are flattened to plain text before prompting;
// single-sentence outputs are trimmed and stripped of surrounding quotes.
type AssistService interface {
	GenerateResearch(ctx context.Context, title, howTo string) (string, error)
	GenerateStoryHook(ctx context.Context, title, howTo string) (string, error)
	GenerateStrategySummary(ctx context.Context, title string) (string, error)
	SummarizeResearch(ctx context.Context, research string) (string, error)
}

func NewAssistService(log *logger.Logger, llm gemini.Client) (AssistService, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if llm == nil {
		return nil, fmt.Errorf("gemini client required")
	}
	return &assistService{
		log: log.With("service", "AssistService"),
		llm: llm,
	}, nil
}

type assistService struct {
	log *logger.Logger
	llm gemini.Client
}

func (s *assistService) GenerateResearch(ctx context.Context, title, howTo string) (string, error) {
	title = strings.TrimSpace(title)
	howTo = strings.TrimSpace(richtext.StripTags(howTo))
	if title == "" || howTo == "" {
		return "", apierr.New(http.StatusBadRequest, fmt.Errorf("title and howTo are required"))
	}
	out, err := s.llm.GenerateText(ctx, researchPrompt(title, howTo), gemini.GenerateOptions{})
	if err != nil {
		return "", apierr.New(http.StatusInternalServerError, fmt.Errorf("failed to generate research points: %w", err))
	}
	return requireText(out, "failed to generate research points")
}

func (s *assistService) GenerateStoryHook(ctx context.Context, title, howTo string) (string, error) {
	title = strings.TrimSpace(title)
	howTo = strings.TrimSpace(richtext.StripTags(howTo))
	if title == "" || howTo == "" {
		return "", apierr.New(http.StatusBadRequest, fmt.Errorf("title and howTo are required"))
	}
	temp := float32(0.9)
	budget := int32(0)
	out, err := s.llm.GenerateText(ctx, storyHookPrompt(title, howTo), gemini.GenerateOptions{
		Temperature:    &temp,
		ThinkingBudget: &budget,
	})
	if err != nil {
		return "", apierr.New(http.StatusInternalServerError, fmt.Errorf("failed to generate story hook: %w", err))
	}
	return requireText(stripQuotes(out), "failed to generate story hook")
}

func (s *assistService) GenerateStrategySummary(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apierr.New(http.StatusBadRequest, fmt.Errorf("title is required"))
	}
	temp := float32(0.8)
	out, err := s.llm.GenerateText(ctx, strategySummaryPrompt(title), gemini.GenerateOptions{Temperature: &temp})
	if err != nil {
		return "", apierr.New(http.StatusInternalServerError, fmt.Errorf("failed to generate summary: %w", err))
	}
	return requireText(stripQuotes(out), "failed to generate summary")
}

func (s *assistService) SummarizeResearch(ctx context.Context, research string) (string, error) {
	research = strings.TrimSpace(richtext.StripTags(research))
	if research == "" {
		return "", apierr.New(http.StatusBadRequest, fmt.Errorf("research text is required"))
	}
	out, err := s.llm.GenerateText(ctx, summarizeResearchPrompt(research), gemini.GenerateOptions{})
	if err != nil {
		return "", apierr.New(http.StatusInternalServerError, fmt.Errorf("failed to summarize research: %w", err))
	}
	return requireText(out, "failed to summarize research")
}

// requireText rejects a blank completion so empty model output surfaces as
// an error instead of flowing downstream as content.
func requireText(out, action string) (string, error) {
	if strings.TrimSpace(out) == "" {
		return "", apierr.New(http.StatusInternalServerError, fmt.Errorf("%s: the model returned an empty response", action))
	}
	return out, nil
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
