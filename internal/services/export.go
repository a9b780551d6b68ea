package services

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/export"
	"github.com/brainzones/strategy-studio-backend/internal/platform/apierr"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/render"
	"github.com/brainzones/strategy-studio-backend/internal/slides"
)

// SlideRenderer is the rasterization surface the exporter depends on.
type SlideRenderer interface {
	RenderSlide(ctx context.Context, slide domain.SlideDescriptor, format render.Format) (image.Image, error)
	RenderStory(ctx context.Context, s domain.Strategy, imageRef string, gradient domain.Gradient, hook string) (image.Image, error)
	RenderCard(ctx context.Context, s domain.Strategy, imageRef string, gradient domain.Gradient) (image.Image, error)
}

// Asset is a finished downloadable file.
type Asset struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CardRequest struct {
	Strategy domain.Strategy `json:"strategy"`
	Image    string          `json:"image"`
	Gradient string          `json:"gradient"`
}

type StoryRequest struct {
	Strategy domain.Strategy `json:"strategy"`
	Image    string          `json:"image"`
	Gradient string          `json:"gradient"`
	Hook     string          `json:"hook"`
}

type PostRequest struct {
	Strategy domain.Strategy `json:"strategy"`
	Image    string          `json:"image"`
	Gradient string          `json:"gradient"`
}

type WeeklyPostRequest struct {
	Strategies []domain.WeeklyStrategy `json:"strategies"`
	Article    domain.ArticleContent   `json:"article"`
}

type WeeklyStoryRequest struct {
	Strategies []domain.WeeklyStrategy `json:"strategies"`
}

// ExportService produces the downloadable assets. At most one export runs
// per process; a second request while one is in flight is rejected with 409
// rather than queued.
type ExportService interface {
	ExportCard(ctx context.Context, req CardRequest) (*Asset, error)
	ExportStory(ctx context.Context, req StoryRequest) (*Asset, error)
	ExportPost(ctx context.Context, req PostRequest) (*Asset, error)
	ExportWeeklyPost(ctx context.Context, req WeeklyPostRequest) (*Asset, error)
	ExportWeeklyStory(ctx context.Context, req WeeklyStoryRequest) (*Asset, error)
}

func NewExportService(log *logger.Logger, renderer SlideRenderer, assist AssistService) (ExportService, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	if assist == nil {
		return nil, fmt.Errorf("assist service required")
	}
	return &exportService{
		log:      log.With("service", "ExportService"),
		renderer: renderer,
		assist:   assist,
	}, nil
}

type exportService struct {
	log      *logger.Logger
	renderer SlideRenderer
	assist   AssistService
	busy     atomic.Bool
}

func (s *exportService) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return apierr.New(http.StatusConflict, fmt.Errorf("an export is already in progress"))
	}
	return nil
}

func (s *exportService) release() { s.busy.Store(false) }

func (s *exportService) ExportCard(ctx context.Context, req CardRequest) (*Asset, error) {
	if strings.TrimSpace(req.Strategy.Title) == "" {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("strategy title is required"))
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	img, err := s.renderer.RenderCard(ctx, req.Strategy, req.Image, domain.LookupGradient(req.Gradient))
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, err)
	}
	data, err := export.EncodePNG(img)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, err)
	}
	s.log.Info("card exported", "title", req.Strategy.Title, "bytes", len(data))
	return &Asset{
		FileName:    export.CardFileName(req.Strategy.Title),
		ContentType: "image/png",
		Data:        data,
	}, nil
}

func (s *exportService) ExportStory(ctx context.Context, req StoryRequest) (*Asset, error) {
	if strings.TrimSpace(req.Strategy.Title) == "" {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("strategy title is required"))
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	hook := strings.TrimSpace(req.Hook)
	if hook == "" {
		generated, err := s.assist.GenerateStoryHook(ctx, req.Strategy.Title, req.Strategy.HowTo)
		if err != nil {
			return nil, err
		}
		hook = generated
	}

	img, err := s.renderer.RenderStory(ctx, req.Strategy, req.Image, domain.LookupGradient(req.Gradient), hook)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, err)
	}
	data, err := export.EncodePNG(img)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, err)
	}
	s.log.Info("story exported", "title", req.Strategy.Title, "bytes", len(data))
	return &Asset{
		FileName:    export.StoryFileName(req.Strategy.Title),
		ContentType: "image/png",
		Data:        data,
	}, nil
}

func (s *exportService) ExportPost(ctx context.Context, req PostRequest) (*Asset, error) {
	if strings.TrimSpace(req.Strategy.Title) == "" {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("strategy title is required"))
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	seq := slides.BuildPostSequence(req.Strategy, req.Image, domain.LookupGradient(req.Gradient))
	archive, err := s.renderArchive(ctx, seq, render.FormatPost)
	if err != nil {
		return nil, err
	}
	s.log.Info("post carousel exported", "title", req.Strategy.Title, "slides", len(seq), "bytes", len(archive))
	return &Asset{
		FileName:    export.PostArchiveName(req.Strategy.Title),
		ContentType: "application/zip",
		Data:        archive,
	}, nil
}

func (s *exportService) ExportWeeklyPost(ctx context.Context, req WeeklyPostRequest) (*Asset, error) {
	if len(req.Strategies) == 0 {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("at least one strategy is required"))
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	seq := slides.BuildWeeklyPostSequence(req.Strategies, req.Article)
	archive, err := s.renderArchive(ctx, seq, render.FormatPost)
	if err != nil {
		return nil, err
	}
	s.log.Info("weekly post carousel exported", "strategies", len(req.Strategies), "slides", len(seq), "bytes", len(archive))
	return &Asset{
		FileName:    export.WeeklyPostArchiveName,
		ContentType: "application/zip",
		Data:        archive,
	}, nil
}

func (s *exportService) ExportWeeklyStory(ctx context.Context, req WeeklyStoryRequest) (*Asset, error) {
	if len(req.Strategies) == 0 {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("at least one strategy is required"))
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	seq := slides.BuildWeeklyStorySequence(req.Strategies)
	archive, err := s.renderArchive(ctx, seq, render.FormatStory)
	if err != nil {
		return nil, err
	}
	s.log.Info("weekly story carousel exported", "strategies", len(req.Strategies), "slides", len(seq), "bytes", len(archive))
	return &Asset{
		FileName:    export.WeeklyStoryArchiveName,
		ContentType: "application/zip",
		Data:        archive,
	}, nil
}

// renderArchive walks the sequence front to back, rasterizing and encoding
// each slide in turn. Any failure aborts the whole export; no partial
// archive is ever produced.
func (s *exportService) renderArchive(ctx context.Context, seq []domain.SlideDescriptor, format render.Format) ([]byte, error) {
	if len(seq) == 0 {
		return nil, apierr.New(http.StatusBadRequest, fmt.Errorf("nothing to export"))
	}

	cursor := slides.NewCarousel(slides.Clamp, len(seq))
	encoded := make([][]byte, 0, len(seq))
	for {
		at := cursor.Index()
		img, err := s.renderer.RenderSlide(ctx, seq[at], format)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, fmt.Errorf("slide %d: %w", at+1, err))
		}
		data, err := export.EncodePNG(img)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, fmt.Errorf("slide %d: %w", at+1, err))
		}
		encoded = append(encoded, data)

		cursor.Next()
		if cursor.Index() == at {
			break
		}
	}

	archive, err := export.BuildArchive(encoded)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, err)
	}
	return archive, nil
}
