package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/brainzones/strategy-studio-backend/internal/clients/zoho"
	"github.com/brainzones/strategy-studio-backend/internal/export"
	"github.com/brainzones/strategy-studio-backend/internal/platform/apierr"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
)

// ScheduleService publishes a rendered carousel to Zoho Social: token
// refresh, then one media upload per slide in order, then post creation.
// At most one scheduling run is in flight per process.
type ScheduleService interface {
	Schedule(ctx context.Context, caption string, images []string) error
}

func NewScheduleService(log *logger.Logger, social zoho.Client) (ScheduleService, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if social == nil {
		return nil, fmt.Errorf("zoho client required")
	}
	return &scheduleService{
		log:    log.With("service", "ScheduleService"),
		social: social,
	}, nil
}

type scheduleService struct {
	log    *logger.Logger
	social zoho.Client
	busy   atomic.Bool
}

func (s *scheduleService) Schedule(ctx context.Context, caption string, images []string) error {
	if strings.TrimSpace(caption) == "" || len(images) == 0 {
		return apierr.New(http.StatusBadRequest, fmt.Errorf("caption and images are required"))
	}
	if !s.busy.CompareAndSwap(false, true) {
		return apierr.New(http.StatusConflict, fmt.Errorf("a scheduling run is already in progress"))
	}
	defer s.busy.Store(false)

	// Decode everything up front so credential exchange and uploads only
	// start once the whole payload is known-good.
	slides := make([][]byte, len(images))
	for i, ref := range images {
		data, err := decodeImagePayload(ref)
		if err != nil {
			return apierr.New(http.StatusBadRequest, fmt.Errorf("image #%d: %w", i+1, err))
		}
		slides[i] = data
	}

	token, err := s.social.RefreshAccessToken(ctx)
	if err != nil {
		return apierr.New(http.StatusInternalServerError, err)
	}

	mediaIDs := make([]string, 0, len(slides))
	for i, data := range slides {
		id, err := s.social.UploadMedia(ctx, token, export.EntryName(i), data)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, err)
		}
		mediaIDs = append(mediaIDs, id)
	}

	if err := s.social.CreatePost(ctx, token, caption, mediaIDs); err != nil {
		return apierr.New(http.StatusInternalServerError, err)
	}

	s.log.Info("post scheduled", "slides", len(mediaIDs))
	return nil
}

// decodeImagePayload accepts a base64 data URL or bare base64.
func decodeImagePayload(ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty image payload")
	}
	if idx := strings.Index(ref, ","); strings.HasPrefix(ref, "data:") && idx >= 0 {
		ref = ref[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}
