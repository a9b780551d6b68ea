package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/http/handlers"
	"github.com/brainzones/strategy-studio-backend/internal/platform/apierr"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/services"
)

type fakeAssist struct{}

func (fakeAssist) GenerateResearch(context.Context, string, string) (string, error) {
	return "<li>finding</li>", nil
}
func (fakeAssist) GenerateStoryHook(context.Context, string, string) (string, error) {
	return "A hook.", nil
}
func (fakeAssist) GenerateStrategySummary(context.Context, string) (string, error) {
	return "A summary.", nil
}
func (fakeAssist) SummarizeResearch(context.Context, string) (string, error) {
	return "<li>simple</li>", nil
}

type fakeExport struct {
	asset *services.Asset
	err   error
}

func (f *fakeExport) ExportCard(context.Context, services.CardRequest) (*services.Asset, error) {
	return f.asset, f.err
}
func (f *fakeExport) ExportStory(context.Context, services.StoryRequest) (*services.Asset, error) {
	return f.asset, f.err
}
func (f *fakeExport) ExportPost(context.Context, services.PostRequest) (*services.Asset, error) {
	return f.asset, f.err
}
func (f *fakeExport) ExportWeeklyPost(context.Context, services.WeeklyPostRequest) (*services.Asset, error) {
	return f.asset, f.err
}
func (f *fakeExport) ExportWeeklyStory(context.Context, services.WeeklyStoryRequest) (*services.Asset, error) {
	return f.asset, f.err
}

func newTestRouter(t *testing.T, exp services.ExportService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewRouter(RouterConfig{
		Log:            log,
		AssistHandler:  handlers.NewAssistHandler(log, fakeAssist{}),
		ExportHandler:  handlers.NewExportHandler(log, exp),
		PreviewHandler: handlers.NewPreviewHandler(log),
		HealthHandler:  handlers.NewHealthHandler(),
	})
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t, &fakeExport{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
}

func TestPreviewSlidesShape(t *testing.T) {
	r := newTestRouter(t, &fakeExport{})
	body := `{"mode":"post","strategy":{"title":"Brain Break","howTo":"<h3>One</h3><p>a</p><h3>Two</h3><p>b</p>"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/preview/slides", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Slides []struct {
			Kind string `json:"kind"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	kinds := make([]string, len(out.Slides))
	for i, s := range out.Slides {
		kinds[i] = s.Kind
	}
	want := []string{"title", "howTo", "howTo", "cta"}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestGenerateStoryHookEndpoint(t *testing.T) {
	r := newTestRouter(t, &fakeExport{})
	req := httptest.NewRequest(http.MethodPost, "/api/generateStoryHook", strings.NewReader(`{"title":"T","howTo":"H"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["hook"] != "A hook." {
		t.Fatalf("body = %v", out)
	}
}

func TestExportAttachmentHeaders(t *testing.T) {
	exp := &fakeExport{asset: &services.Asset{
		FileName:    "brain-break-post-carousel.zip",
		ContentType: "application/zip",
		Data:        []byte("zipbytes"),
	}}
	r := newTestRouter(t, exp)
	req := httptest.NewRequest(http.MethodPost, "/api/export/post", strings.NewReader(`{"strategy":{"title":"Brain Break"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="brain-break-post-carousel.zip"` {
		t.Fatalf("disposition = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/zip" {
		t.Fatalf("content type = %q", got)
	}
	if rec.Body.String() != "zipbytes" {
		t.Fatal("attachment body mismatch")
	}
}

func TestErrorEnvelopeIsFlatMessage(t *testing.T) {
	exp := &fakeExport{err: apierr.New(http.StatusConflict, fmt.Errorf("an export is already in progress"))}
	r := newTestRouter(t, exp)
	req := httptest.NewRequest(http.MethodPost, "/api/export/card", strings.NewReader(`{"strategy":{"title":"T"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out["message"] != "an export is already in progress" {
		t.Fatalf("envelope = %v, want flat message object", out)
	}
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	r := newTestRouter(t, &fakeExport{})
	req := httptest.NewRequest(http.MethodPost, "/api/preview/slides", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
