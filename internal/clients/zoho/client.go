// Package zoho is a minimal Zoho Social API client covering the publishing
// flow: refresh-token exchange, media upload, post creation.
package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/brainzones/strategy-studio-backend/internal/platform/envutil"
	"github.com/brainzones/strategy-studio-backend/internal/platform/httpx"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
)

type Client interface {
	// RefreshAccessToken exchanges the long-lived refresh token for a fresh
	// access token. Zoho access tokens are short-lived, so every scheduling
	// run starts with an exchange.
	RefreshAccessToken(ctx context.Context) (string, error)

	// UploadMedia uploads one image and returns its media id.
	UploadMedia(ctx context.Context, accessToken string, fileName string, data []byte) (string, error)

	// CreatePost creates a post on the configured brand from previously
	// uploaded media.
	CreatePost(ctx context.Context, accessToken string, message string, mediaIDs []string) error
}

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	BrandID      string
	AccountsURL  string
	APIBaseURL   string
	Timeout      time.Duration
	// MaxRetries applies to transient transport failures only. Uploads are
	// never replayed across a scheduling run; a failed run is surfaced to
	// the caller instead.
	MaxRetries int
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("ZOHO_TIMEOUT_SECONDS", 60)

	return Config{
		ClientID:     strings.TrimSpace(os.Getenv("ZOHO_CLIENT_ID")),
		ClientSecret: strings.TrimSpace(os.Getenv("ZOHO_CLIENT_SECRET")),
		RefreshToken: strings.TrimSpace(os.Getenv("ZOHO_REFRESH_TOKEN")),
		BrandID:      strings.TrimSpace(os.Getenv("ZOHO_BRAND_ID")),
		AccountsURL:  strings.TrimSpace(os.Getenv("ZOHO_ACCOUNTS_URL")),
		APIBaseURL:   strings.TrimSpace(os.Getenv("ZOHO_API_BASE_URL")),
		Timeout:      time.Duration(timeoutSec) * time.Second,
		MaxRetries:   envutil.Int("ZOHO_MAX_RETRIES", 0),
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("missing ZOHO_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("missing ZOHO_CLIENT_SECRET")
	}
	if cfg.RefreshToken == "" {
		return nil, fmt.Errorf("missing ZOHO_REFRESH_TOKEN")
	}
	if cfg.BrandID == "" {
		return nil, fmt.Errorf("missing ZOHO_BRAND_ID")
	}
	if cfg.AccountsURL == "" {
		cfg.AccountsURL = "https://accounts.zoho.com"
	}
	cfg.AccountsURL = strings.TrimRight(cfg.AccountsURL, "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://www.zohoapis.com/social/v1"
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &client{
		log:        log.With("client", "ZohoClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

// do executes a request built fresh per attempt, retrying transient
// failures up to cfg.MaxRetries times. With the default of zero retries
// every failure is surfaced immediately.
func (c *client) do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.cfg.MaxRetries && httpx.IsRetryableError(err) {
				if err := sleepCtx(ctx, httpx.JitterSleep(time.Duration(attempt+1)*500*time.Millisecond)); err != nil {
					return nil, err
				}
				continue
			}
			return nil, lastErr
		}
		if attempt < c.cfg.MaxRetries && httpx.IsRetryableHTTPStatus(resp.StatusCode) {
			wait := httpx.RetryAfterDuration(resp, time.Duration(attempt+1)*500*time.Millisecond, 10*time.Second)
			resp.Body.Close()
			c.log.Warn("retrying zoho request", "status", resp.StatusCode, "attempt", attempt+1)
			if err := sleepCtx(ctx, httpx.JitterSleep(wait)); err != nil {
				return nil, err
			}
			continue
		}
		return resp, nil
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

func (c *client) RefreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"refresh_token": {c.cfg.RefreshToken},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"grant_type":    {"refresh_token"},
	}

	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AccountsURL+"/oauth/v2/token", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("zoho token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("zoho token exchange: decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || tok.AccessToken == "" {
		c.log.Error("token exchange rejected", "status", resp.StatusCode, "zoho_error", tok.Error)
		return "", fmt.Errorf("could not authenticate with Zoho, check your credentials")
	}
	return tok.AccessToken, nil
}

type mediaResponse struct {
	Data struct {
		MediaID string `json:"media_id"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *client) UploadMedia(ctx context.Context, accessToken string, fileName string, data []byte) (string, error) {
	resp, err := c.do(ctx, func() (*http.Request, error) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("media", fileName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(data); err != nil {
			return nil, err
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIBaseURL+"/media", &body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("zoho media upload failed: %w", err)
	}
	defer resp.Body.Close()

	var out mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("zoho media upload: decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || out.Data.MediaID == "" {
		c.log.Error("media upload rejected", "status", resp.StatusCode, "file", fileName, "zoho_message", out.Message)
		return "", fmt.Errorf("failed to upload %s to Zoho Social", fileName)
	}
	return out.Data.MediaID, nil
}

type createPostRequest struct {
	Message  string   `json:"message"`
	MediaIDs []string `json:"media_ids"`
}

func (c *client) CreatePost(ctx context.Context, accessToken string, message string, mediaIDs []string) error {
	payload, err := json.Marshal(createPostRequest{Message: message, MediaIDs: mediaIDs})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/brands/%s/posts", c.cfg.APIBaseURL, url.PathEscape(c.cfg.BrandID))
	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("zoho post creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var out struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &out)
		c.log.Error("post creation rejected", "status", resp.StatusCode, "zoho_message", out.Message)
		if out.Message != "" {
			return fmt.Errorf("%s", out.Message)
		}
		return fmt.Errorf("failed to create post in Zoho Social")
	}
	return nil
}
