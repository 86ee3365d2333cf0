// Package imagegen calls the Hugging Face inference API to render images from text
// prompts, walking an ordered list of candidate models.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the Hugging Face inference endpoint; the model id is appended.
const DefaultBaseURL = "https://api-inference.huggingface.co/models/"

// DefaultModels are tried in order until one returns an image.
var DefaultModels = []string{
	"runwayml/stable-diffusion-v1-5",
	"stabilityai/stable-diffusion-xl-base-1.0",
	"stabilityai/stable-diffusion-2-1-base",
	"black-forest-labs/FLUX.1-dev",
	"stabilityai/stable-diffusion-3-medium-diffusers",
}

// Generation parameters sent with every request.
const (
	negativePrompt    = "blurry, low quality, distorted"
	inferenceSteps    = 20
	guidanceScale     = 7.5
	maxErrorBodyBytes = 4 << 10
)

var (
	// ErrMissingAPIKey is returned by NewClient when no API key was configured.
	ErrMissingAPIKey = errors.New("image generation API key not set")
	// ErrAllModelsUnavailable is returned when every candidate model failed or was loading.
	ErrAllModelsUnavailable = errors.New("all image models unavailable")
)

// Client is a Hugging Face text-to-image client.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
	models  []string
}

// Opts holds configuration for the client.
type Opts struct {
	APIKey     string
	BaseURL    string
	Models     []string
	HTTPClient *http.Client
}

// Option configures the client.
type Option func(*Opts)

// WithAPIKey sets the API token.
func WithAPIKey(key string) Option {
	return func(o *Opts) { o.APIKey = key }
}

// WithBaseURL overrides the inference endpoint.
func WithBaseURL(url string) Option {
	return func(o *Opts) { o.BaseURL = url }
}

// WithModels replaces the candidate model list.
func WithModels(models ...string) Option {
	return func(o *Opts) { o.Models = models }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Opts) { o.HTTPClient = c }
}

// NewClient creates an image client. An API key is required.
func NewClient(opts ...Option) (*Client, error) {
	cfg := Opts{
		BaseURL: DefaultBaseURL,
		Models:  DefaultModels,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	return &Client{
		http:    cfg.HTTPClient,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		models:  append([]string(nil), cfg.Models...),
	}, nil
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

// errSkipModel marks a model that is loading or returned no image.
var errSkipModel = errors.New("model returned no image")

// Generate renders prompt with the first model that returns an image. It returns the
// image bytes and the model that produced them.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	body, err := json.Marshal(request{
		Inputs: prompt,
		Parameters: parameters{
			NegativePrompt:    negativePrompt,
			NumInferenceSteps: inferenceSteps,
			GuidanceScale:     guidanceScale,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode image request: %w", err)
	}

	var lastErr error
	for _, model := range c.models {
		img, err := c.try(ctx, model, body)
		if err == nil {
			slog.Debug("Client.Generate: image generated", "model", model, "bytes", len(img))
			return img, model, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		slog.Debug("Client.Generate: model failed, trying next", "model", model, "error", err)
		lastErr = err
	}
	if lastErr == nil {
		return nil, "", ErrAllModelsUnavailable
	}
	return nil, "", fmt.Errorf("%w: %v", ErrAllModelsUnavailable, lastErr)
}

func (c *Client) try(ctx context.Context, model string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+model, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK && strings.HasPrefix(resp.Header.Get("Content-Type"), "image"):
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusServiceUnavailable:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if eta := gjson.GetBytes(raw, "estimated_time"); eta.Exists() {
			slog.Debug("Client.try: model loading", "model", model, "estimated_time", eta.Float())
		}
		return nil, fmt.Errorf("%w: %s status %d", errSkipModel, model, resp.StatusCode)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := gjson.GetBytes(raw, "error").String()
		return nil, fmt.Errorf("model %s status %d: %s", model, resp.StatusCode, msg)
	}
}
