// Package visual produces brand-styled campaign imagery: one header plus one banner
// per email. Images come from the image generation collaborator when it answers and
// from a locally drawn placeholder when it does not.
package visual

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// DefaultTimeout bounds a single image collaborator call.
const DefaultTimeout = 20 * time.Second

const placeholderPromptRunes = 100

var errUnavailable = errors.New("image generator not configured")

// ImageGenerator renders a prompt to image bytes and reports the model used.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, string, error)
}

// Generator builds visual assets. A nil ImageGenerator renders every asset locally.
type Generator struct {
	images  ImageGenerator
	timeout time.Duration
	render  renderFunc
}

// Opts holds configuration for the generator.
type Opts struct {
	Timeout time.Duration
}

// Option configures the generator.
type Option func(*Opts)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *Opts) { o.Timeout = d }
}

// NewGenerator creates a visual generator.
func NewGenerator(images ImageGenerator, opts ...Option) *Generator {
	cfg := Opts{Timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{images: images, timeout: cfg.Timeout, render: renderLocal}
}

// Generate returns the header asset followed by one banner per email, in email order.
// It never fails; assets that could not be generated carry a degraded status.
func (g *Generator) Generate(ctx context.Context, emails []models.ContentItem, cc models.CampaignContext) []models.Result[models.VisualAsset] {
	name := brandName(cc.BrandName)
	out := make([]models.Result[models.VisualAsset], 0, len(emails)+1)

	header := models.VisualAsset{
		Type:        models.VisualKindHeader,
		Purpose:     fmt.Sprintf("%s Campaign Header", name),
		Description: fmt.Sprintf("Brand header for %s (%s) %s campaign", name, cc.BrandCategory, cc.CampaignType),
		Prompt:      HeaderPrompt(name, cc.BrandCategory),
	}
	out = append(out, g.produce(ctx, header, name, cc.BrandCategory))

	for i, email := range emails {
		n := i + 1
		step := email.Step
		if step <= 0 {
			step = n
		}
		purpose := email.Purpose
		if purpose == "" {
			purpose = "General"
		}
		subject := email.Subject
		if subject == "" {
			subject = "No subject"
		}
		banner := models.VisualAsset{
			Type:        models.VisualKindEmailBanner,
			Purpose:     fmt.Sprintf("%s Email %d - %s", name, n, purpose),
			Description: fmt.Sprintf("Brand visual for %s email: %s", name, subject),
			Prompt:      EmailPrompt(name, cc.BrandCategory, step),
			EmailStep:   n,
		}
		out = append(out, g.produce(ctx, banner, name, cc.BrandCategory))
	}

	slog.Debug("Generator.Generate: visuals produced", "brand", name, "count", len(out))
	return out
}

// produce fills the image fields of asset, trying the collaborator, then the local
// renderer, then a text placeholder.
func (g *Generator) produce(ctx context.Context, asset models.VisualAsset, name, category string) models.Result[models.VisualAsset] {
	img, model, err := g.generate(ctx, asset.Prompt)
	if err == nil {
		asset.ImageData = img
		asset.ImageBase64 = dataURI(http.DetectContentType(img), img)
		asset.Status = models.VisualStatusGenerated
		asset.Model = model
		return models.OK(asset)
	}

	reason := models.ClassifyError(err)
	if errors.Is(err, errUnavailable) {
		reason = models.ErrorKindUnavailable
	} else {
		slog.Warn("Generator.produce: image generation failed, rendering locally", "purpose", asset.Purpose, "reason", reason, "error", err)
	}
	asset.Error = err.Error()

	r, rerr := g.render(name, category)
	if rerr != nil {
		slog.Warn("Generator.produce: local render failed, using text placeholder", "purpose", asset.Purpose, "error", rerr)
		asset.PlaceholderText = "Visual for: " + clip(asset.Prompt, placeholderPromptRunes)
		asset.Status = models.VisualStatusTextPlaceholder
		asset.Model = "none"
		asset.Error = errors.Join(err, rerr).Error()
		return models.Degraded(asset, reason, errors.Join(err, rerr))
	}

	asset.ImageData = r.PNG
	asset.ImageBase64 = dataURI("image/png", r.PNG)
	asset.Status = models.VisualStatusLocal
	asset.Model = r.Model
	return models.Degraded(asset, reason, err)
}

func (g *Generator) generate(ctx context.Context, prompt string) ([]byte, string, error) {
	if g.images == nil {
		return nil, "", errUnavailable
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	img, model, err := g.images.Generate(ctx, prompt)
	if err != nil {
		return nil, "", err
	}
	if len(img) == 0 {
		return nil, "", errors.New("image generator returned no data")
	}
	return img, model, nil
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Values strips the result wrappers, keeping asset order.
func Values(results []models.Result[models.VisualAsset]) []models.VisualAsset {
	out := make([]models.VisualAsset, 0, len(results))
	for _, r := range results {
		out = append(out, r.Value)
	}
	return out
}
