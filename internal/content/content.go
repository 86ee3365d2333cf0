// Package content generates email and SMS copy for campaign slots through the text
// generation collaborator, degrading to deterministic templates when it fails.
package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/delay"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/jsonextract"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// DefaultTimeout bounds a single collaborator call.
const DefaultTimeout = 20 * time.Second

// ErrEmptyContent is recorded when the collaborator answered with nothing usable.
var ErrEmptyContent = errors.New("collaborator returned empty content")

// TextGenerator completes a single prompt.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces content items. A nil TextGenerator makes every item a fallback.
type Generator struct {
	text    TextGenerator
	timeout time.Duration
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

// NewGenerator creates a content generator.
func NewGenerator(text TextGenerator, opts ...Option) *Generator {
	cfg := Opts{Timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{text: text, timeout: cfg.Timeout}
}

// Email generates the email for a purpose slot. step is 1-based.
func (g *Generator) Email(ctx context.Context, purpose string, step int, cc models.CampaignContext) models.Result[models.ContentItem] {
	base := models.ContentItem{
		Channel: models.ChannelEmail,
		Step:    step,
		Purpose: purpose,
		Delay:   delay.ForEmail(cc.CampaignType, step),
	}

	resp, err := g.complete(ctx, emailPrompt(purpose, step, cc))
	if err != nil {
		return g.degrade(fallbackEmail(base, cc), err, "Generator.Email")
	}

	item := base
	if obj, xerr := jsonextract.FirstObject(resp); xerr == nil {
		item.Subject = strings.TrimSpace(jsonextract.String(obj, "subject"))
		item.Body = strings.TrimSpace(jsonextract.String(obj, "body"))
		item.CTA = strings.TrimSpace(jsonextract.String(obj, "cta"))
		item.Status = models.ContentStatusGenerated
		if item.Subject == "" && item.Body == "" {
			return g.degrade(fallbackEmail(base, cc), ErrEmptyContent, "Generator.Email")
		}
		fillEmailDefaults(&item, cc)
		return models.OK(item)
	}

	if strings.TrimSpace(resp) == "" {
		return g.degrade(fallbackEmail(base, cc), ErrEmptyContent, "Generator.Email")
	}
	parseEmailText(&item, resp)
	item.Status = models.ContentStatusTextParsed
	slog.Debug("Generator.Email: no JSON in response, parsed from text", "step", step, "purpose", purpose)
	return models.Degraded(item, models.ErrorKindMalformed, jsonextract.ErrNoObject)
}

// SMS generates the SMS for a purpose slot. step is 1-based.
func (g *Generator) SMS(ctx context.Context, purpose string, step int, cc models.CampaignContext) models.Result[models.ContentItem] {
	base := models.ContentItem{
		Channel: models.ChannelSMS,
		Step:    step,
		Purpose: purpose,
		Delay:   delay.ForSMS(cc.CampaignType, step),
	}

	resp, err := g.complete(ctx, smsPrompt(purpose, step, cc))
	if err != nil {
		return g.degrade(fallbackSMS(base), err, "Generator.SMS")
	}

	item := base
	if obj, xerr := jsonextract.FirstObject(resp); xerr == nil {
		item.Message = strings.TrimSpace(jsonextract.String(obj, "message"))
		item.Status = models.ContentStatusGenerated
		if item.Message == "" {
			return g.degrade(fallbackSMS(base), ErrEmptyContent, "Generator.SMS")
		}
		return models.OK(item)
	}

	item.Message = strings.TrimSpace(resp)
	if item.Message == "" {
		return g.degrade(fallbackSMS(base), ErrEmptyContent, "Generator.SMS")
	}
	item.Status = models.ContentStatusTextParsed
	slog.Debug("Generator.SMS: no JSON in response, using raw text", "step", step, "purpose", purpose)
	return models.Degraded(item, models.ErrorKindMalformed, jsonextract.ErrNoObject)
}

// complete runs one bounded collaborator call.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.text == nil {
		return "", errUnavailable
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.text.Complete(ctx, prompt)
}

var errUnavailable = errors.New("text generation collaborator not configured")

func (g *Generator) degrade(item models.ContentItem, err error, op string) models.Result[models.ContentItem] {
	kind := models.ClassifyError(err)
	switch {
	case errors.Is(err, errUnavailable):
		kind = models.ErrorKindUnavailable
	case errors.Is(err, ErrEmptyContent):
		kind = models.ErrorKindMalformed
	}
	item.Error = err.Error()
	if kind != models.ErrorKindUnavailable {
		slog.Warn(op+": using fallback content", "step", item.Step, "purpose", item.Purpose, "reason", kind, "error", err)
	}
	return models.Degraded(item, kind, err)
}
