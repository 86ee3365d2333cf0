// Package campaign runs campaign generation end to end: brief validation and parsing,
// per-slot content generation, flow assembly and optional visuals.
package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/brief"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/content"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/flow"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/purpose"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/tone"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/visual"
)

// Request is a single campaign generation request.
type Request struct {
	Brief          string `json:"prompt"`
	BrandName      string `json:"brand_name"`
	BrandCategory  string `json:"brand_category"`
	BrandTone      string `json:"brand_tone"`
	TargetAudience string `json:"target_audience"`
	BrandContext   string `json:"brand_context"`
	// CampaignType, EmailCount and SMSCount override what the brief parser found.
	CampaignType   string `json:"campaign_type,omitempty"`
	EmailCount     *int   `json:"email_count,omitempty"`
	SMSCount       *int   `json:"sms_count,omitempty"`
	IncludeVisuals bool   `json:"include_visuals"`
}

// Service generates campaigns. Collaborators are optional; a missing one makes its
// output degrade to templates or local renders.
type Service struct {
	parser  *brief.Parser
	content *content.Generator
	visuals *visual.Generator
	now     func() time.Time
	newID   func() string
}

// Opts holds configuration for the service.
type Opts struct {
	Parser  *brief.Parser
	Content *content.Generator
	Visuals *visual.Generator
	Now     func() time.Time
	NewID   func() string
}

// Option configures the service.
type Option func(*Opts)

// WithParser sets the brief parser.
func WithParser(p *brief.Parser) Option {
	return func(o *Opts) { o.Parser = p }
}

// WithContent sets the content generator.
func WithContent(g *content.Generator) Option {
	return func(o *Opts) { o.Content = g }
}

// WithVisuals sets the visual generator.
func WithVisuals(g *visual.Generator) Option {
	return func(o *Opts) { o.Visuals = g }
}

// WithClock sets the clock used for generation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Opts) { o.Now = now }
}

// WithIDGenerator sets the campaign ID source.
func WithIDGenerator(f func() string) Option {
	return func(o *Opts) { o.NewID = f }
}

// NewService creates a campaign service. Unset collaborators default to offline
// generators that only produce fallback output.
func NewService(opts ...Option) *Service {
	cfg := Opts{Now: time.Now, NewID: uuid.NewString}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Parser == nil {
		cfg.Parser = brief.NewParser(nil, 0)
	}
	if cfg.Content == nil {
		cfg.Content = content.NewGenerator(nil)
	}
	if cfg.Visuals == nil {
		cfg.Visuals = visual.NewGenerator(nil)
	}
	return &Service{
		parser:  cfg.Parser,
		content: cfg.Content,
		visuals: cfg.Visuals,
		now:     cfg.Now,
		newID:   cfg.NewID,
	}
}

// Generate builds a campaign for req. The only errors are brief validation failures
// (a *brief.ValidationError) and a context that is already done; collaborator
// failures are absorbed into degraded items counted in the campaign metadata.
func (s *Service) Generate(ctx context.Context, req Request) (*models.Campaign, error) {
	if err := brief.Validate(req.Brief); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("campaign generation cancelled: %w", err)
	}

	parsed := s.parser.Parse(ctx, req.Brief)
	params := parsed.Value
	if strings.TrimSpace(req.CampaignType) != "" {
		params.CampaignType = models.ParseCampaignType(req.CampaignType)
	}
	params.CampaignType = models.ParseCampaignType(string(params.CampaignType))
	if req.EmailCount != nil {
		params.EmailCount = clamp(*req.EmailCount, brief.MaxEmailCount)
	}
	if req.SMSCount != nil {
		params.SMSCount = clamp(*req.SMSCount, brief.MaxSMSCount)
	}

	cc := models.CampaignContext{
		CampaignType:   params.CampaignType,
		BrandName:      strings.TrimSpace(req.BrandName),
		BrandCategory:  tone.NormalizeCategory(req.BrandCategory),
		BrandTone:      tone.Normalize(req.BrandTone),
		TargetAudience: tone.NormalizeAudience(req.TargetAudience),
		BrandContext:   strings.TrimSpace(req.BrandContext),
	}
	slog.Debug("Service.Generate: parameters resolved", "campaign_type", cc.CampaignType,
		"emails", params.EmailCount, "sms", params.SMSCount, "parse_fallback", parsed.Fallback)

	degraded := 0
	emails := make([]models.ContentItem, 0, params.EmailCount)
	for i, p := range purpose.EmailSlots(cc.CampaignType, params.EmailCount) {
		r := s.content.Email(ctx, p, i+1, cc)
		if r.Fallback {
			degraded++
		}
		emails = append(emails, r.Value)
	}
	sms := make([]models.ContentItem, 0, params.SMSCount)
	for i, p := range purpose.SMSSlots(cc.CampaignType, params.SMSCount) {
		r := s.content.SMS(ctx, p, i+1, cc)
		if r.Fallback {
			degraded++
		}
		sms = append(sms, r.Value)
	}

	logic := flow.BuildFlow(emails, sms, cc.CampaignType)

	visuals := []models.VisualAsset{}
	degradedVisuals := 0
	if req.IncludeVisuals {
		results := s.visuals.Generate(ctx, emails, cc)
		for _, r := range results {
			if r.Fallback {
				degradedVisuals++
			}
		}
		visuals = visual.Values(results)
	}

	c := &models.Campaign{
		ID:             s.newID(),
		CampaignType:   cc.CampaignType,
		BrandName:      cc.BrandName,
		BrandCategory:  cc.BrandCategory,
		BrandTone:      cc.BrandTone,
		TargetAudience: cc.TargetAudience,
		BrandContext:   cc.BrandContext,
		Emails:         emails,
		SMSMessages:    sms,
		Flow:           &logic,
		Visuals:        visuals,
		Metadata: models.CampaignMetadata{
			GeneratedAt:    s.now().UTC(),
			TotalSteps:     logic.TotalSteps,
			BrandIndustry:  params.BrandIndustry,
			KeyObjectives:  params.KeyObjectives,
			DegradedItems:  degraded,
			DegradedVisual: degradedVisuals,
		},
	}
	slog.Info("Service.Generate: campaign generated", "id", c.ID, "campaign_type", c.CampaignType,
		"steps", logic.TotalSteps, "duration", logic.EstimatedDuration,
		"degraded_items", degraded, "degraded_visuals", degradedVisuals)
	return c, nil
}

func clamp(n, hi int) int {
	if n < 0 {
		return 0
	}
	if n > hi {
		return hi
	}
	return n
}
