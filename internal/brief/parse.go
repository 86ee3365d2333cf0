package brief

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/jsonextract"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Count defaults and limits.
const (
	DefaultEmailCount = 5
	DefaultSMSCount   = 2
	MaxEmailCount     = 20
	MaxSMSCount       = 10
)

// Parsed holds the campaign parameters extracted from a brief.
type Parsed struct {
	CampaignType   models.CampaignType `json:"campaign_type"`
	EmailCount     int                 `json:"email_count"`
	SMSCount       int                 `json:"sms_count"`
	BrandIndustry  string              `json:"brand_industry"`
	TargetAudience string              `json:"target_audience"`
	KeyObjectives  []string            `json:"key_objectives"`
}

// TextGenerator completes a single prompt.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Parser turns briefs into campaign parameters, preferring the text generator and
// falling back to keyword matching.
type Parser struct {
	gen     TextGenerator
	timeout time.Duration
}

// NewParser creates a parser. gen may be nil, in which case every brief is parsed by
// keyword matching. A zero timeout disables the per-call deadline.
func NewParser(gen TextGenerator, timeout time.Duration) *Parser {
	return &Parser{gen: gen, timeout: timeout}
}

// Parse extracts campaign parameters from a brief. It never fails: collaborator
// problems degrade to keyword parsing and are reported through the Result.
func (p *Parser) Parse(ctx context.Context, brief string) models.Result[Parsed] {
	fallback := Fallback(brief)
	if p == nil || p.gen == nil {
		return models.Degraded(fallback, models.ErrorKindUnavailable, nil)
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.gen.Complete(callCtx, buildPrompt(brief))
	if err != nil {
		kind := models.ClassifyError(err)
		slog.Warn("Parser.Parse: text generation failed, using keyword parse", "reason", kind, "error", err)
		return models.Degraded(fallback, kind, err)
	}
	obj, err := jsonextract.FirstObject(resp)
	if err != nil {
		slog.Warn("Parser.Parse: no JSON in response, using keyword parse", "error", err)
		return models.Degraded(fallback, models.ErrorKindMalformed, err)
	}

	parsed := merge(obj, fallback)
	slog.Debug("Parser.Parse: brief parsed", "campaign_type", parsed.CampaignType,
		"emails", parsed.EmailCount, "sms", parsed.SMSCount)
	return models.OK(parsed)
}

// merge overlays the fields present in obj onto base.
func merge(obj string, base Parsed) Parsed {
	out := base
	if ct := jsonextract.String(obj, "campaign_type"); ct != "" {
		out.CampaignType = models.ParseCampaignType(ct)
	}
	if n, ok := jsonextract.Int(obj, "email_count"); ok {
		out.EmailCount = clamp(n, MaxEmailCount)
	}
	if n, ok := jsonextract.Int(obj, "sms_count"); ok {
		out.SMSCount = clamp(n, MaxSMSCount)
	}
	if v := jsonextract.String(obj, "brand_industry"); v != "" {
		out.BrandIndustry = v
	}
	if v := jsonextract.String(obj, "target_audience"); v != "" {
		out.TargetAudience = v
	}
	if v := jsonextract.Strings(obj, "key_objectives"); len(v) > 0 {
		out.KeyObjectives = v
	}
	return out
}

func buildPrompt(brief string) string {
	return fmt.Sprintf(`Analyze this marketing campaign request and extract the key parameters in JSON format:

Request: %q

Extract and return ONLY a JSON object with these fields:
{
    "campaign_type": "cart_abandonment|welcome_series|win_back|post_purchase|general",
    "email_count": <number of emails>,
    "sms_count": <number of SMS messages>,
    "brand_industry": "<inferred industry>",
    "target_audience": "<inferred audience>",
    "key_objectives": ["<objective1>", "<objective2>"]
}

Rules:
- If no specific numbers are mentioned, use reasonable defaults (%d emails, %d SMS)
- Infer campaign type from context keywords like "cart abandonment", "welcome", "win-back"
- Return only valid JSON, no explanations`, brief, DefaultEmailCount, DefaultSMSCount)
}

// ---- keyword fallback ----

var numberPattern = regexp.MustCompile(`\d+`)

type keywordRule struct {
	value    string
	keywords []string
}

// Checked in order; the first match wins.
var typeRules = []keywordRule{
	{string(models.CampaignTypeCartAbandonment), []string{"cart abandon", "abandon"}},
	{string(models.CampaignTypeWelcomeSeries), []string{"welcome"}},
	{string(models.CampaignTypeWinBack), []string{"win-back", "winback"}},
	{string(models.CampaignTypePostPurchase), []string{"post-purchase", "post purchase"}},
}

var industryRules = []keywordRule{
	{"skincare", []string{"skincare", "beauty", "cosmetic"}},
	{"fitness", []string{"fitness", "gym", "workout", "health"}},
	{"ecommerce", []string{"store", "shop", "retail", "ecommerce"}},
	{"saas", []string{"saas", "software", "app", "platform"}},
	{"fashion", []string{"fashion", "clothing", "apparel"}},
}

// Fallback parses a brief with keyword matching alone. The first two integers in the
// brief are taken as the email and SMS counts.
func Fallback(brief string) Parsed {
	lower := strings.ToLower(brief)
	p := Parsed{
		CampaignType:   models.CampaignType(match(lower, typeRules, string(models.CampaignTypeGeneral))),
		EmailCount:     DefaultEmailCount,
		SMSCount:       DefaultSMSCount,
		BrandIndustry:  match(lower, industryRules, "general"),
		TargetAudience: "general",
		KeyObjectives:  []string{"engagement", "conversion"},
	}
	nums := numberPattern.FindAllString(brief, 2)
	if len(nums) >= 1 {
		p.EmailCount = atoiClamped(nums[0], MaxEmailCount)
	}
	if len(nums) >= 2 {
		p.SMSCount = atoiClamped(nums[1], MaxSMSCount)
	}
	return p
}

func match(lower string, rules []keywordRule, def string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.value
			}
		}
	}
	return def
}

func atoiClamped(s string, hi int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only overflow reaches here; treat as "as many as allowed".
		return hi
	}
	return clamp(n, hi)
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
