// Package models defines the core data structures for the marketing agent.
//
// It includes the campaign type and channel enums, content items, flow steps and the
// assembled campaign, which are shared across modules.
package models

import (
	"errors"
	"strings"
	"time"
)

// CampaignType selects the interleaving policy and trigger catalogs for a campaign.
type CampaignType string

const (
	// CampaignTypeCartAbandonment recovers shoppers who left items in their cart.
	CampaignTypeCartAbandonment CampaignType = "cart_abandonment"
	// CampaignTypeWelcomeSeries onboards new subscribers.
	CampaignTypeWelcomeSeries CampaignType = "welcome_series"
	// CampaignTypeWinBack re-engages inactive customers.
	CampaignTypeWinBack CampaignType = "win_back"
	// CampaignTypePostPurchase follows up after an order.
	CampaignTypePostPurchase CampaignType = "post_purchase"
	// CampaignTypeGeneral is the catch-all sequential campaign.
	CampaignTypeGeneral CampaignType = "general"
)

// AllCampaignTypes lists every supported campaign type in declaration order.
var AllCampaignTypes = []CampaignType{
	CampaignTypeCartAbandonment,
	CampaignTypeWelcomeSeries,
	CampaignTypeWinBack,
	CampaignTypePostPurchase,
	CampaignTypeGeneral,
}

// IsValidCampaignType checks if the given campaign type is supported.
func IsValidCampaignType(ct CampaignType) bool {
	switch ct {
	case CampaignTypeCartAbandonment, CampaignTypeWelcomeSeries, CampaignTypeWinBack,
		CampaignTypePostPurchase, CampaignTypeGeneral:
		return true
	default:
		return false
	}
}

// ParseCampaignType resolves a free-form string to a CampaignType.
// Unrecognized values resolve to CampaignTypeGeneral rather than failing.
func ParseCampaignType(s string) CampaignType {
	ct := CampaignType(strings.ToLower(strings.TrimSpace(s)))
	if IsValidCampaignType(ct) {
		return ct
	}
	return CampaignTypeGeneral
}

// Channel identifies the delivery channel of a touchpoint.
type Channel string

const (
	// ChannelEmail is an email touchpoint.
	ChannelEmail Channel = "email"
	// ChannelSMS is an SMS touchpoint.
	ChannelSMS Channel = "sms"
)

// IsTouchpoint reports whether the channel counts as a campaign touchpoint.
func (c Channel) IsTouchpoint() bool {
	return c == ChannelEmail || c == ChannelSMS
}

// ContentStatus records how a content item was produced.
type ContentStatus string

const (
	// ContentStatusGenerated means the collaborator returned a well-formed JSON payload.
	ContentStatusGenerated ContentStatus = "generated"
	// ContentStatusTextParsed means the payload was recovered heuristically from free text.
	ContentStatusTextParsed ContentStatus = "text_parsed"
	// ContentStatusFallback means static template content was used.
	ContentStatusFallback ContentStatus = "fallback"
)

// ContentItem is a single generated email or SMS.
type ContentItem struct {
	Channel Channel       `json:"channel"`
	Step    int           `json:"step"`
	Purpose string        `json:"purpose"`
	Delay   string        `json:"delay,omitempty"`
	Subject string        `json:"subject,omitempty"` // email only
	Body    string        `json:"body,omitempty"`    // email only
	CTA     string        `json:"cta,omitempty"`     // email only
	Message string        `json:"message,omitempty"` // sms only
	Status  ContentStatus `json:"status,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Text returns the main text of the item: the body for email, the message for SMS.
func (c ContentItem) Text() string {
	if c.Channel == ChannelSMS {
		return c.Message
	}
	return c.Body
}

// Trigger is an external event that starts or advances a flow.
type Trigger struct {
	Event string `json:"event"`
	Delay string `json:"delay"`
}

// FlowStep is one timed touchpoint in an assembled flow.
type FlowStep struct {
	Step       int      `json:"step"`
	Type       Channel  `json:"type"`
	Delay      string   `json:"delay"`
	ContentID  string   `json:"content_id"`
	Summary    string   `json:"summary_text"`
	Purpose    string   `json:"purpose"`
	Conditions []string `json:"conditions"`
}

// FlowLogic is the assembled, ordered touchpoint sequence with its derived metadata.
type FlowLogic struct {
	CampaignType      CampaignType `json:"campaign_type"`
	TotalSteps        int          `json:"total_steps"`
	Steps             []FlowStep   `json:"steps"`
	Triggers          []Trigger    `json:"triggers"`
	ExitConditions    []string     `json:"exit_conditions"`
	EstimatedDuration string       `json:"estimated_duration"`
	TouchpointCount   int          `json:"touchpoint_count"`
}

// BrandInfo is the brand context used for prompts and visuals.
type BrandInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
}

// CampaignContext carries the opaque context strings passed into content prompts.
type CampaignContext struct {
	CampaignType   CampaignType `json:"campaign_type"`
	BrandName      string       `json:"brand_name,omitempty"`
	BrandCategory  string       `json:"brand_category,omitempty"`
	BrandTone      string       `json:"brand_tone"`
	TargetAudience string       `json:"target_audience"`
	BrandContext   string       `json:"brand_context,omitempty"`
}

// VisualKind classifies a generated visual asset.
type VisualKind string

const (
	VisualKindHeader      VisualKind = "header"
	VisualKindEmailBanner VisualKind = "email_banner"
	VisualKindPlaceholder VisualKind = "placeholder"
)

// VisualStatus records how a visual asset was produced.
type VisualStatus string

const (
	// VisualStatusGenerated means the image collaborator returned an image.
	VisualStatusGenerated VisualStatus = "generated"
	// VisualStatusLocal means the image was rendered locally as a branded placeholder.
	VisualStatusLocal VisualStatus = "brand_visual_generated"
	// VisualStatusTextPlaceholder means only placeholder text is available.
	VisualStatusTextPlaceholder VisualStatus = "text_placeholder"
	// VisualStatusError means the asset could not be produced at all.
	VisualStatusError VisualStatus = "error"
)

// VisualAsset is a generated (or placeholder) campaign image.
type VisualAsset struct {
	Type            VisualKind   `json:"type"`
	Purpose         string       `json:"purpose"`
	Description     string       `json:"description"`
	Prompt          string       `json:"prompt,omitempty"`
	ImageData       []byte       `json:"-"`
	ImageBase64     string       `json:"image_base64,omitempty"` // data URI
	PlaceholderText string       `json:"placeholder_text,omitempty"`
	Status          VisualStatus `json:"status"`
	Model           string       `json:"model,omitempty"`
	EmailStep       int          `json:"email_step,omitempty"`
	Error           string       `json:"error,omitempty"`
}

// Campaign is the final campaign object embedded into exports.
type Campaign struct {
	ID             string           `json:"id"`
	CampaignType   CampaignType     `json:"campaign_type"`
	BrandName      string           `json:"brand_name,omitempty"`
	BrandCategory  string           `json:"brand_category,omitempty"`
	BrandTone      string           `json:"brand_tone"`
	TargetAudience string           `json:"target_audience"`
	BrandContext   string           `json:"brand_context,omitempty"`
	Emails         []ContentItem    `json:"emails"`
	SMSMessages    []ContentItem    `json:"sms_messages"`
	Flow           *FlowLogic       `json:"flow_logic,omitempty"`
	Visuals        []VisualAsset    `json:"visuals"`
	Metadata       CampaignMetadata `json:"metadata"`
}

// CampaignMetadata summarizes how a campaign was generated.
type CampaignMetadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	TotalSteps     int       `json:"total_steps"`
	BrandIndustry  string    `json:"brand_industry,omitempty"`
	KeyObjectives  []string  `json:"key_objectives,omitempty"`
	DegradedItems  int       `json:"degraded_items"`
	DegradedVisual int       `json:"degraded_visuals"`
}

// Error variables for campaign-level validation.
var (
	ErrMissingFlow = errors.New("campaign has no flow logic")
)
