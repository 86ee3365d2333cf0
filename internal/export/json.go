package export

import (
	"time"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/flow"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

type document struct {
	CampaignName      string            `json:"campaign_name"`
	CampaignType      string            `json:"campaign_type"`
	BrandContext      brandContext      `json:"brand_context"`
	FlowConfiguration flowConfiguration `json:"flow_configuration"`
	Messages          []message         `json:"messages"`
	AutomationFlow    any               `json:"automation_flow"`
	Assets            []asset           `json:"assets"`
	Metadata          documentMetadata  `json:"metadata"`
}

type brandContext struct {
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Tone        string `json:"tone"`
	Audience    string `json:"audience"`
	Description string `json:"description"`
}

type flowConfiguration struct {
	TriggerEvent   string   `json:"trigger_event"`
	ExitConditions []string `json:"exit_conditions"`
	TotalSteps     int      `json:"total_steps"`
}

type message struct {
	ID       string          `json:"id"`
	Type     models.Channel  `json:"type"`
	Step     int             `json:"step"`
	Subject  *string         `json:"subject,omitempty"`
	Content  string          `json:"content"`
	CTA      *string         `json:"cta,omitempty"`
	Delay    string          `json:"delay"`
	Purpose  string          `json:"purpose"`
	Metadata messageMetadata `json:"metadata"`
}

type messageMetadata struct {
	CharacterCount    int     `json:"character_count"`
	HasCTA            *bool   `json:"has_cta,omitempty"`
	EstimatedReadTime string  `json:"estimated_read_time,omitempty"`
	SMSSegments       *int    `json:"sms_segments,omitempty"`
	EstimatedCost     float64 `json:"estimated_cost,omitempty"`
}

type automationFlow struct {
	Type                string              `json:"type"`
	Steps               []models.FlowStep   `json:"steps"`
	Triggers            []models.Trigger    `json:"triggers"`
	ExitConditions      []string            `json:"exit_conditions"`
	Settings            flowSettings        `json:"settings"`
	PerformanceTracking performanceTracking `json:"performance_tracking"`
}

type flowSettings struct {
	AllowMultipleEntries bool `json:"allow_multiple_entries"`
	RespectQuietHours    bool `json:"respect_quiet_hours"`
	TimezoneAware        bool `json:"timezone_aware"`
}

type performanceTracking struct {
	TrackOpens       bool `json:"track_opens"`
	TrackClicks      bool `json:"track_clicks"`
	TrackConversions bool `json:"track_conversions"`
	ABTestReady      bool `json:"a_b_test_ready"`
}

type asset struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Purpose     string        `json:"purpose"`
	Description string        `json:"description"`
	Prompt      string        `json:"prompt"`
	URL         string        `json:"url"`
	Status      string        `json:"status,omitempty"`
	Metadata    assetMetadata `json:"metadata"`
}

type assetMetadata struct {
	Format      string `json:"format"`
	Usage       string `json:"usage"`
	AIGenerated bool   `json:"ai_generated"`
}

type documentMetadata struct {
	GeneratedAt       string `json:"generated_at"`
	TotalEmails       int    `json:"total_emails"`
	TotalSMS          int    `json:"total_sms"`
	EstimatedDuration string `json:"estimated_duration"`
}

// JSON renders the nested platform document.
func (e *Exporter) JSON(c *models.Campaign) ([]byte, error) {
	if c == nil {
		return nil, ErrNilCampaign
	}
	ct := models.CampaignType(orDefault(string(c.CampaignType), string(models.CampaignTypeGeneral)))

	exits := []string{}
	duration := "Unknown"
	var automation any = struct{}{}
	if c.Flow != nil {
		exits = append(exits, c.Flow.ExitConditions...)
		duration = c.Flow.EstimatedDuration
		automation = automationFlow{
			Type:           "sequential",
			Steps:          nonNil(c.Flow.Steps),
			Triggers:       nonNil(c.Flow.Triggers),
			ExitConditions: exits,
			Settings:       flowSettings{RespectQuietHours: true, TimezoneAware: true},
			PerformanceTracking: performanceTracking{
				TrackOpens:       true,
				TrackClicks:      true,
				TrackConversions: true,
			},
		}
	}

	generatedAt := c.Metadata.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = e.now()
	}

	doc := document{
		CampaignName: e.CampaignName(c),
		CampaignType: string(ct),
		BrandContext: brandContext{
			Name:        c.BrandName,
			Category:    c.BrandCategory,
			Tone:        orDefault(c.BrandTone, "Friendly"),
			Audience:    orDefault(c.TargetAudience, "General"),
			Description: c.BrandContext,
		},
		FlowConfiguration: flowConfiguration{
			TriggerEvent:   flow.MainTrigger(ct),
			ExitConditions: exits,
			TotalSteps:     len(c.Emails) + len(c.SMSMessages),
		},
		Messages:       messages(c),
		AutomationFlow: automation,
		Assets:         assets(c.Visuals),
		Metadata: documentMetadata{
			GeneratedAt:       generatedAt.Format(time.RFC3339),
			TotalEmails:       len(c.Emails),
			TotalSMS:          len(c.SMSMessages),
			EstimatedDuration: duration,
		},
	}
	return encodeJSON(doc)
}

func messages(c *models.Campaign) []message {
	out := make([]message, 0, len(c.Emails)+len(c.SMSMessages))
	for i, email := range c.Emails {
		hasCTA := email.CTA != ""
		out = append(out, message{
			ID:      flow.ContentID(models.ChannelEmail, i),
			Type:    models.ChannelEmail,
			Step:    i + 1,
			Subject: &email.Subject,
			Content: email.Body,
			CTA:     &email.CTA,
			Delay:   orDefault(email.Delay, "1 day"),
			Purpose: orDefault(email.Purpose, "General"),
			Metadata: messageMetadata{
				CharacterCount:    CharacterCount(email.Body),
				HasCTA:            &hasCTA,
				EstimatedReadTime: ReadTime(email.Body),
			},
		})
	}
	for i, sms := range c.SMSMessages {
		segments := SMSSegments(sms.Message)
		out = append(out, message{
			ID:      flow.ContentID(models.ChannelSMS, i),
			Type:    models.ChannelSMS,
			Step:    len(c.Emails) + i + 1,
			Content: sms.Message,
			Delay:   orDefault(sms.Delay, "1 day"),
			Purpose: orDefault(sms.Purpose, "General"),
			Metadata: messageMetadata{
				CharacterCount: CharacterCount(sms.Message),
				SMSSegments:    &segments,
				EstimatedCost:  SMSCost(segments),
			},
		})
	}
	return out
}

func assets(visuals []models.VisualAsset) []asset {
	out := make([]asset, 0, len(visuals))
	for i, v := range visuals {
		kind := orDefault(string(v.Type), "image")
		out = append(out, asset{
			ID:          assetID(i),
			Type:        kind,
			Purpose:     v.Purpose,
			Description: v.Description,
			Prompt:      v.Prompt,
			URL:         v.ImageBase64,
			Status:      string(v.Status),
			Metadata: assetMetadata{
				Format:      "png",
				Usage:       orDefault(string(v.Type), string(models.VisualKindHeader)),
				AIGenerated: v.Status == models.VisualStatusGenerated,
			},
		})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
