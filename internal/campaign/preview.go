package campaign

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Preview is a short summary of a campaign for display.
type Preview struct {
	Summary           PreviewSummary      `json:"summary"`
	FirstEmail        *models.ContentItem `json:"first_email"`
	FirstSMS          *models.ContentItem `json:"first_sms"`
	EstimatedDuration string              `json:"estimated_duration"`
}

// PreviewSummary holds the headline counts of a preview.
type PreviewSummary struct {
	Type             string `json:"type"`
	TotalEmails      int    `json:"total_emails"`
	TotalSMS         int    `json:"total_sms"`
	TotalTouchpoints int    `json:"total_touchpoints"`
}

// TypeLabel renders a campaign type for humans: "cart_abandonment" becomes
// "Cart Abandonment".
func TypeLabel(ct models.CampaignType) string {
	s := string(ct)
	if s == "" {
		s = string(models.CampaignTypeGeneral)
	}
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// NewPreview summarizes c.
func NewPreview(c *models.Campaign) Preview {
	p := Preview{EstimatedDuration: "Unknown"}
	if c == nil {
		return p
	}
	p.Summary = PreviewSummary{
		Type:             TypeLabel(c.CampaignType),
		TotalEmails:      len(c.Emails),
		TotalSMS:         len(c.SMSMessages),
		TotalTouchpoints: len(c.Emails) + len(c.SMSMessages),
	}
	if len(c.Emails) > 0 {
		first := c.Emails[0]
		p.FirstEmail = &first
	}
	if len(c.SMSMessages) > 0 {
		first := c.SMSMessages[0]
		p.FirstSMS = &first
	}
	if c.Flow != nil && len(c.Flow.Steps) > 0 {
		p.EstimatedDuration = c.Flow.EstimatedDuration
	}
	return p
}
