package campaign

import (
	"math"
	"strings"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/export"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// UrgencyWords are the phrases counted as urgency indicators in SMS copy.
var UrgencyWords = []string{"now", "today", "urgent", "limited", "hurry", "last chance", "expires", "ending"}

// Metrics are rough content, cost and engagement figures for a campaign.
type Metrics struct {
	Content    ContentMetrics    `json:"content_metrics"`
	Cost       CostEstimates     `json:"cost_estimates"`
	Engagement EngagementMetrics `json:"engagement_potential"`
}

// ContentMetrics summarizes copy volume across both channels.
type ContentMetrics struct {
	TotalEmailWords    int     `json:"total_email_words"`
	AverageEmailLength float64 `json:"average_email_length"`
	TotalSMSCharacters int     `json:"total_sms_characters"`
	AverageSMSLength   float64 `json:"average_sms_length"`
}

// CostEstimates prices the SMS portion at export.CostPerSegment per segment.
type CostEstimates struct {
	SMSSegments      int     `json:"sms_segments"`
	EstimatedSMSCost float64 `json:"estimated_sms_cost"`
}

// EngagementMetrics counts calls to action and urgency words.
type EngagementMetrics struct {
	EmailCTACount        int `json:"email_cta_count"`
	SMSUrgencyIndicators int `json:"sms_urgency_indicators"`
}

// ComputeMetrics calculates metrics for c.
func ComputeMetrics(c *models.Campaign) Metrics {
	var m Metrics
	if c == nil {
		return m
	}
	for _, e := range c.Emails {
		m.Content.TotalEmailWords += len(strings.Fields(e.Body))
		if e.CTA != "" {
			m.Engagement.EmailCTACount++
		}
	}
	for _, s := range c.SMSMessages {
		m.Content.TotalSMSCharacters += export.CharacterCount(s.Message)
		m.Cost.SMSSegments += export.SMSSegments(s.Message)
		m.Engagement.SMSUrgencyIndicators += CountUrgency(s.Message)
	}
	if n := len(c.Emails); n > 0 {
		m.Content.AverageEmailLength = round(float64(m.Content.TotalEmailWords)/float64(n), 1)
	}
	if n := len(c.SMSMessages); n > 0 {
		m.Content.AverageSMSLength = round(float64(m.Content.TotalSMSCharacters)/float64(n), 1)
	}
	m.Cost.EstimatedSMSCost = round(export.SMSCost(m.Cost.SMSSegments), 2)
	return m
}

// CountUrgency counts how many urgency phrases occur in message. Each phrase counts
// at most once and matches inside longer words.
func CountUrgency(message string) int {
	lower := strings.ToLower(message)
	n := 0
	for _, w := range UrgencyWords {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
