package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Defaults for email fields the collaborator left out.
const (
	textBodyLimit = 200
	defaultCTA    = "Take Action Now"
	fallbackCTA   = "Learn More"
)

var fallbackSubjects = map[string]string{
	"Reminder":     "Don't forget about your items",
	"Urgency":      "Only a few hours left!",
	"Welcome":      "Welcome to our community!",
	"Social Proof": "Join thousands of happy customers",
	"Offer":        "Special offer just for you",
}

func defaultSubject(purpose string) string {
	return "Don't miss out - " + purpose
}

// parseEmailText recovers an email from free text using "Subject:", "Body:" and
// "CTA:" line prefixes, defaulting whatever is missing.
func parseEmailText(item *models.ContentItem, text string) {
	text = strings.TrimSpace(text)
	item.Subject = defaultSubject(item.Purpose)
	item.Body = truncate(text, textBodyLimit)
	item.CTA = defaultCTA

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Subject:"):
			item.Subject = strings.TrimSpace(strings.TrimPrefix(line, "Subject:"))
		case strings.HasPrefix(line, "Body:"):
			item.Body = strings.TrimSpace(strings.TrimPrefix(line, "Body:"))
		case strings.HasPrefix(line, "CTA:"):
			item.CTA = strings.TrimSpace(strings.TrimPrefix(line, "CTA:"))
		}
	}
}

// fillEmailDefaults completes a JSON-sourced email missing some fields.
func fillEmailDefaults(item *models.ContentItem, cc models.CampaignContext) {
	if item.Subject == "" {
		item.Subject = defaultSubject(item.Purpose)
	}
	if item.Body == "" {
		item.Body = fallbackEmail(*item, cc).Body
	}
	if item.CTA == "" {
		item.CTA = defaultCTA
	}
}

func fallbackEmail(base models.ContentItem, cc models.CampaignContext) models.ContentItem {
	item := base
	item.Subject = fallbackSubjects[item.Purpose]
	if item.Subject == "" {
		item.Subject = fmt.Sprintf("Important message - Step %d", item.Step)
	}
	item.Body = fmt.Sprintf("This is a %s message for your %s campaign. We've prepared something special for you based on your interests.",
		strings.ToLower(item.Purpose), cc.CampaignType)
	item.CTA = fallbackCTA
	item.Status = models.ContentStatusFallback
	return item
}

func fallbackSMS(base models.ContentItem) models.ContentItem {
	item := base
	item.Message = fmt.Sprintf("Quick reminder about your %s. Don't miss out! Reply STOP to opt out.", strings.ToLower(item.Purpose))
	item.Status = models.ContentStatusFallback
	return item
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
