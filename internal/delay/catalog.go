package delay

import "github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"

// Fallback delays once a step runs past its catalog.
const (
	EmailOverflowDelay = "1 week"
	SMSOverflowDelay   = "3 days"
)

var generalDelays = []string{
	"1 day", "1 day", "1 day", "1 day", "1 day",
	"1 day", "1 day", "1 day", "1 day", "1 day",
}

var emailDelays = map[models.CampaignType][]string{
	models.CampaignTypeCartAbandonment: {"1 hour", "6 hours", "1 day", "2 days", "4 days", "1 week", "2 weeks"},
	models.CampaignTypeWelcomeSeries:   {"immediate", "1 day", "3 days", "1 week", "2 weeks", "1 month"},
	models.CampaignTypeWinBack:         {"immediate", "3 days", "1 week", "2 weeks"},
	models.CampaignTypePostPurchase:    {"immediate", "3 days", "1 week", "2 weeks", "1 month", "3 months"},
	models.CampaignTypeGeneral:         generalDelays,
}

var smsDelays = map[models.CampaignType][]string{
	models.CampaignTypeCartAbandonment: {"2 hours", "1 day"},
	models.CampaignTypeWelcomeSeries:   {"1 hour", "1 week"},
	models.CampaignTypeWinBack:         {"1 day", "1 week"},
	models.CampaignTypePostPurchase:    {"1 day", "1 week"},
	models.CampaignTypeGeneral:         generalDelays,
}

// ForEmail returns the catalog delay for the 1-based email step of a campaign type.
func ForEmail(ct models.CampaignType, step int) string {
	return lookup(emailDelays, ct, step, EmailOverflowDelay)
}

// ForSMS returns the catalog delay for the 1-based SMS step of a campaign type.
func ForSMS(ct models.CampaignType, step int) string {
	return lookup(smsDelays, ct, step, SMSOverflowDelay)
}

func lookup(table map[models.CampaignType][]string, ct models.CampaignType, step int, overflow string) string {
	pattern, ok := table[ct]
	if !ok {
		pattern = table[models.CampaignTypeGeneral]
	}
	if step < 1 || step > len(pattern) {
		return overflow
	}
	return pattern[step-1]
}
