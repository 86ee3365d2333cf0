// Package purpose maps email and SMS slots of a campaign to human-meaningful purposes.
package purpose

import "github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"

// Labels used when a campaign type has no dedicated catalog.
const (
	GeneralEmail = "General Message"
	GeneralSMS   = "General SMS"
)

var emailCatalog = map[models.CampaignType][]string{
	models.CampaignTypeCartAbandonment: {
		"Reminder", "Gentle Nudge", "Social Proof", "Urgency",
		"Last Chance", "Win-back Offer", "Final Reminder",
	},
	models.CampaignTypeWelcomeSeries: {
		"Welcome", "Brand Story", "Product Education", "Social Proof",
		"First Purchase Incentive", "Community Building",
	},
	models.CampaignTypeWinBack: {
		"We Miss You", "Exclusive Offer", "What's New", "Final Attempt",
	},
	models.CampaignTypePostPurchase: {
		"Thank You", "Product Tips", "Upsell", "Review Request",
		"Loyalty Program", "Referral",
	},
}

var smsCatalog = map[models.CampaignType][]string{
	models.CampaignTypeCartAbandonment: {"Quick Reminder", "Urgency + Offer"},
	models.CampaignTypeWelcomeSeries:   {"Welcome SMS", "Quick Tip"},
	models.CampaignTypeWinBack:         {"Miss You", "Exclusive Deal"},
	models.CampaignTypePostPurchase:    {"Thank You", "Review Request"},
}

// ForEmail returns the purpose of the email at the 0-based index.
// Indices past the end of the catalog clamp to its last entry.
func ForEmail(ct models.CampaignType, index, total int) string {
	return pick(emailCatalog[ct], index, GeneralEmail)
}

// ForSMS returns the purpose of the SMS at the 0-based index.
// Indices past the end of the catalog clamp to its last entry.
func ForSMS(ct models.CampaignType, index, total int) string {
	return pick(smsCatalog[ct], index, GeneralSMS)
}

// pick clamps into catalog. A missing catalog behaves like one made of total copies
// of the general label, so every index resolves to that label.
func pick(catalog []string, index int, general string) string {
	if len(catalog) == 0 {
		return general
	}
	if index < 0 {
		index = 0
	}
	if index >= len(catalog) {
		return catalog[len(catalog)-1]
	}
	return catalog[index]
}

// EmailSlots returns the purposes for count emails of a campaign type.
func EmailSlots(ct models.CampaignType, count int) []string {
	slots := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		slots = append(slots, ForEmail(ct, i, count))
	}
	return slots
}

// SMSSlots returns the purposes for count SMS messages of a campaign type.
func SMSSlots(ct models.CampaignType, count int) []string {
	slots := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		slots = append(slots, ForSMS(ct, i, count))
	}
	return slots
}
