package content

import (
	"fmt"
	"strings"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/tone"
)

func brandContext(cc models.CampaignContext) string {
	var parts []string
	if cc.BrandName != "" {
		parts = append(parts, "Brand: "+cc.BrandName)
	}
	if cc.BrandCategory != "" {
		parts = append(parts, "Category: "+cc.BrandCategory)
	}
	if s := strings.TrimSpace(cc.BrandContext); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, "; ")
}

func emailPrompt(purpose string, step int, cc models.CampaignContext) string {
	t := tone.Normalize(cc.BrandTone)
	return fmt.Sprintf(`Create an email for a %s campaign.

Context:
- Purpose: %s
- Step: %d
- Brand tone: %s
- Target audience: %s
- Brand context: %s

Generate an email with the following details:
- Tone should be %s. %s
- Target %s audience
- Purpose is: %s

Return ONLY a JSON object with these fields:
{
    "subject": "<compelling subject line>",
    "body": "<email body text - engaging and action-oriented>",
    "cta": "<call-to-action text>"
}

Rules:
- Subject line should be attention-grabbing and under 50 characters
- Body should be 50-150 words, scannable, and persuasive
- CTA should be action-oriented and specific
- Match the brand tone exactly
- No placeholders or brackets in the final copy`,
		cc.CampaignType, purpose, step, t, cc.TargetAudience, brandContext(cc),
		strings.ToLower(t), tone.Guide(t), cc.TargetAudience, purpose)
}

func smsPrompt(purpose string, step int, cc models.CampaignContext) string {
	t := tone.Normalize(cc.BrandTone)
	return fmt.Sprintf(`Create an SMS message for a %s campaign.

Context:
- Purpose: %s
- Step: %d
- Brand tone: %s
- Target audience: %s
- Brand context: %s

Generate a short SMS message (under 160 characters) that:
- Uses %s tone. %s
- Targets %s audience
- Serves the purpose: %s
- Includes a clear call-to-action

Return ONLY a JSON object:
{
    "message": "<SMS message text under 160 characters>"
}

Rules:
- Keep under 160 characters total
- Be direct and action-oriented
- Include urgency when appropriate
- No placeholders or brackets`,
		cc.CampaignType, purpose, step, t, cc.TargetAudience, brandContext(cc),
		strings.ToLower(t), tone.Guide(t), cc.TargetAudience, purpose)
}
