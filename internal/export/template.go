package export

type importTemplate struct {
	CampaignInfo struct {
		Name           string `json:"name"`
		Type           string `json:"type"`
		BrandTone      string `json:"brand_tone"`
		TargetAudience string `json:"target_audience"`
	} `json:"campaign_info"`
	Messages []templateMessage `json:"messages"`
	Settings struct {
		Timezone       string            `json:"timezone"`
		QuietHours     map[string]string `json:"quiet_hours"`
		ExitConditions []string          `json:"exit_conditions"`
	} `json:"settings"`
}

type templateMessage struct {
	Type    string `json:"type"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
	CTA     string `json:"cta,omitempty"`
	Message string `json:"message,omitempty"`
	Delay   string `json:"delay"`
}

// ImportTemplate returns a JSON skeleton for hand-authored campaigns.
func ImportTemplate() ([]byte, error) {
	var t importTemplate
	t.CampaignInfo.Name = "Campaign Name"
	t.CampaignInfo.Type = "cart_abandonment|welcome_series|win_back|post_purchase"
	t.CampaignInfo.BrandTone = "Friendly|Professional|Casual|etc"
	t.CampaignInfo.TargetAudience = "Gen Z|Millennials|etc"
	t.Messages = []templateMessage{
		{
			Type:    "email",
			Subject: "Email subject line",
			Body:    "Email body content",
			CTA:     "Call to action text",
			Delay:   "1 hour|1 day|etc",
		},
		{
			Type:    "sms",
			Message: "SMS message content (under 160 chars)",
			Delay:   "2 hours|1 day|etc",
		},
	}
	t.Settings.Timezone = "UTC"
	t.Settings.QuietHours = map[string]string{"start": "22:00", "end": "08:00"}
	t.Settings.ExitConditions = []string{"unsubscribed", "purchase_completed"}
	return encodeJSON(t)
}
