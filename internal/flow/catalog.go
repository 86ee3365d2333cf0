package flow

import (
	"fmt"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

var triggerCatalog = map[models.CampaignType][]models.Trigger{
	models.CampaignTypeCartAbandonment: {
		{Event: "cart_abandoned", Delay: "1 hour"},
		{Event: "cart_still_abandoned", Delay: "6 hours"},
	},
	models.CampaignTypeWelcomeSeries: {
		{Event: "user_subscribed", Delay: "immediate"},
		{Event: "email_confirmed", Delay: "1 hour"},
	},
	models.CampaignTypeWinBack: {
		{Event: "user_inactive_90_days", Delay: "immediate"},
		{Event: "no_purchase_180_days", Delay: "immediate"},
	},
	models.CampaignTypePostPurchase: {
		{Event: "purchase_completed", Delay: "immediate"},
		{Event: "order_shipped", Delay: "1 day"},
	},
}

var defaultTriggers = []models.Trigger{{Event: "campaign_start", Delay: "immediate"}}

var exitCatalog = map[models.CampaignType][]string{
	models.CampaignTypeCartAbandonment: {"purchase_completed", "cart_cleared", "unsubscribed"},
	models.CampaignTypeWelcomeSeries:   {"unsubscribed", "marked_as_spam", "completed_onboarding"},
	models.CampaignTypeWinBack:         {"purchase_made", "engagement_resumed", "unsubscribed"},
	models.CampaignTypePostPurchase:    {"unsubscribed", "return_requested", "loyalty_program_joined"},
}

var defaultExits = []string{"unsubscribed", "campaign_completed"}

// mainTrigger is the single event an automation platform listens for.
var mainTrigger = map[models.CampaignType]string{
	models.CampaignTypeCartAbandonment: "cart_abandoned",
	models.CampaignTypeWelcomeSeries:   "user_subscribed",
	models.CampaignTypeWinBack:         "user_inactive",
	models.CampaignTypePostPurchase:    "purchase_completed",
}

// ManualTrigger is the entry event of campaigns without an automatic trigger.
const ManualTrigger = "manual_trigger"

// Triggers returns a copy of the trigger catalog for a campaign type.
func Triggers(ct models.CampaignType) []models.Trigger {
	src, ok := triggerCatalog[ct]
	if !ok {
		src = defaultTriggers
	}
	return append([]models.Trigger(nil), src...)
}

// ExitConditions returns a copy of the exit-condition catalog for a campaign type.
func ExitConditions(ct models.CampaignType) []string {
	src, ok := exitCatalog[ct]
	if !ok {
		src = defaultExits
	}
	return append([]string(nil), src...)
}

// MainTrigger returns the entry event for a campaign type.
func MainTrigger(ct models.CampaignType) string {
	if ev, ok := mainTrigger[ct]; ok {
		return ev
	}
	return ManualTrigger
}

// slotDefaults fills step fields the content item left empty, per channel.
type slotDefaults struct {
	leadPurpose      string
	followPurpose    string
	leadDelay        string
	followDelay      func(index int) string
	leadSubject      string
	leadConditions   []string
	followConditions []string
}

func (d slotDefaults) purpose(r Role) string {
	if r == RoleLead && d.leadPurpose != "" {
		return d.leadPurpose
	}
	return d.followPurpose
}

func (d slotDefaults) conditions(r Role) []string {
	src := d.followConditions
	if r == RoleLead && d.leadConditions != nil {
		src = d.leadConditions
	}
	return append([]string(nil), src...)
}

type profile struct {
	email slotDefaults
	sms   slotDefaults
}

func days(n int) string { return fmt.Sprintf("%d days", n) }

var profiles = map[models.CampaignType]profile{
	models.CampaignTypeCartAbandonment: {
		email: slotDefaults{
			leadPurpose:      "Reminder",
			followPurpose:    "Follow-up",
			leadDelay:        "1 hour",
			followDelay:      func(i int) string { return days(i + 1) },
			followConditions: []string{"cart_not_completed", "user_active"},
		},
		sms: slotDefaults{
			leadPurpose:      "Quick Reminder",
			followPurpose:    "Final Push",
			leadDelay:        "6 hours",
			followDelay:      func(int) string { return "1 day" },
			followConditions: []string{"cart_not_completed", "phone_available"},
		},
	},
	models.CampaignTypeWelcomeSeries: {
		email: slotDefaults{
			leadPurpose:      "Welcome",
			followPurpose:    "Education",
			followDelay:      func(i int) string { return days(2 * i) },
			leadSubject:      "Welcome!",
			leadConditions:   []string{"new_subscriber"},
			followConditions: []string{"subscriber_active"},
		},
		sms: slotDefaults{
			leadPurpose:      "Welcome SMS",
			followPurpose:    "Engagement",
			followDelay:      func(i int) string { return days(7 * (i + 1)) },
			leadConditions:   []string{"new_subscriber", "phone_available"},
			followConditions: []string{"subscriber_active", "phone_available"},
		},
	},
	models.CampaignTypeWinBack: {
		email: slotDefaults{
			leadPurpose:      "We Miss You",
			followPurpose:    "Win-back Offer",
			followDelay:      func(i int) string { return days(3 * i) },
			leadSubject:      "We miss you!",
			leadConditions:   []string{"inactive_user", "churned_90_days"},
			followConditions: []string{"still_inactive", "no_recent_purchase"},
		},
		sms: slotDefaults{
			followPurpose:    "Win-back SMS",
			followDelay:      func(i int) string { return days(5 * (i + 1)) },
			followConditions: []string{"still_inactive", "phone_available"},
		},
	},
	models.CampaignTypePostPurchase: {
		email: slotDefaults{
			leadPurpose:      "Thank You",
			followPurpose:    "Follow-up",
			followDelay:      func(i int) string { return days(7 * i) },
			leadSubject:      "Thank you for your purchase!",
			leadConditions:   []string{"recent_purchase"},
			followConditions: []string{"customer_active"},
		},
		sms: slotDefaults{
			leadPurpose:      "Thank You SMS",
			followPurpose:    "Follow-up SMS",
			followDelay:      func(i int) string { return days(7 * (i + 2)) },
			leadConditions:   []string{"recent_purchase", "phone_available"},
			followConditions: []string{"customer_active", "phone_available"},
		},
	},
	models.CampaignTypeGeneral: {
		email: slotDefaults{
			followPurpose:    "General",
			followDelay:      func(i int) string { return days(i + 1) },
			followConditions: []string{"subscriber_active"},
		},
		sms: slotDefaults{
			followPurpose:    "General",
			followDelay:      func(i int) string { return days(3 * (i + 1)) },
			followConditions: []string{"subscriber_active", "phone_available"},
		},
	},
}

func profileFor(ct models.CampaignType) profile {
	if p, ok := profiles[ct]; ok {
		return p
	}
	return profiles[models.CampaignTypeGeneral]
}
