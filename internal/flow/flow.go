// Package flow assembles generated email and SMS content into a single ordered
// sequence of timed touchpoints.
//
// Each campaign type owns an Interleaver that decides the relative order of the two
// channels. BuildFlow turns those placements into numbered FlowSteps and derives the
// flow-level metadata (triggers, exit conditions, duration estimate).
package flow

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/delay"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Summary truncation for SMS previews.
const (
	SummaryLimit    = 50
	SummaryEllipsis = "..."
)

// Role distinguishes the opening touchpoint of a channel from its follow-ups.
type Role int

const (
	RoleFollowUp Role = iota
	RoleLead
)

// Placement is a single emission decided by an Interleaver.
type Placement struct {
	Channel models.Channel
	Index   int    // 0-based position in the channel's input list
	Role    Role
	Delay   string // forced delay; empty means the item's own delay
}

// Interleaver decides the relative order of email and SMS touchpoints.
// Implementations must place every input item exactly once.
type Interleaver interface {
	Interleave(emails, sms []models.ContentItem) []Placement
}

var strategies = map[models.CampaignType]Interleaver{
	models.CampaignTypeCartAbandonment: cartAbandonment{},
	models.CampaignTypeWelcomeSeries:   welcomeSeries{},
	models.CampaignTypeWinBack:         winBack{},
	models.CampaignTypePostPurchase:    postPurchase{},
	models.CampaignTypeGeneral:         general{},
}

// For returns the Interleaver for a campaign type, falling back to the general policy.
func For(ct models.CampaignType) Interleaver {
	if s, ok := strategies[ct]; ok {
		return s
	}
	return strategies[models.CampaignTypeGeneral]
}

// BuildFlow produces the flow for the given content lists and campaign type.
// It performs no I/O and returns identical output for identical input.
func BuildFlow(emails, sms []models.ContentItem, ct models.CampaignType) models.FlowLogic {
	ct = models.ParseCampaignType(string(ct))
	placements := For(ct).Interleave(emails, sms)
	prof := profileFor(ct)

	steps := make([]models.FlowStep, 0, len(placements))
	delays := make([]string, 0, len(placements))
	for _, p := range placements {
		var item models.ContentItem
		var def slotDefaults
		switch p.Channel {
		case models.ChannelEmail:
			item, def = emails[p.Index], prof.email
		case models.ChannelSMS:
			item, def = sms[p.Index], prof.sms
		default:
			slog.Warn("flow.BuildFlow: skipping placement with unknown channel", "channel", p.Channel)
			continue
		}
		step := newStep(len(steps)+1, p, item, def)
		steps = append(steps, step)
		delays = append(delays, step.Delay)
	}

	touchpoints := 0
	for _, s := range steps {
		if s.Type.IsTouchpoint() {
			touchpoints++
		}
	}

	logic := models.FlowLogic{
		CampaignType:      ct,
		TotalSteps:        len(steps),
		Steps:             steps,
		Triggers:          Triggers(ct),
		ExitConditions:    ExitConditions(ct),
		EstimatedDuration: delay.Estimate(delays),
		TouchpointCount:   touchpoints,
	}
	slog.Debug("flow.BuildFlow: assembled flow", "campaign_type", ct, "emails", len(emails), "sms", len(sms),
		"steps", logic.TotalSteps, "duration", logic.EstimatedDuration)
	return logic
}

func newStep(n int, p Placement, item models.ContentItem, def slotDefaults) models.FlowStep {
	step := models.FlowStep{
		Step:       n,
		Type:       p.Channel,
		Delay:      resolveDelay(p, item, def),
		ContentID:  ContentID(p.Channel, p.Index),
		Purpose:    item.Purpose,
		Conditions: def.conditions(p.Role),
	}
	if step.Purpose == "" {
		step.Purpose = def.purpose(p.Role)
	}
	if p.Channel == models.ChannelEmail {
		step.Summary = item.Subject
		if step.Summary == "" && p.Role == RoleLead {
			step.Summary = def.leadSubject
		}
	} else {
		step.Summary = Truncate(item.Message, SummaryLimit)
	}
	return step
}

func resolveDelay(p Placement, item models.ContentItem, def slotDefaults) string {
	if p.Delay != "" {
		return p.Delay
	}
	if d := strings.TrimSpace(item.Delay); d != "" {
		return d
	}
	if p.Role == RoleLead && def.leadDelay != "" {
		return def.leadDelay
	}
	return def.followDelay(p.Index)
}

// ContentID is the back-reference from a step to its content item: the channel name
// and the item's 1-based position in its own input list.
func ContentID(ch models.Channel, index int) string {
	return fmt.Sprintf("%s_%d", ch, index+1)
}

// Truncate shortens s to limit runes, appending an ellipsis only when it cut text.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + SummaryEllipsis
}
