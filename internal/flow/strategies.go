package flow

import (
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/delay"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// cartSecondSMSAfter is the email count after which cart abandonment interleaves its
// second SMS.
const cartSecondSMSAfter = 3

func emailAt(i int, role Role, forced string) Placement {
	return Placement{Channel: models.ChannelEmail, Index: i, Role: role, Delay: forced}
}

func smsAt(i int, role Role, forced string) Placement {
	return Placement{Channel: models.ChannelSMS, Index: i, Role: role, Delay: forced}
}

// appendRest places items [from, n) of one channel as follow-ups.
func appendRest(out []Placement, ch models.Channel, from, n int) []Placement {
	for i := from; i < n; i++ {
		out = append(out, Placement{Channel: ch, Index: i, Role: RoleFollowUp})
	}
	return out
}

// cartAbandonment: reminder email, quick SMS, then emails with a second SMS
// slotted in after the third email. SMS left over once emails run out follow the
// last email.
type cartAbandonment struct{}

func (cartAbandonment) Interleave(emails, sms []models.ContentItem) []Placement {
	out := make([]Placement, 0, len(emails)+len(sms))
	e, s := 0, 0
	if e < len(emails) {
		out = append(out, emailAt(e, RoleLead, ""))
		e++
	}
	if s < len(sms) {
		out = append(out, smsAt(s, RoleLead, ""))
		s++
	}
	for e < len(emails) {
		out = append(out, emailAt(e, RoleFollowUp, ""))
		e++
		if e == cartSecondSMSAfter && s < len(sms) {
			out = append(out, smsAt(s, RoleFollowUp, ""))
			s++
		}
	}
	return appendRest(out, models.ChannelSMS, s, len(sms))
}

// welcomeSeries: immediate welcome email, welcome SMS an hour later, then the
// remaining emails and SMS each in order.
type welcomeSeries struct{}

func (welcomeSeries) Interleave(emails, sms []models.ContentItem) []Placement {
	return leadPair(emails, sms, "1 hour")
}

// winBack: immediate email, remaining emails, then every SMS.
type winBack struct{}

func (winBack) Interleave(emails, sms []models.ContentItem) []Placement {
	out := make([]Placement, 0, len(emails)+len(sms))
	if len(emails) > 0 {
		out = append(out, emailAt(0, RoleLead, delay.Immediate))
	}
	out = appendRest(out, models.ChannelEmail, 1, len(emails))
	return appendRest(out, models.ChannelSMS, 0, len(sms))
}

// postPurchase: immediate thank-you email, thank-you SMS two hours later, then the
// remaining emails and SMS each in order.
type postPurchase struct{}

func (postPurchase) Interleave(emails, sms []models.ContentItem) []Placement {
	return leadPair(emails, sms, "2 hours")
}

// leadPair emits email[0] immediately and sms[0] at smsDelay, then the rest of each
// channel in turn.
func leadPair(emails, sms []models.ContentItem, smsDelay string) []Placement {
	out := make([]Placement, 0, len(emails)+len(sms))
	if len(emails) > 0 {
		out = append(out, emailAt(0, RoleLead, delay.Immediate))
	}
	if len(sms) > 0 {
		out = append(out, smsAt(0, RoleLead, smsDelay))
	}
	out = appendRest(out, models.ChannelEmail, 1, len(emails))
	return appendRest(out, models.ChannelSMS, 1, len(sms))
}

// general: every email then every SMS, no interleaving.
type general struct{}

func (general) Interleave(emails, sms []models.ContentItem) []Placement {
	out := make([]Placement, 0, len(emails)+len(sms))
	out = appendRest(out, models.ChannelEmail, 0, len(emails))
	return appendRest(out, models.ChannelSMS, 0, len(sms))
}
