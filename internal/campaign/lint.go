package campaign

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Lint thresholds.
const (
	subjectMax   = 50
	subjectMin   = 10
	emailBodyMin = 50
	emailBodyMax = 1000
	ctaMax       = 30
	smsMax       = 160
	smsMin       = 20
)

var (
	ctaActionWords = []string{"click", "shop", "buy", "learn", "get", "start", "join"}
	smsActionWords = []string{"click", "tap", "visit", "call", "text", "reply"}
)

// Lint is the quality check result for one content item. Errors make it invalid;
// warnings are advisory.
type Lint struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Quality holds lint results for every item of a campaign, in input order.
type Quality struct {
	Emails []Lint `json:"emails"`
	SMS    []Lint `json:"sms"`
}

func newLint() Lint {
	return Lint{Errors: []string{}, Warnings: []string{}}
}

func (l *Lint) finish() Lint {
	l.Valid = len(l.Errors) == 0
	return *l
}

// LintEmail checks an email for missing fields and common copy problems.
func LintEmail(e models.ContentItem) Lint {
	l := newLint()
	for _, f := range []struct{ name, value string }{
		{"subject", e.Subject}, {"body", e.Body}, {"cta", e.CTA},
	} {
		if f.value == "" {
			l.Errors = append(l.Errors, fmt.Sprintf("Missing %s", f.name))
		}
	}

	if e.Subject != "" {
		n := utf8.RuneCountInString(e.Subject)
		if n > subjectMax {
			l.Warnings = append(l.Warnings, "Subject line is longer than 50 characters")
		}
		if n < subjectMin {
			l.Warnings = append(l.Warnings, "Subject line might be too short")
		}
		if isAllCaps(e.Subject) {
			l.Warnings = append(l.Warnings, "Subject line is all caps (might trigger spam filters)")
		}
	}

	if e.Body != "" {
		n := utf8.RuneCountInString(e.Body)
		if n < emailBodyMin {
			l.Warnings = append(l.Warnings, "Email body might be too short")
		}
		if n > emailBodyMax {
			l.Warnings = append(l.Warnings, "Email body is quite long")
		}
	}

	if e.CTA != "" {
		if utf8.RuneCountInString(e.CTA) > ctaMax {
			l.Warnings = append(l.Warnings, "CTA text is longer than recommended (30 chars)")
		}
		if !containsAny(e.CTA, ctaActionWords) {
			l.Warnings = append(l.Warnings, "CTA might not be action-oriented enough")
		}
	}
	return l.finish()
}

// LintSMS checks an SMS for length and a call to action.
func LintSMS(s models.ContentItem) Lint {
	l := newLint()
	if s.Message == "" {
		l.Errors = append(l.Errors, "Missing SMS message")
		return l.finish()
	}
	n := utf8.RuneCountInString(s.Message)
	if n > smsMax {
		l.Errors = append(l.Errors, "SMS message exceeds 160 characters")
	}
	if n < smsMin {
		l.Warnings = append(l.Warnings, "SMS message might be too short")
	}
	if !containsAny(s.Message, smsActionWords) {
		l.Warnings = append(l.Warnings, "SMS might benefit from a clearer call-to-action")
	}
	return l.finish()
}

// LintCampaign lints every email and SMS of c.
func LintCampaign(c *models.Campaign) Quality {
	q := Quality{Emails: []Lint{}, SMS: []Lint{}}
	if c == nil {
		return q
	}
	for _, e := range c.Emails {
		q.Emails = append(q.Emails, LintEmail(e))
	}
	for _, s := range c.SMSMessages {
		q.SMS = append(q.SMS, LintSMS(s))
	}
	return q
}

// isAllCaps reports whether s has at least one cased letter and no lowercase ones.
func isAllCaps(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func containsAny(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
