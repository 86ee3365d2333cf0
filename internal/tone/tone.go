// Package tone provides the fixed whitelists of brand tones, brand categories and
// target audiences, normalization of free-form input against them, and the style
// guide sentences embedded in content prompts.
package tone

import (
	"strings"
)

// ---- Whitelist ----

// Brand tones.
const (
	Friendly      = "Friendly"
	Professional  = "Professional"
	Casual        = "Casual"
	Luxury        = "Luxury"
	Playful       = "Playful"
	Authoritative = "Authoritative"
	Caring        = "Caring"
	Bold          = "Bold"
)

// Default is used when no tone, or an unknown tone, is supplied.
const Default = Friendly

// AllTones lists the supported brand tones in display order.
var AllTones = []string{Friendly, Professional, Casual, Luxury, Playful, Authoritative, Caring, Bold}

// styleGuides is the prompt instruction for each tone.
var styleGuides = map[string]string{
	Friendly:      "Write warmly and approachably, like a helpful friend.",
	Professional:  "Use clear, polished language with a confident, businesslike register.",
	Casual:        "Keep it relaxed and conversational; contractions are fine.",
	Luxury:        "Sound refined and exclusive; favor elegant, understated wording.",
	Playful:       "Be lighthearted and witty; a little humor is welcome.",
	Authoritative: "Speak with expertise and certainty; lead with facts.",
	Caring:        "Be empathetic and reassuring; put the customer's wellbeing first.",
	Bold:          "Be punchy and direct; short sentences, strong verbs.",
}

// AllCategories lists the supported brand categories.
var AllCategories = []string{
	"Beauty & Skincare", "Fashion & Apparel", "Health & Fitness", "Technology",
	"Food & Beverage", "Home & Garden", "Travel", "Education", "Finance", "Other",
}

// AllAudiences lists the supported target audiences.
var AllAudiences = []string{
	"Gen Z (18-24)", "Millennials (25-40)", "Gen X (41-56)", "Baby Boomers (57+)", "All Ages",
}

// DefaultAudience is used when no audience is supplied.
const DefaultAudience = "All Ages"

// ---- Public API ----

// Normalize maps a free-form tone to its canonical whitelist spelling.
// Matching is case-insensitive; unknown or empty input yields Default.
func Normalize(s string) string {
	if t, ok := lookup(AllTones, s); ok {
		return t
	}
	return Default
}

// IsValid reports whether s names a whitelisted tone, ignoring case.
func IsValid(s string) bool {
	_, ok := lookup(AllTones, s)
	return ok
}

// NormalizeAudience maps an audience to its canonical spelling. Unknown values are
// kept verbatim since they pass through to prompts as opaque context; empty input
// yields DefaultAudience.
func NormalizeAudience(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultAudience
	}
	if a, ok := lookup(AllAudiences, s); ok {
		return a
	}
	return s
}

// NormalizeCategory maps a category to its canonical spelling, keeping unknown
// values verbatim and mapping empty input to "Other".
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Other"
	}
	if c, ok := lookup(AllCategories, s); ok {
		return c
	}
	return s
}

// Guide returns the style instruction for a tone, normalizing it first.
func Guide(s string) string {
	return styleGuides[Normalize(s)]
}

// ---- helpers ----

func lookup(list []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
