// Package delay parses and formats the human-readable delay strings attached to
// campaign touchpoints ("immediate", "2 hours", "1 week").
package delay

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hour equivalents of the supported units.
const (
	HoursPerHour = 1
	HoursPerDay  = 24
	HoursPerWeek = 168
)

// Immediate is the delay string for a touchpoint sent without waiting.
const Immediate = "immediate"

// unit pairs a keyword with its hour equivalent. Order is match priority.
type unit struct {
	keyword string
	hours   int
}

var units = []unit{
	{"hour", HoursPerHour},
	{"day", HoursPerDay},
	{"week", HoursPerWeek},
}

// ParseHours converts a delay string into whole hours.
//
// Matching is case-insensitive and checks "immediate", "hour", "day", "week" in that
// order, so "immediate" wins even when other units appear. A numeric leading token
// multiplies the unit; otherwise the count is 1. Strings with no unit keyword count
// as one day. Results saturate at math.MaxInt.
func ParseHours(s string) int {
	s = strings.ToLower(s)
	if strings.Contains(s, Immediate) {
		return 0
	}
	for _, u := range units {
		if !strings.Contains(s, u.keyword) {
			continue
		}
		n := leadingCount(s)
		if n > math.MaxInt/u.hours {
			return math.MaxInt
		}
		return n * u.hours
	}
	return HoursPerDay
}

// leadingCount returns the leading non-negative integer token of s, or 1.
func leadingCount(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 || !isDigits(fields[0]) {
		return 1
	}
	n, err := strconv.Atoi(fields[0])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return n
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// FormatDuration renders a total hour count using the largest whole unit.
// Integer division truncates, and the unit label is always plural ("1 days"),
// which export consumers already depend on.
func FormatDuration(totalHours int) string {
	switch {
	case totalHours < HoursPerDay:
		return fmt.Sprintf("%d hours", totalHours)
	case totalHours < HoursPerWeek:
		return fmt.Sprintf("%d days", totalHours/HoursPerDay)
	default:
		return fmt.Sprintf("%d weeks", totalHours/HoursPerWeek)
	}
}

// EmptyFlowDuration is reported for a flow with no steps.
const EmptyFlowDuration = "0 days"

// Estimate sums the parsed delays and formats the total.
func Estimate(delays []string) string {
	if len(delays) == 0 {
		return EmptyFlowDuration
	}
	total := 0
	for _, d := range delays {
		h := ParseHours(d)
		if total > math.MaxInt-h {
			total = math.MaxInt
			break
		}
		total += h
	}
	return FormatDuration(total)
}

var knownDisplay = map[string]string{
	"immediate": "Immediate",
	"1 hour":    "1 hour",
	"6 hours":   "6 hours",
	"1 day":     "1 day",
	"2 days":    "2 days",
	"3 days":    "3 days",
	"1 week":    "1 week",
	"2 weeks":   "2 weeks",
}

// FormatDelay normalizes a delay string for display.
func FormatDelay(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "Not specified"
	}
	if known, ok := knownDisplay[s]; ok {
		return known
	}
	return cases.Title(language.English).String(s)
}
