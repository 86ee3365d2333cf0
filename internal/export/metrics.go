package export

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SMS segment thresholds: a single segment holds 160 characters, a part of a
// concatenated message holds 153.
const (
	SingleSegmentChars = 160
	MultiSegmentChars  = 153
	// CostPerSegment is a rough per-segment SMS price in dollars.
	CostPerSegment = 0.01
	wordsPerMinute = 200
)

func assetID(i int) string { return fmt.Sprintf("asset_%d", i+1) }

// CharacterCount counts characters, not bytes.
func CharacterCount(s string) int { return utf8.RuneCountInString(s) }

// SMSSegments is the number of SMS parts needed to send message.
func SMSSegments(message string) int {
	n := CharacterCount(message)
	switch {
	case n == 0:
		return 0
	case n <= SingleSegmentChars:
		return 1
	default:
		return (n-1)/MultiSegmentChars + 1
	}
}

// SMSCost estimates the send cost of a segment count.
func SMSCost(segments int) float64 {
	return float64(segments) * CostPerSegment
}

// ReadTime estimates how long an email body takes to read at 200 words per minute.
func ReadTime(text string) string {
	words := len(strings.Fields(text))
	if words == 0 {
		return "0 seconds"
	}
	if words < wordsPerMinute {
		return fmt.Sprintf("%d seconds", words*60/wordsPerMinute)
	}
	return fmt.Sprintf("%d minute(s)", words/wordsPerMinute)
}
