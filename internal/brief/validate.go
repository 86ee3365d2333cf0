// Package brief validates natural-language campaign briefs and parses them into
// campaign parameters.
package brief

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Length bounds for a brief, in characters.
const (
	MinLength = 10
	MaxLength = 1000
)

// Keywords is the campaign vocabulary a brief must mention at least once.
var Keywords = []string{
	"email", "sms", "campaign", "sequence", "series",
	"cart", "welcome", "abandon", "win-back", "post-purchase",
}

// Sentinel validation errors.
var (
	ErrEmptyBrief          = errors.New("empty brief")
	ErrBriefTooShort       = errors.New("brief too short")
	ErrBriefTooLong        = errors.New("brief too long")
	ErrBriefMissingKeyword = errors.New("brief missing campaign keyword")
)

// ValidationError rejects a brief with a human-readable reason.
type ValidationError struct {
	Err    error
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return e.Err }

func reject(err error, reason string) error {
	return &ValidationError{Err: err, Reason: reason}
}

// Validate checks that a brief is usable for generation. It returns nil or a
// *ValidationError.
func Validate(brief string) error {
	trimmed := strings.TrimSpace(brief)
	if trimmed == "" {
		return reject(ErrEmptyBrief, "Prompt cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) < MinLength {
		return reject(ErrBriefTooShort, "Prompt too short. Please provide more details.")
	}
	if utf8.RuneCountInString(brief) > MaxLength {
		return reject(ErrBriefTooLong, "Prompt too long. Please keep it under 1000 characters.")
	}
	lower := strings.ToLower(brief)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return nil
		}
	}
	return reject(ErrBriefMissingKeyword,
		"Prompt should mention campaign type or include keywords like 'email', 'SMS', 'campaign', etc.")
}
