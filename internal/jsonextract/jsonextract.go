// Package jsonextract pulls the first well-formed JSON object out of free-form model
// output, which often wraps the payload in prose or markdown fences.
package jsonextract

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrNoObject is returned when the text contains no balanced, valid JSON object.
var ErrNoObject = errors.New("no JSON object found in text")

// FirstObject returns the first balanced {...} span of s that is valid JSON.
//
// The scan tracks string literals and escapes, so braces inside quoted values do not
// affect nesting. A candidate that balances but fails validation is skipped and the
// search resumes at the next opening brace.
func FirstObject(s string) (string, error) {
	for start := 0; start < len(s); start++ {
		if s[start] != '{' {
			continue
		}
		end, ok := matchBrace(s, start)
		if !ok {
			continue
		}
		if candidate := s[start : end+1]; gjson.Valid(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNoObject
}

// matchBrace returns the index of the brace closing the one at s[start].
func matchBrace(s string, start int) (int, bool) {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// String reads a string field from an extracted object. Missing fields yield "".
func String(obj, path string) string {
	return gjson.Get(obj, path).String()
}

// Int reads an integer field. ok is false when the field is missing or not a number.
func Int(obj, path string) (n int, ok bool) {
	r := gjson.Get(obj, path)
	if r.Type != gjson.Number {
		return 0, false
	}
	return int(r.Int()), true
}

// Strings reads an array of strings. Non-string elements are stringified.
func Strings(obj, path string) []string {
	r := gjson.Get(obj, path)
	if !r.IsArray() {
		return nil
	}
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}
