// Package testutil provides common test utilities, stub collaborators and HTTP
// helpers for the marketing agent tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// TB is the subset of testing.TB the assertion helpers need.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// TextStub is a scripted text generator. Responses are returned in order; once they
// run out the last one repeats. Err, when set, is returned for every call.
type TextStub struct {
	Responses []string
	Err       error
	// Func, when set, takes precedence over Responses and Err.
	Func func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// Complete implements the text generator interface used by the content and brief packages.
func (s *TextStub) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	n := len(s.prompts)
	s.mu.Unlock()

	if s.Func != nil {
		return s.Func(ctx, prompt)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Responses) == 0 {
		return "", nil
	}
	if n > len(s.Responses) {
		n = len(s.Responses)
	}
	return s.Responses[n-1], nil
}

// Prompts returns every prompt received so far.
func (s *TextStub) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Calls returns the number of Complete calls.
func (s *TextStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// BlockingText never answers until the context is done, then returns its error.
func BlockingText(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// ImageStub is a scripted image generator.
type ImageStub struct {
	Image []byte
	Model string
	Err   error

	mu      sync.Mutex
	prompts []string
}

// Generate implements the image generator interface used by the visual package.
func (s *ImageStub) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, "", s.Err
	}
	return s.Image, s.Model, nil
}

// Prompts returns every prompt received so far.
func (s *ImageStub) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// AssertHTTPStatus checks the HTTP status code and fails the test if it doesn't match.
func AssertHTTPStatus(t TB, expected, actual int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected status %d, got %d", context, expected, actual)
	}
}

// AssertJSONResponse decodes a JSON response and validates the status field.
func AssertJSONResponse(t TB, rr *httptest.ResponseRecorder, expectedStatus string) map[string]any {
	t.Helper()
	var response map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
		return nil
	}

	if status, ok := response["status"].(string); ok {
		if status != expectedStatus {
			t.Errorf("expected status '%s', got '%s'", expectedStatus, status)
		}
	} else {
		t.Errorf("response missing or invalid 'status' field")
	}

	return response
}

// CreateHTTPRequest creates an HTTP request with optional JSON body for testing.
func CreateHTTPRequest(t TB, method, url string, body any) *http.Request {
	t.Helper()
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		if raw, ok := body.([]byte); ok {
			reqBody = bytes.NewBuffer(raw)
		} else {
			reqBody = bytes.NewBuffer(MustMarshalJSON(t, body))
		}
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to create HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// MustMarshalJSON marshals an object to JSON and fails the test on error.
func MustMarshalJSON(t TB, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

// MustUnmarshalJSON unmarshals JSON data into target and fails the test on error.
func MustUnmarshalJSON(t TB, data []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(data, target); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
}

var _ TB = (*testing.T)(nil)
