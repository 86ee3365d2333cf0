package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTextStubReplaysResponses(t *testing.T) {
	stub := &TextStub{Responses: []string{"first", "second"}}
	ctx := context.Background()

	for _, want := range []string{"first", "second", "second"} {
		got, err := stub.Complete(ctx, "p")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if stub.Calls() != 3 {
		t.Errorf("expected 3 calls, got %d", stub.Calls())
	}
}

func TestTextStubError(t *testing.T) {
	stub := &TextStub{Err: errors.New("boom")}
	if _, err := stub.Complete(context.Background(), "p"); err == nil {
		t.Error("expected error")
	}
	if got := stub.Prompts(); len(got) != 1 || got[0] != "p" {
		t.Errorf("prompt not recorded: %v", got)
	}
}

func TestBlockingTextHonoursDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	stub := &TextStub{Func: BlockingText}
	_, err := stub.Complete(ctx, "p")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestImageStub(t *testing.T) {
	stub := &ImageStub{Image: []byte{1, 2}, Model: "m"}
	img, model, err := stub.Generate(context.Background(), "a prompt")
	if err != nil || model != "m" || len(img) != 2 {
		t.Errorf("unexpected result: %v %q %v", img, model, err)
	}
	if len(stub.Prompts()) != 1 {
		t.Error("prompt not recorded")
	}
}

func TestAssertHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		expected   int
		actual     int
		shouldFail bool
	}{
		{name: "matching status codes", expected: 200, actual: 200},
		{name: "different status codes", expected: 200, actual: 404, shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockT := &mockTestingT{}
			AssertHTTPStatus(mockT, tt.expected, tt.actual, "test context")
			if tt.shouldFail != mockT.failed {
				t.Errorf("expected failed=%v, got %v", tt.shouldFail, mockT.failed)
			}
		})
	}
}

func TestAssertJSONResponse(t *testing.T) {
	tests := []struct {
		name           string
		jsonBody       string
		expectedStatus string
		shouldFail     bool
	}{
		{"valid JSON with matching status", `{"status":"ok","result":"test"}`, "ok", false},
		{"valid JSON with different status", `{"status":"error"}`, "ok", true},
		{"invalid JSON", `{"status":}`, "ok", true},
		{"missing status field", `{"result":"test"}`, "ok", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockT := &mockTestingT{}
			rr := httptest.NewRecorder()
			rr.Body.WriteString(tt.jsonBody)

			response := AssertJSONResponse(mockT, rr, tt.expectedStatus)

			if tt.shouldFail != mockT.failed {
				t.Errorf("expected failed=%v, got %v (%s)", tt.shouldFail, mockT.failed, mockT.errorMsg)
			}
			if !tt.shouldFail && response == nil {
				t.Error("expected response map to be returned")
			}
		})
	}
}

func TestCreateHTTPRequest(t *testing.T) {
	req := CreateHTTPRequest(t, "POST", "/campaigns", map[string]string{"brief": "x"})
	if req.Method != "POST" || req.URL.Path != "/campaigns" {
		t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Error("expected JSON content type")
	}

	raw := CreateHTTPRequest(t, "POST", "/flows", []byte(`{not json`))
	if raw.ContentLength != int64(len(`{not json`)) {
		t.Errorf("raw body not passed through, length %d", raw.ContentLength)
	}
}

func TestMustMarshalRoundTrip(t *testing.T) {
	data := MustMarshalJSON(t, map[string]any{"key": "value", "number": 123})
	var target map[string]any
	MustUnmarshalJSON(t, data, &target)
	if target["key"] != "value" || target["number"].(float64) != 123 {
		t.Errorf("unexpected round trip: %v", target)
	}
}

// mockTestingT records failures instead of stopping the test.
type mockTestingT struct {
	failed   bool
	errorMsg string
}

func (m *mockTestingT) Helper() {}

func (m *mockTestingT) Errorf(format string, args ...any) {
	m.failed = true
	m.errorMsg = fmt.Sprintf(format, args...)
}

func (m *mockTestingT) Fatalf(format string, args ...any) {
	m.failed = true
	m.errorMsg = fmt.Sprintf(format, args...)
}
