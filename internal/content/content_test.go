package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/testutil"
)

var cartContext = models.CampaignContext{
	CampaignType:   models.CampaignTypeCartAbandonment,
	BrandName:      "SkinGlow",
	BrandCategory:  "Beauty & Skincare",
	BrandTone:      "luxury",
	TargetAudience: "Gen Z (18-24)",
	BrandContext:   "Clean ingredients",
}

func TestEmailFromJSON(t *testing.T) {
	stub := &testutil.TextStub{Responses: []string{
		"Sure!\n" + `{"subject":"Your cart misses you","body":"Come back {soon}.","cta":"Shop Now"}`,
	}}
	g := NewGenerator(stub)

	res := g.Email(context.Background(), "Reminder", 1, cartContext)
	require.False(t, res.Fallback)
	item := res.Value
	assert.Equal(t, models.ChannelEmail, item.Channel)
	assert.Equal(t, "Your cart misses you", item.Subject)
	assert.Equal(t, "Come back {soon}.", item.Body)
	assert.Equal(t, "Shop Now", item.CTA)
	assert.Equal(t, "1 hour", item.Delay)
	assert.Equal(t, 1, item.Step)
	assert.Equal(t, "Reminder", item.Purpose)
	assert.Equal(t, models.ContentStatusGenerated, item.Status)

	prompt := stub.Prompts()[0]
	assert.Contains(t, prompt, "Purpose: Reminder")
	assert.Contains(t, prompt, "Brand tone: Luxury")
	assert.Contains(t, prompt, "Gen Z (18-24)")
	assert.Contains(t, prompt, "Clean ingredients")
}

func TestEmailFillsMissingJSONFields(t *testing.T) {
	stub := &testutil.TextStub{Responses: []string{`{"subject":"Hello"}`}}
	res := NewGenerator(stub).Email(context.Background(), "Urgency", 4, cartContext)
	require.False(t, res.Fallback)
	assert.Equal(t, "Hello", res.Value.Subject)
	assert.NotEmpty(t, res.Value.Body)
	assert.Equal(t, defaultCTA, res.Value.CTA)
}

func TestEmailFromText(t *testing.T) {
	stub := &testutil.TextStub{Responses: []string{"Subject: Last call\nBody: Items are going fast.\nCTA: Grab yours"}}
	res := NewGenerator(stub).Email(context.Background(), "Urgency", 4, cartContext)

	assert.True(t, res.Fallback)
	assert.Equal(t, models.ErrorKindMalformed, res.Reason)
	assert.Equal(t, models.ContentStatusTextParsed, res.Value.Status)
	assert.Equal(t, "Last call", res.Value.Subject)
	assert.Equal(t, "Items are going fast.", res.Value.Body)
	assert.Equal(t, "Grab yours", res.Value.CTA)
}

func TestEmailFromUnstructuredText(t *testing.T) {
	long := strings.Repeat("word ", 60)
	stub := &testutil.TextStub{Responses: []string{long}}
	res := NewGenerator(stub).Email(context.Background(), "Social Proof", 3, cartContext)

	assert.Equal(t, "Don't miss out - Social Proof", res.Value.Subject)
	assert.Equal(t, defaultCTA, res.Value.CTA)
	assert.True(t, strings.HasSuffix(res.Value.Body, "..."))
	assert.Equal(t, textBodyLimit+3, len([]rune(res.Value.Body)))
}

func TestEmailFallback(t *testing.T) {
	tests := []struct {
		name    string
		text    TextGenerator
		purpose string
		reason  models.ErrorKind
		subject string
	}{
		{"unavailable", nil, "Reminder", models.ErrorKindUnavailable, "Don't forget about your items"},
		{"collaborator error", &testutil.TextStub{Err: errors.New("500")}, "Gentle Nudge", models.ErrorKindCollaborator, "Important message - Step 2"},
		{"empty response", &testutil.TextStub{Responses: []string{"  "}}, "Urgency", models.ErrorKindMalformed, "Only a few hours left!"},
		{"empty json", &testutil.TextStub{Responses: []string{"{}"}}, "Welcome", models.ErrorKindMalformed, "Welcome to our community!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewGenerator(tt.text).Email(context.Background(), tt.purpose, 2, cartContext)
			assert.True(t, res.Fallback)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, models.ContentStatusFallback, res.Value.Status)
			assert.Equal(t, tt.subject, res.Value.Subject)
			assert.Equal(t, fallbackCTA, res.Value.CTA)
			assert.Contains(t, res.Value.Body, "cart_abandonment campaign")
			assert.NotEmpty(t, res.Value.Error)
			assert.Equal(t, "6 hours", res.Value.Delay)
		})
	}
}

func TestEmailTimeout(t *testing.T) {
	stub := &testutil.TextStub{Func: testutil.BlockingText}
	g := NewGenerator(stub, WithTimeout(10*time.Millisecond))

	res := g.Email(context.Background(), "Reminder", 1, cartContext)
	assert.True(t, res.Fallback)
	assert.Equal(t, models.ErrorKindTimeout, res.Reason)
	assert.Equal(t, models.ContentStatusFallback, res.Value.Status)
}

func TestSMS(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		stub := &testutil.TextStub{Responses: []string{`{"message":"Your cart expires tonight. Tap to finish checkout."}`}}
		res := NewGenerator(stub).SMS(context.Background(), "Quick Reminder", 1, cartContext)
		require.False(t, res.Fallback)
		assert.Equal(t, models.ChannelSMS, res.Value.Channel)
		assert.Equal(t, "Your cart expires tonight. Tap to finish checkout.", res.Value.Message)
		assert.Equal(t, "2 hours", res.Value.Delay)
		assert.Contains(t, stub.Prompts()[0], "under 160 characters")
	})

	t.Run("raw text", func(t *testing.T) {
		stub := &testutil.TextStub{Responses: []string{"  Come back for 10% off!  "}}
		res := NewGenerator(stub).SMS(context.Background(), "Quick Reminder", 1, cartContext)
		assert.Equal(t, models.ContentStatusTextParsed, res.Value.Status)
		assert.Equal(t, "Come back for 10% off!", res.Value.Message)
	})

	t.Run("fallback", func(t *testing.T) {
		res := NewGenerator(nil).SMS(context.Background(), "Urgency + Offer", 3, cartContext)
		assert.True(t, res.Fallback)
		assert.Equal(t, models.ErrorKindUnavailable, res.Reason)
		assert.Equal(t, "Quick reminder about your urgency + offer. Don't miss out! Reply STOP to opt out.", res.Value.Message)
		assert.Equal(t, "3 days", res.Value.Delay)
	})
}

func TestFailureDoesNotStick(t *testing.T) {
	calls := 0
	stub := &testutil.TextStub{Func: func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("flaky")
		}
		return `{"subject":"ok","body":"fine","cta":"Go"}`, nil
	}}
	g := NewGenerator(stub)
	first := g.Email(context.Background(), "Reminder", 1, cartContext)
	second := g.Email(context.Background(), "Gentle Nudge", 2, cartContext)
	assert.True(t, first.Fallback)
	assert.False(t, second.Fallback)
}
