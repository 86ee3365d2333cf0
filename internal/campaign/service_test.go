package campaign

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/brief"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/content"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/testutil"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/visual"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const parseResponse = `Here you go:
{"campaign_type": "cart_abandonment", "email_count": 3, "sms_count": 1,
 "brand_industry": "skincare", "target_audience": "young adults", "key_objectives": ["recover carts"]}`

// scriptedText answers brief, email and SMS prompts with canned JSON. Email prompts
// whose step is listed in failSteps return an error.
func scriptedText(failSteps ...string) *testutil.TextStub {
	return &testutil.TextStub{Func: func(_ context.Context, prompt string) (string, error) {
		switch {
		case strings.HasPrefix(prompt, "Analyze"):
			return parseResponse, nil
		case strings.HasPrefix(prompt, "Create an email"):
			for _, s := range failSteps {
				if strings.Contains(prompt, "- Step: "+s+"\n") {
					return "", errors.New("upstream 500")
				}
			}
			return `{"subject": "Your cart is waiting", "body": "Come back and finish checking out.", "cta": "Shop Now"}`, nil
		case strings.HasPrefix(prompt, "Create an SMS"):
			return `{"message": "Your cart misses you. Tap to shop now!"}`, nil
		}
		return "", errors.New("unexpected prompt")
	}}
}

func newTestService(text *testutil.TextStub, images visual.ImageGenerator) *Service {
	opts := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "camp-1" }),
		WithVisuals(visual.NewGenerator(images)),
	}
	if text != nil {
		opts = append(opts,
			WithParser(brief.NewParser(text, time.Second)),
			WithContent(content.NewGenerator(text, content.WithTimeout(time.Second))),
		)
	}
	return NewService(opts...)
}

func stepTypes(c *models.Campaign) []models.Channel {
	var out []models.Channel
	for _, s := range c.Flow.Steps {
		out = append(out, s.Type)
	}
	return out
}

func TestGenerateEndToEnd(t *testing.T) {
	text := scriptedText()
	images := &testutil.ImageStub{Image: []byte("\x89PNG\r\n\x1a\nxx"), Model: "sd"}
	svc := newTestService(text, images)

	c, err := svc.Generate(context.Background(), Request{
		Brief:          "Create a cart abandonment email campaign for Glow",
		BrandName:      "Glow",
		BrandCategory:  "beauty & skincare",
		BrandTone:      "luxury",
		IncludeVisuals: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "camp-1", c.ID)
	assert.Equal(t, models.CampaignTypeCartAbandonment, c.CampaignType)
	assert.Equal(t, "Luxury", c.BrandTone)
	assert.Equal(t, "Beauty & Skincare", c.BrandCategory)
	assert.Equal(t, "All Ages", c.TargetAudience)
	require.Len(t, c.Emails, 3)
	require.Len(t, c.SMSMessages, 1)
	assert.Equal(t, []string{"Reminder", "Gentle Nudge", "Social Proof"},
		[]string{c.Emails[0].Purpose, c.Emails[1].Purpose, c.Emails[2].Purpose})
	assert.Equal(t, 2, c.Emails[1].Step)

	require.NotNil(t, c.Flow)
	assert.Equal(t, []models.Channel{models.ChannelEmail, models.ChannelSMS, models.ChannelEmail, models.ChannelEmail}, stepTypes(c))
	assert.Equal(t, 4, c.Metadata.TotalSteps)
	assert.Equal(t, fixedNow, c.Metadata.GeneratedAt)
	assert.Equal(t, "skincare", c.Metadata.BrandIndustry)
	assert.Equal(t, []string{"recover carts"}, c.Metadata.KeyObjectives)
	assert.Zero(t, c.Metadata.DegradedItems)

	require.Len(t, c.Visuals, 4)
	assert.Equal(t, models.VisualKindHeader, c.Visuals[0].Type)
	assert.Equal(t, 3, c.Visuals[3].EmailStep)
	assert.Zero(t, c.Metadata.DegradedVisual)

	// one parse call, one per email, one per SMS
	assert.Equal(t, 5, text.Calls())
}

func TestGenerateRejectsInvalidBrief(t *testing.T) {
	text := scriptedText()
	svc := newTestService(text, nil)

	_, err := svc.Generate(context.Background(), Request{Brief: "make me something nice please"})
	require.Error(t, err)

	var verr *brief.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, brief.ErrBriefMissingKeyword)
	assert.Zero(t, text.Calls())
}

func TestGenerateOffline(t *testing.T) {
	svc := newTestService(nil, nil)

	c, err := svc.Generate(context.Background(), Request{
		Brief:          "Welcome series with 4 emails and 2 sms for new subscribers",
		IncludeVisuals: true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CampaignTypeWelcomeSeries, c.CampaignType)
	require.Len(t, c.Emails, 4)
	require.Len(t, c.SMSMessages, 2)
	for _, e := range c.Emails {
		assert.Equal(t, models.ContentStatusFallback, e.Status)
		assert.NotEmpty(t, e.Subject)
	}
	assert.Equal(t, 6, c.Metadata.DegradedItems)
	assert.Equal(t, 6, c.Flow.TotalSteps)
	assert.Equal(t, "immediate", delayOf(c, 1))

	require.Len(t, c.Visuals, 5)
	assert.Equal(t, 5, c.Metadata.DegradedVisual)
	assert.Equal(t, models.VisualStatusLocal, c.Visuals[0].Status)
}

func delayOf(c *models.Campaign, step int) string {
	return c.Flow.Steps[step-1].Delay
}

func TestGenerateOverrides(t *testing.T) {
	svc := newTestService(nil, nil)
	emails, sms := 50, 0

	c, err := svc.Generate(context.Background(), Request{
		Brief:        "Cart abandonment email campaign, 3 emails 2 sms",
		CampaignType: "Win_Back",
		EmailCount:   &emails,
		SMSCount:     &sms,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignTypeWinBack, c.CampaignType)
	assert.Len(t, c.Emails, brief.MaxEmailCount)
	assert.Empty(t, c.SMSMessages)
	assert.Empty(t, c.Visuals)
	assert.NotNil(t, c.Visuals)
}

func TestGenerateUnknownTypeOverrideIsGeneral(t *testing.T) {
	svc := newTestService(nil, nil)
	c, err := svc.Generate(context.Background(), Request{
		Brief:        "A seasonal email campaign with 2 emails and 1 sms",
		CampaignType: "holiday_blast",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignTypeGeneral, c.CampaignType)
	assert.Equal(t, []models.Channel{models.ChannelEmail, models.ChannelEmail, models.ChannelSMS}, stepTypes(c))
}

func TestGenerateSingleFailureDoesNotAbort(t *testing.T) {
	svc := newTestService(scriptedText("2"), nil)

	c, err := svc.Generate(context.Background(), Request{Brief: "Cart abandonment email campaign"})
	require.NoError(t, err)
	require.Len(t, c.Emails, 3)
	assert.Equal(t, models.ContentStatusGenerated, c.Emails[0].Status)
	assert.Equal(t, models.ContentStatusFallback, c.Emails[1].Status)
	assert.Equal(t, "upstream 500", c.Emails[1].Error)
	assert.Equal(t, models.ContentStatusGenerated, c.Emails[2].Status)
	assert.Equal(t, models.ContentStatusGenerated, c.SMSMessages[0].Status)
	assert.Equal(t, 1, c.Metadata.DegradedItems)
	assert.Equal(t, 4, c.Flow.TotalSteps)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestService(nil, nil).Generate(ctx, Request{Brief: "Welcome email series"})
	assert.ErrorIs(t, err, context.Canceled)
}
