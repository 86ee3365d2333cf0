package delay

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"immediate", 0},
		{"Immediately after signup", 0},
		{"immediate, then 2 days", 0},
		{"2 hours", 2},
		{"1 hour", 1},
		{"hour", 1},
		{"an hour later", 1},
		{"3 days", 72},
		{"a day", 24},
		{"1 week", 168},
		{"2 Weeks", 336},
		{"week", 168},
		{"1 day 2 hours", 1}, // hour outranks day
		{"-2 days", 24},      // signed counts are not numeric tokens
		{"1 month", 24},
		{"soon", 24},
		{"", 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHours(tt.in), "ParseHours(%q)", tt.in)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 hours"},
		{23, "23 hours"},
		{24, "1 days"},
		{47, "1 days"},
		{167, "6 days"},
		{168, "1 weeks"},
		{400, "2 weeks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%d)", tt.in)
	}
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, EmptyFlowDuration, Estimate(nil))
	assert.Equal(t, "7 hours", Estimate([]string{"immediate", "1 hour", "6 hours"}))
	assert.Equal(t, "1 weeks", Estimate([]string{"1 hour", "6 hours", "1 day", "2 days", "4 days"}))
}

func TestHugeCountsSaturate(t *testing.T) {
	assert.Equal(t, math.MaxInt, ParseHours("9000000000000000000 weeks"))
	assert.Equal(t, math.MaxInt, ParseHours("99999999999999999999999 hours"))
	assert.Equal(t, math.MaxInt, ParseHours("9223372036854775807 hours"))

	saturated := fmt.Sprintf("%d weeks", math.MaxInt/HoursPerWeek)
	assert.Equal(t, saturated, Estimate([]string{"9000000000000000000 weeks"}))
	assert.Equal(t, saturated, Estimate([]string{"9223372036854775807 hours", "1 hour"}))
	assert.Equal(t, saturated, Estimate([]string{"1 day", "9223372036854775807 hours", "2 days"}))
}

func TestFormatDelay(t *testing.T) {
	assert.Equal(t, "Not specified", FormatDelay(""))
	assert.Equal(t, "Immediate", FormatDelay(" IMMEDIATE "))
	assert.Equal(t, "2 weeks", FormatDelay("2 Weeks"))
	assert.Equal(t, "3 Months", FormatDelay("3 months"))
}

func TestCatalogLookups(t *testing.T) {
	assert.Equal(t, "1 hour", ForEmail(models.CampaignTypeCartAbandonment, 1))
	assert.Equal(t, "2 weeks", ForEmail(models.CampaignTypeCartAbandonment, 7))
	assert.Equal(t, EmailOverflowDelay, ForEmail(models.CampaignTypeCartAbandonment, 8))
	assert.Equal(t, "immediate", ForEmail(models.CampaignTypeWelcomeSeries, 1))
	assert.Equal(t, "1 day", ForEmail(models.CampaignTypeGeneral, 10))
	assert.Equal(t, EmailOverflowDelay, ForEmail(models.CampaignTypeGeneral, 11))
	assert.Equal(t, "1 day", ForEmail(models.CampaignType("unknown"), 3))

	assert.Equal(t, "2 hours", ForSMS(models.CampaignTypeCartAbandonment, 1))
	assert.Equal(t, "1 week", ForSMS(models.CampaignTypeWinBack, 2))
	assert.Equal(t, SMSOverflowDelay, ForSMS(models.CampaignTypeWinBack, 3))
	assert.Equal(t, SMSOverflowDelay, ForSMS(models.CampaignTypePostPurchase, 0))
}
