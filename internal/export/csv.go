package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// cellLimit is the longest free-text cell written before truncation.
const cellLimit = 100

// CSV renders the flat sheet: summary, emails, SMS, flow logic and visual assets,
// separated by blank rows.
func (e *Exporter) CSV(c *models.Campaign) ([]byte, error) {
	if c == nil {
		return nil, ErrNilCampaign
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Campaign Summary"},
		{"Type", orDefault(string(c.CampaignType), string(models.CampaignTypeGeneral))},
		{"Brand Tone", orDefault(c.BrandTone, "Friendly")},
		{"Target Audience", orDefault(c.TargetAudience, "General")},
		{},
		{"Email Messages"},
		{"Step", "Subject", "Body", "CTA", "Purpose", "Delay"},
	}
	for i, email := range c.Emails {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), email.Subject, truncateCell(email.Body), email.CTA, email.Purpose, email.Delay,
		})
	}

	rows = append(rows, []string{}, []string{"SMS Messages"}, []string{"Step", "Message", "Purpose", "Delay"})
	for i, sms := range c.SMSMessages {
		rows = append(rows, []string{strconv.Itoa(i + 1), sms.Message, sms.Purpose, sms.Delay})
	}

	rows = append(rows, []string{}, []string{"Flow Logic"}, []string{"Step", "Type", "Content ID", "Delay", "Conditions"})
	if c.Flow != nil {
		for _, s := range c.Flow.Steps {
			rows = append(rows, []string{
				strconv.Itoa(s.Step), string(s.Type), s.ContentID, s.Delay, strings.Join(s.Conditions, ", "),
			})
		}
	}

	rows = append(rows, []string{}, []string{"Visual Assets"}, []string{"Purpose", "Description", "Type", "Prompt"})
	for _, v := range c.Visuals {
		rows = append(rows, []string{v.Purpose, v.Description, string(v.Type), truncateCell(v.Prompt)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv export: %w", err)
	}
	return buf.Bytes(), nil
}

func truncateCell(s string) string {
	if utf8.RuneCountInString(s) <= cellLimit {
		return s
	}
	return string([]rune(s)[:cellLimit]) + "..."
}
