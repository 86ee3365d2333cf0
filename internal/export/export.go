// Package export serializes a finished campaign into files an automation platform can
// import: a nested JSON document or a sectioned CSV sheet.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnsupportedFormat is returned for formats other than json and csv.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNilCampaign is returned when there is nothing to export.
	ErrNilCampaign = errors.New("campaign is nil")
)

// ParseFormat resolves a format name case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Exporter renders campaigns. The zero value is not usable; use NewExporter.
type Exporter struct {
	now func() time.Time
}

// Opts holds configuration for the exporter.
type Opts struct {
	Now func() time.Time
}

// Option configures the exporter.
type Option func(*Opts)

// WithClock sets the clock used for campaign names and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Opts) { o.Now = now }
}

// NewExporter creates an exporter.
func NewExporter(opts ...Option) *Exporter {
	cfg := Opts{Now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Exporter{now: cfg.Now}
}

// Export renders c in format f.
func (e *Exporter) Export(c *models.Campaign, f Format) ([]byte, error) {
	if c == nil {
		return nil, ErrNilCampaign
	}
	switch f {
	case FormatJSON:
		return e.JSON(c)
	case FormatCSV:
		return e.CSV(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// CampaignName is the platform-facing campaign name: the type plus the export date.
func (e *Exporter) CampaignName(c *models.Campaign) string {
	ct := string(c.CampaignType)
	if ct == "" {
		ct = "campaign"
	}
	return fmt.Sprintf("%s_%s", ct, e.now().Format("20060102"))
}

// Filename is the suggested download name for an export.
func (e *Exporter) Filename(c *models.Campaign, f Format) string {
	return fmt.Sprintf("campaign_%s.%s", e.CampaignName(c), f)
}

// encodeJSON writes v indented with non-ASCII and HTML characters left unescaped.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return buf.Bytes(), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
