// Command MarketingAgent turns a campaign brief into an email and SMS campaign with
// timed flow logic, and exports it for marketing automation platforms.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/api"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/brief"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/campaign"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/content"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/export"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/genai"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/imagegen"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/visual"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		logLevel string
		cfg      Config
	)
	root := &cobra.Command{
		Use:          "MarketingAgent",
		Short:        "Generate multi-channel marketing campaigns from a brief",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			initializeLogger(resolveLogLevel(logLevel, cfg))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides $LOG_LEVEL)")
	root.SetOut(stdout)
	root.AddCommand(newGenerateCmd(&cfg), newServeCmd(&cfg))
	return root
}

// resolveLogLevel prefers the --log-level flag over LOG_LEVEL from the environment or .env.
func resolveLogLevel(flag string, cfg Config) string {
	if flag != "" {
		return flag
	}
	return cfg.LogLevel
}

type generateFlags struct {
	brandName     string
	brandCategory string
	tone          string
	audience      string
	context       string
	campaignType  string
	emails        int
	sms           int
	noVisuals     bool
	format        string
	out           string
}

func newGenerateCmd(cfg *Config) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate <brief>",
		Short: "Generate a campaign and write its export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(f.format)
			if err != nil {
				return err
			}

			req := campaign.Request{
				Brief:          args[0],
				BrandName:      f.brandName,
				BrandCategory:  f.brandCategory,
				BrandTone:      f.tone,
				TargetAudience: f.audience,
				BrandContext:   f.context,
				CampaignType:   f.campaignType,
				IncludeVisuals: !f.noVisuals,
			}
			if cmd.Flags().Changed("emails") {
				req.EmailCount = &f.emails
			}
			if cmd.Flags().Changed("sms") {
				req.SMSCount = &f.sms
			}

			c, err := buildService(*cfg).Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			preview := campaign.NewPreview(c)
			slog.Info("generate: campaign ready", "type", preview.Summary.Type,
				"touchpoints", preview.Summary.TotalTouchpoints, "duration", preview.EstimatedDuration)

			data, err := export.NewExporter().Export(c, format)
			if err != nil {
				return err
			}
			if f.out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(f.out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			slog.Info("generate: export written", "path", f.out, "format", format, "bytes", len(data))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.brandName, "brand-name", "", "brand name")
	fl.StringVar(&f.brandCategory, "brand-category", "", "brand category, e.g. \"Beauty & Skincare\"")
	fl.StringVar(&f.tone, "tone", "Friendly", "brand tone")
	fl.StringVar(&f.audience, "audience", "All Ages", "target audience")
	fl.StringVar(&f.context, "context", "", "free-form brand context")
	fl.StringVar(&f.campaignType, "type", "", "campaign type override")
	fl.IntVar(&f.emails, "emails", brief.DefaultEmailCount, "email count override")
	fl.IntVar(&f.sms, "sms", brief.DefaultSMSCount, "SMS count override")
	fl.BoolVar(&f.noVisuals, "no-visuals", false, "skip visual generation")
	fl.StringVar(&f.format, "format", string(export.FormatJSON), "export format: json or csv")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newServeCmd(cfg *Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the campaign HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.APIAddr
			}
			return api.NewServer(buildService(*cfg), api.WithAddr(addr)).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "API server address (overrides $API_ADDR)")
	return cmd
}

// buildService wires the collaborators that have credentials. Missing ones leave
// their items on deterministic fallbacks.
func buildService(cfg Config) *campaign.Service {
	opts := []campaign.Option{}

	if text, err := genai.NewClient(buildGenAIOptions(cfg)...); err != nil {
		slog.Warn("buildService: text generation disabled", "error", err)
	} else {
		opts = append(opts,
			campaign.WithParser(brief.NewParser(text, cfg.Timeout)),
			campaign.WithContent(content.NewGenerator(text, content.WithTimeout(cfg.Timeout))),
		)
	}

	var images visual.ImageGenerator
	if img, err := imagegen.NewClient(buildImageOptions(cfg)...); err != nil {
		slog.Warn("buildService: image generation disabled", "error", err)
	} else {
		images = img
	}
	opts = append(opts, campaign.WithVisuals(visual.NewGenerator(images, visual.WithTimeout(cfg.Timeout))))

	return campaign.NewService(opts...)
}

func buildGenAIOptions(cfg Config) []genai.Option {
	var opts []genai.Option
	if key := cfg.TextAPIKey(); key != "" {
		opts = append(opts, genai.WithAPIKey(key))
	}
	if cfg.TextBaseURL != "" {
		opts = append(opts, genai.WithBaseURL(cfg.TextBaseURL))
	}
	if cfg.TextModel != "" {
		opts = append(opts, genai.WithModel(cfg.TextModel))
	}
	opts = append(opts, genai.WithTemperature(cfg.TextTemperature))
	if cfg.TextMaxTokens > 0 {
		opts = append(opts, genai.WithMaxTokens(cfg.TextMaxTokens))
	}
	return opts
}

func buildImageOptions(cfg Config) []imagegen.Option {
	var opts []imagegen.Option
	if cfg.HFAPIKey != "" {
		opts = append(opts, imagegen.WithAPIKey(cfg.HFAPIKey))
	}
	if cfg.HFBaseURL != "" {
		opts = append(opts, imagegen.WithBaseURL(cfg.HFBaseURL))
	}
	return opts
}
