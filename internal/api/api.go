// Package api exposes campaign generation, export and flow assembly over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/campaign"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/export"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Request body limits.
const (
	maxBodyBytes   = 1 << 20
	maxExportBytes = 32 << 20
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end of the campaign service.
type Server struct {
	http.Server
	campaigns *campaign.Service
	exporter  *export.Exporter
}

// Opts holds configuration for the server.
type Opts struct {
	Addr     string
	Exporter *export.Exporter
}

// Option configures the server.
type Option func(*Opts)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) { o.Addr = addr }
}

// WithExporter sets the exporter used by the export endpoint.
func WithExporter(e *export.Exporter) Option {
	return func(o *Opts) { o.Exporter = e }
}

// NewServer creates a server backed by svc.
func NewServer(svc *campaign.Service, opts ...Option) *Server {
	cfg := Opts{Addr: DefaultAddr}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Exporter == nil {
		cfg.Exporter = export.NewExporter()
	}

	s := &Server{
		Server: http.Server{
			Addr:              cfg.Addr,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		campaigns: svc,
		exporter:  cfg.Exporter,
	}

	router := mux.NewRouter()
	router.HandleFunc("/campaigns", s.generateCampaignHandler).Methods(http.MethodPost)
	router.HandleFunc("/campaigns/export", s.exportCampaignHandler).Methods(http.MethodPost)
	router.HandleFunc("/flows", s.buildFlowHandler).Methods(http.MethodPost)
	router.HandleFunc("/export/template", s.exportTemplateHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	router.Use(loggingMiddleware)
	s.Handler = router
	return s
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server.Run: listening", "addr", s.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Server.Run: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server.Run: shutdown failed", "error", err)
		return err
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Server.loggingMiddleware: request served", "method", r.Method, "path", r.URL.Path,
			"duration", time.Since(start))
	})
}
