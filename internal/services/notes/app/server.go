package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/mediatr/internal/platform/timeouts"
	"github.com/louisbranch/mediatr/internal/services/notes/storage/sqlite"
	"github.com/louisbranch/mediatr/pipeline/telemetry"
)

// Config configures the notes HTTP server.
type Config struct {
	HTTPAddr string
	DBPath   string
	// Telemetry records request metrics through the global meter provider.
	Telemetry            bool
	MaxConcurrentPublish int
	RequestTimeout       time.Duration
	ShutdownTimeout      time.Duration
	ReadHeaderTimeout    time.Duration
}

// Server serves the notes API.
type Server struct {
	httpServer      *http.Server
	httpAddr        string
	shutdownTimeout time.Duration
	store           *sqlite.Store
	logger          *slog.Logger
}

// NewServer opens storage and builds the HTTP server.
func NewServer(ctx context.Context, config Config, logger *slog.Logger) (*Server, error) {
	if strings.TrimSpace(config.HTTPAddr) == "" {
		return nil, errors.New("http address is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = timeouts.Request
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = timeouts.ReadHeader
	}

	if dir := filepath.Dir(config.DBPath); strings.TrimSpace(config.DBPath) != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open notes store: %w", err)
	}

	opts := Options{
		Store:                store,
		Logger:               logger,
		MaxConcurrentPublish: config.MaxConcurrentPublish,
	}
	if config.Telemetry {
		client, err := telemetry.NewGlobalMeterClient()
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("telemetry client: %w", err)
		}
		opts.Telemetry = client
	}
	m, err := New(opts)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              config.HTTPAddr,
			Handler:           NewHandler(m, logger, config.RequestTimeout),
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		},
		httpAddr:        config.HTTPAddr,
		shutdownTimeout: config.ShutdownTimeout,
		store:           store,
		logger:          logger,
	}, nil
}

// Run builds the server and serves until ctx ends.
func Run(ctx context.Context, config Config, logger *slog.Logger) error {
	server, err := NewServer(ctx, config, logger)
	if err != nil {
		return err
	}
	defer server.Close()
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve notes: %w", err)
	}
	return nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("notes server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.InfoContext(ctx, "notes server listening", slog.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("close notes store", slog.Any("error", err))
	}
}
