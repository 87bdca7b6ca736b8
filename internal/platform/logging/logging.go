// Package logging builds the process slog.Logger.
//
// Records emitted with a context that carries a span gain trace_id and span_id
// attributes, and a request_id attribute when the context carries one.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/louisbranch/mediatr/internal/platform/config"
	"github.com/louisbranch/mediatr/internal/platform/requestctx"
	"go.opentelemetry.io/otel/trace"
)

// Format names accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the log level and output encoding.
type Config struct {
	Level  string `env:"MEDIATR_LOG_LEVEL" envDefault:"info"`
	Format string `env:"MEDIATR_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New returns a logger writing to w. The service name, when set, is attached
// to every record.
func New(w io.Writer, service string, cfg Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := slog.New(WithTrace(h))
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}
	return logger, nil
}

// WithTrace wraps h so each record carries the span and request ids of its
// context.
func WithTrace(h slog.Handler) slog.Handler {
	if _, ok := h.(traceHandler); ok {
		return h
	}
	return traceHandler{next: h}
}

type traceHandler struct {
	next slog.Handler
}

func (h traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h traceHandler) Handle(ctx context.Context, r slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	requestID := requestctx.RequestIDFromContext(ctx)
	if !sc.IsValid() && requestID == "" {
		return h.next.Handle(ctx, r)
	}
	r = r.Clone()
	if sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	if requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	return h.next.Handle(ctx, r)
}

func (h traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceHandler{next: h.next.WithAttrs(attrs)}
}

func (h traceHandler) WithGroup(name string) slog.Handler {
	return traceHandler{next: h.next.WithGroup(name)}
}
