// Package notes parses notes command flags and launches the service.
package notes

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/mediatr/internal/platform/cmd"
	server "github.com/louisbranch/mediatr/internal/services/notes/app"
)

// Config holds notes command configuration.
type Config struct {
	HTTPAddr             string        `env:"MEDIATR_NOTES_HTTP_ADDR"              envDefault:":8090"`
	DBPath               string        `env:"MEDIATR_NOTES_DB_PATH"                envDefault:"data/notes.db"`
	Telemetry            bool          `env:"MEDIATR_NOTES_TELEMETRY"              envDefault:"false"`
	MaxConcurrentPublish int           `env:"MEDIATR_NOTES_MAX_CONCURRENT_PUBLISH" envDefault:"4"`
	RequestTimeout       time.Duration `env:"MEDIATR_NOTES_REQUEST_TIMEOUT"        envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "notes HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "notes SQLite database path")
	fs.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "record request metrics")
	fs.IntVar(&cfg.MaxConcurrentPublish, "max-concurrent-publish", cfg.MaxConcurrentPublish, "event handlers run at once, 0 for unbounded")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "per request dispatch timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the notes HTTP API.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceNotes, func(ctx context.Context, rt entrypoint.Runtime) error {
		if err := server.Run(ctx, server.Config{
			HTTPAddr:             cfg.HTTPAddr,
			DBPath:               cfg.DBPath,
			Telemetry:            cfg.Telemetry,
			MaxConcurrentPublish: cfg.MaxConcurrentPublish,
			RequestTimeout:       cfg.RequestTimeout,
		}, rt.Logger); err != nil {
			return fmt.Errorf("serve notes: %w", err)
		}
		return nil
	})
}
