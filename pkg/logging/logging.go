// Package logging builds the slog logger the service runs with. Level and
// format come from configuration so a deployment can switch between
// human-readable text and machine-parseable JSON without a rebuild.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New builds a logger writing to stdout per the configuration.
func New(cfg *Config) *slog.Logger {
	return NewWriter(os.Stdout, cfg)
}

// NewWriter builds a logger writing to w per the configuration.
func NewWriter(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Level is a logging severity threshold.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Validate rejects levels outside the known set.
func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l)
	}
}

// ToSlogLevel maps the level onto slog's scale. Unknown levels fall back
// to slog.LevelInfo.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format selects the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate rejects formats outside the known set.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", f)
	}
}
