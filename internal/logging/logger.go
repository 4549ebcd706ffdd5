// Package logging builds the structured slog.Logger shared by the sixdegrees
// CLI and query service.
//
// Output goes to stderr (Unix convention, keeps stdout clean for results) as
// human-readable text by default, or JSON for machine ingestion:
//
//	logger := logging.New(logging.Config{Level: logging.LevelInfo, Service: "cli"})
//	logger.Info("dataset loaded", "actors", n)
//
// The core graph packages never log; only the edges of the program do.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity that gets written. The zero value is
// LevelInfo.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota - 1
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for recoverable oddities (skipped records, slow queries).
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns the upper-case level name, or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
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

// ParseLevel maps "debug", "info", "warn"/"warning", "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config controls logger construction.
type Config struct {
	// Level sets the minimum log level. The zero value means LevelInfo.
	Level Level

	// Service is attached to every record as the "service" attribute when set.
	Service string

	// JSON switches from text to JSON output.
	JSON bool

	// Output overrides the destination; nil means os.Stderr.
	Output io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}
