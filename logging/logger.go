// Package logging builds the structured loggers used by the pathprobe CLI and
// query runner.
//
// It is a thin layer over log/slog: a Config picks the minimum Level, the
// output format (text or JSON) and the destination, and New resolves it to a
// *slog.Logger. Library packages never log; they receive a logger from here.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Info("graph loaded", "vertices", g.VertexCount())
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug traces every query and every rejected command line.
	LevelDebug Level = iota
	// LevelInfo reports loaded graphs and completed commands.
	LevelInfo
	// LevelWarn reports recovered problems such as failed shutdowns.
	LevelWarn
	// LevelError reports failures that end a command.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
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

// toSlogLevel converts our Level to slog.Level; unknown values map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive name ("debug", "info", "warn",
// "warning", "error") to a Level. The empty string is Info.
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

// Config configures New. The zero value writes Info and above to stderr as text.
type Config struct {
	// Level sets the minimum level; records below it are discarded.
	Level Level

	// JSON selects slog's JSON handler instead of the text handler.
	JSON bool

	// Output receives log records. Default: os.Stderr.
	Output io.Writer

	// Service, when set, is attached to every record as "service".
	Service string
}

// New resolves cfg into a *slog.Logger.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(Config{Level: LevelError + 1, Output: io.Discard})
}
