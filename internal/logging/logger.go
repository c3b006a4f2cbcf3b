// Package logging builds the process-wide slog.Logger.
//
// The CLI passes the command's stderr so log records never mix with the
// rendered routes on stdout.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvroute/internal/config"
)

// New returns a logger writing to w. cfg.Format "json" selects the JSON
// handler, anything else the text handler. Records below cfg.Level are dropped.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
