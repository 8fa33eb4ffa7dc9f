package logging

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps DEBUG, INFO, WARN/WARNING and ERROR to slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// New returns a JSON logger on stdout and installs it as the slog default.
// Unknown levels fall back to INFO.
func New(level string) *slog.Logger {
	lvl, ok := ParseLevel(level)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("unknown log level, using INFO", "level", level)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
