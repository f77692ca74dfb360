package settings

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a configured *slog.Logger without installing it.
//
// The level parameter sets the minimum log level. Valid values are
// "debug", "info", "warn", and "error"; unrecognized values default to
// info. The format parameter selects the handler: "text" uses
// slog.NewTextHandler, everything else (including "json") uses
// slog.NewJSONHandler. When level is "debug", source locations are
// included. Sensitive attribute values are redacted (see redact.go).
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ApplyLogPreferences builds a logger from the preferences and installs
// it as the process default via slog.SetDefault. The writer receives all
// output; pass os.Stderr for conventional behavior.
func ApplyLogPreferences(p LogPreferences, w io.Writer) {
	slog.SetDefault(NewLogger(p.Level, p.Format, w))
}

// ResetLogPreferences restores a stock text logger on os.Stderr as the
// process default, discarding any previously applied preferences.
func ResetLogPreferences() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// parseLevel converts a level string to slog.Level. Unrecognized values
// default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
