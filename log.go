package walker

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logger is the package-wide structured logger. walker is single-threaded,
// so it is swapped without synchronization; call SetLogger before NewScene.
var logger = slog.Default()

// SetLogger installs l as the logger used by the package. A nil logger
// restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Logger returns the logger currently used by the package.
func Logger() *slog.Logger {
	return logger
}

// NewLogger builds a text logger writing to w at the named level
// (debug, info, warn or error).
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), nil
}

// ParseLogLevel maps a level name to its slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("walker: invalid log level %q (want debug, info, warn or error)", level)
}
