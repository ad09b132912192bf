package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel reads a level name, case-insensitively. "warning" is accepted for warn.
func ParseLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", input)
}

// ParseLogLevel is ParseLevel falling back to info. The fallback is reported on stderr so command output stays clean.
func ParseLogLevel(input string) slog.Level {
	level, err := ParseLevel(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s, logging at info\n", err)
	}
	return level
}
