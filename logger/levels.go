package logger

import "log/slog"

// Levels outside the slog range. LevelTrace is used for per-type plan
// building in the introspection engine; LevelFatal is accepted by
// ParseLevel for configurations that only want fatal output.
const (
	LevelTrace slog.Level = slog.LevelDebug - 4
	LevelFatal slog.Level = slog.LevelError + 4
)

// LevelName returns the display name of level, spelling the custom levels
// as TRACE and FATAL.
func LevelName(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelFatal:
		return "FATAL"
	}
	return level.String()
}
