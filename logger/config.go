package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the logger configuration
type Config struct {
	Level      slog.Level
	Format     string    // "json" or "text"
	AddSource  bool      // Whether to add source code information
	AddContext bool      // Whether to add context information
	Writer     io.Writer // Custom writer for output
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:      slog.LevelInfo,
		Format:     "json",
		AddSource:  false,
		AddContext: true,
		Writer:     os.Stderr,
	}
}

// LoadConfig loads the logger configuration from environment variables
func LoadConfig() Config {
	config := DefaultConfig()

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		config.Level = ParseLevel(levelStr, config.Level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		if format == "text" || format == "json" {
			config.Format = format
		}
	}

	if addSourceStr := os.Getenv("LOG_ADD_SOURCE"); addSourceStr != "" {
		if addSource, err := strconv.ParseBool(addSourceStr); err == nil {
			config.AddSource = addSource
		}
	}

	if addContextStr := os.Getenv("LOG_ADD_CONTEXT"); addContextStr != "" {
		if addContext, err := strconv.ParseBool(addContextStr); err == nil {
			config.AddContext = addContext
		}
	}

	return config
}

// ParseLevel turns a level name or an integer level into a slog.Level.
// Unknown values return fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "FATAL":
		return LevelFatal
	}
	if levelInt, err := strconv.Atoi(s); err == nil {
		return slog.Level(levelInt)
	}
	return fallback
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) *slog.Logger {
	return NewLoggerFactory(config).CreateLogger()
}
