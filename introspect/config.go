package introspect

import (
	"log/slog"
	"os"
	"strconv"
)

// Config holds the engine configuration
type Config struct {
	CachePlans bool         // Keep per-type field plans between calls
	Accessor   Accessor     // Field reader/writer, NewAccessor() when nil
	Logger     *slog.Logger // Destination of engine logs, the current package logger when nil
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		CachePlans: true,
	}
}

// LoadConfig loads the engine configuration from environment variables
func LoadConfig() Config {
	config := DefaultConfig()

	// Load plan caching from FIELDSPY_CACHE_PLANS environment variable
	if cacheStr := os.Getenv("FIELDSPY_CACHE_PLANS"); cacheStr != "" {
		if cache, err := strconv.ParseBool(cacheStr); err == nil {
			config.CachePlans = cache
		}
	}

	return config
}
