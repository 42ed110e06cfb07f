package chisel

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config contains all configuration options for the chisel editing layer
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string
	// StrictStyles makes operations fail when an explicitly requested style
	// is not defined in the document. When false, unknown styles fall back
	// to "Normal" with a warning.
	StrictStyles bool
	// MaxFindResults caps the number of occurrences a text search collects.
	// 0 means unlimited.
	MaxFindResults int
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		StrictStyles:   true,
		MaxFindResults: 0,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// CHISEL_LOG_LEVEL
	if val := os.Getenv("CHISEL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// CHISEL_STRICT_STYLES
	if val := os.Getenv("CHISEL_STRICT_STYLES"); val != "" {
		config.StrictStyles = parseBool(val)
	}

	// CHISEL_MAX_FIND_RESULTS
	if val := os.Getenv("CHISEL_MAX_FIND_RESULTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.MaxFindResults = n
		}
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxFindResults < 0 {
		return errors.New("max find results cannot be negative")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
