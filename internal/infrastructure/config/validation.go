package config

import (
	"fmt"
	"strings"
)

const maxCacheSize = 10000

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateResolve(config)...)
	validationErrors = append(validationErrors, validateSettings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if config.Search.MaxItems < 1 {
		validationErrors = append(validationErrors, "search.max_items must be at least 1")
	}
	if config.Search.DropdownItems < 1 {
		validationErrors = append(validationErrors, "search.dropdown_items must be at least 1")
	}
	if config.Search.CacheSize < 1 || config.Search.CacheSize > maxCacheSize {
		validationErrors = append(validationErrors, fmt.Sprintf("search.cache_size must be between 1 and %d", maxCacheSize))
	}
	return validationErrors
}

func validateResolve(config *Config) []string {
	if strings.ContainsAny(config.Resolve.FallbackTrigger, " \t\n") {
		return []string{"resolve.fallback_trigger must not contain whitespace"}
	}
	return nil
}

func validateSettings(config *Config) []string {
	var validationErrors []string
	switch config.Settings.Backend {
	case SettingsBackendSQLite, SettingsBackendBolt:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"settings.backend must be one of: %s, %s (got %q)",
			SettingsBackendSQLite, SettingsBackendBolt, config.Settings.Backend,
		))
	}
	if config.Settings.ExpiryDays < 0 {
		validationErrors = append(validationErrors, "settings.expiry_days must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}
