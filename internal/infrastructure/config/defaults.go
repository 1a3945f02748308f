package config

import "github.com/bnema/bangr/internal/domain/bang"

// Default configuration constants
const (
	defaultCacheSize       = 50
	defaultExpiryDays      = 365 // 1 year
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultSettingsBackend = SettingsBackendSQLite
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	popular := make([]string, len(bang.DefaultPopularServices))
	copy(popular, bang.DefaultPopularServices)

	return &Config{
		Search: SearchConfig{
			MaxItems:        bang.DefaultMaxItems,
			DropdownItems:   bang.DropdownMaxItems,
			CacheSize:       defaultCacheSize,
			PopularServices: popular,
		},
		Resolve: ResolveConfig{
			FallbackTrigger: bang.FallbackTrigger,
		},
		Settings: SettingsConfig{
			Backend:    defaultSettingsBackend,
			ExpiryDays: defaultExpiryDays,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
