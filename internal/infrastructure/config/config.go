package config

import (
	"time"

	"github.com/bnema/bangr/internal/domain/bang"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for bangr.
type Config struct {
	Search   SearchConfig   `mapstructure:"search" toml:"search"`
	Resolve  ResolveConfig  `mapstructure:"resolve" toml:"resolve"`
	Catalog  CatalogConfig  `mapstructure:"catalog" toml:"catalog"`
	Settings SettingsConfig `mapstructure:"settings" toml:"settings"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
}

// SearchConfig tunes ranked bang search.
type SearchConfig struct {
	// MaxItems is the result limit of `bangr search`.
	MaxItems int `mapstructure:"max_items" toml:"max_items"`
	// DropdownItems is the smaller limit used for suggestion lists.
	DropdownItems int `mapstructure:"dropdown_items" toml:"dropdown_items"`
	// CacheSize bounds the number of cached queries.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size"`
	// PopularServices boosts services whose name contains one of these words.
	PopularServices []string `mapstructure:"popular_services" toml:"popular_services"`
}

// ResolveConfig controls query resolution.
type ResolveConfig struct {
	// FallbackTrigger is used when no bang matched and no default bang is set.
	FallbackTrigger string `mapstructure:"fallback_trigger" toml:"fallback_trigger"`
}

// CatalogConfig selects the base catalog.
type CatalogConfig struct {
	// Path to a JSON, YAML or TOML catalog. Empty uses the built-in catalog.
	Path string `mapstructure:"path" toml:"path"`
}

// SettingsBackend selects the user settings store.
type SettingsBackend string

const (
	SettingsBackendSQLite SettingsBackend = "sqlite"
	SettingsBackendBolt   SettingsBackend = "bolt"
)

// SettingsConfig configures the user settings store.
type SettingsConfig struct {
	Backend SettingsBackend `mapstructure:"backend" toml:"backend"`
	// Path of the store file. Empty means the XDG data directory.
	Path string `mapstructure:"path" toml:"path"`
	// ExpiryDays after the last write; 0 keeps settings forever.
	ExpiryDays int `mapstructure:"expiry_days" toml:"expiry_days"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// RankPolicy converts the search section into a ranking policy.
func (c *Config) RankPolicy() bang.RankPolicy {
	if len(c.Search.PopularServices) == 0 {
		return bang.DefaultRankPolicy()
	}
	popular := make([]string, len(c.Search.PopularServices))
	copy(popular, c.Search.PopularServices)
	return bang.RankPolicy{PopularServices: popular}
}

// TTL returns how long saved settings stay valid.
func (s SettingsConfig) TTL() time.Duration {
	return time.Duration(s.ExpiryDays) * 24 * time.Hour
}
