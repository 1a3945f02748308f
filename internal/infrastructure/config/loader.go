package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/bangr/internal/domain/bang"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	paths      Paths
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager. A non-empty configFile
// replaces the XDG lookup.
func NewManager(configFile string) (*Manager, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	// BANGR_SEARCH_MAX_ITEMS, BANGR_SETTINGS_BACKEND, ...
	v.SetEnvPrefix("BANGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "BANGR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BANGR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BANGR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BANGR_LOG_FORMAT: %w", err)
	}
	// BANGR_CATALOG would be read as the whole [catalog] table under
	// AutomaticEnv, so the path variable keeps its full key.
	if err := v.BindEnv("catalog.path", "BANGR_CATALOG_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind BANGR_CATALOG_PATH: %w", err)
	}

	return &Manager{
		viper:      v,
		paths:      paths,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.paths.Ensure(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.normalize(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.defaultConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	configFile := m.defaultConfigFile()
	if createErr := m.createDefaultConfig(configFile); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalize cleans user input and fills the settings path from the XDG data
// directory when unset.
func (m *Manager) normalize(config *Config) {
	normalizeConfig(config)
	if config.Settings.Path == "" {
		config.Settings.Path = m.paths.SettingsFile(config.Settings.Backend)
	}
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(string(config.Settings.Backend))) {
	case "", string(SettingsBackendSQLite):
		config.Settings.Backend = SettingsBackendSQLite
	case string(SettingsBackendBolt), "bbolt", "boltdb":
		config.Settings.Backend = SettingsBackendBolt
	default:
		config.Settings.Backend = SettingsBackend(strings.ToLower(strings.TrimSpace(string(config.Settings.Backend))))
	}

	if triggers := bang.NormalizeTriggers(config.Resolve.FallbackTrigger); len(triggers) > 0 {
		config.Resolve.FallbackTrigger = strings.ToLower(triggers[0])
	} else {
		config.Resolve.FallbackTrigger = bang.FallbackTrigger
	}

	config.Catalog.Path = strings.TrimSpace(config.Catalog.Path)
	config.Settings.Path = strings.TrimSpace(config.Settings.Path)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	popular := config.Search.PopularServices[:0]
	for _, s := range config.Search.PopularServices {
		if s = strings.TrimSpace(s); s != "" {
			popular = append(popular, s)
		}
	}
	config.Search.PopularServices = popular
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Search.PopularServices = append([]string(nil), m.config.Search.PopularServices...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) defaultConfigFile() string {
	if m.configFile != "" {
		return m.configFile
	}
	return m.paths.ConfigFile()
}

// createDefaultConfig writes the defaults to a fresh TOML file.
func (m *Manager) createDefaultConfig(configFile string) error {
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	if m.configFile == "" {
		m.viper.SetConfigFile(configFile)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Settings.Path is set dynamically in Load(), no default needed

	m.setSearchDefaults(defaults)
	m.setResolveDefaults(defaults)
	m.setCatalogDefaults(defaults)
	m.setSettingsDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.max_items", defaults.Search.MaxItems)
	m.viper.SetDefault("search.dropdown_items", defaults.Search.DropdownItems)
	m.viper.SetDefault("search.cache_size", defaults.Search.CacheSize)
	m.viper.SetDefault("search.popular_services", defaults.Search.PopularServices)
}

func (m *Manager) setResolveDefaults(defaults *Config) {
	m.viper.SetDefault("resolve.fallback_trigger", defaults.Resolve.FallbackTrigger)
}

func (m *Manager) setCatalogDefaults(defaults *Config) {
	m.viper.SetDefault("catalog.path", defaults.Catalog.Path)
}

func (m *Manager) setSettingsDefaults(defaults *Config) {
	m.viper.SetDefault("settings.backend", string(defaults.Settings.Backend))
	m.viper.SetDefault("settings.path", defaults.Settings.Path)
	m.viper.SetDefault("settings.expiry_days", defaults.Settings.ExpiryDays)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
