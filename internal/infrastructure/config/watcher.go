package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/bangr/internal/logging"
)

// Watch reloads the config file whenever it changes on disk and notifies the
// registered callbacks. Calling it twice is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleChange)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// handleChange applies one fsnotify event. Editors often write a file more
// than once per save, so events that leave every section unchanged are
// swallowed.
func (m *Manager) handleChange(e fsnotify.Event) {
	log := logging.NewFromEnv()

	m.mu.Lock()
	previous := m.config
	if err := m.reload(); err != nil {
		// last valid config stays active
		log.Warn().Err(err).Str("file", e.Name).Msg("ignoring invalid config change")
		m.mu.Unlock()
		return
	}

	sections := changedSections(previous, m.config)
	if len(sections) == 0 {
		log.Debug().Str("op", e.Op.String()).Msg("config rewritten without changes")
		m.mu.Unlock()
		return
	}
	log.Info().Strs("sections", sections).Str("file", e.Name).Msg("config reloaded")
	m.notifyCallbacksLocked()
}

// changedSections lists the top-level sections that differ between two
// configs. A nil previous config counts as all sections changed.
func changedSections(previous, current *Config) []string {
	if previous == nil {
		return []string{"search", "resolve", "catalog", "settings", "logging"}
	}

	var out []string
	ps, cs := previous.Search, current.Search
	if ps.MaxItems != cs.MaxItems || ps.DropdownItems != cs.DropdownItems ||
		ps.CacheSize != cs.CacheSize || !slices.Equal(ps.PopularServices, cs.PopularServices) {
		out = append(out, "search")
	}
	if previous.Resolve != current.Resolve {
		out = append(out, "resolve")
	}
	if previous.Catalog != current.Catalog {
		out = append(out, "catalog")
	}
	if previous.Settings != current.Settings {
		out = append(out, "settings")
	}
	if previous.Logging != current.Logging {
		out = append(out, "logging")
	}
	return out
}

// notifyCallbacksLocked must be called with m.mu held. It releases the lock
// before running the callbacks so they may call Get.
func (m *Manager) notifyCallbacksLocked() {
	current := m.config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(current)
	}
}

// OnConfigChange registers cb to run after every effective reload.
func (m *Manager) OnConfigChange(cb func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, cb)
}

// reload re-reads the file into m.config. Caller holds m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	next, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.normalize(next)
	if err := validateConfig(next); err != nil {
		return err
	}

	m.config = next
	return nil
}
