package sqlite

import (
	"time"

	"github.com/bnema/bangr/internal/application/port"
)

// SetClock overrides the store clock in tests.
func SetClock(store port.SettingsStore, now func() time.Time) {
	store.(*settingsStore).now = now
}
