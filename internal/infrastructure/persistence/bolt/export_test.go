package bolt

import "time"

// SetClock overrides the store clock in tests.
func (s *SettingsStore) SetClock(now func() time.Time) {
	s.now = now
}
