package entity

import (
	"fmt"
	"time"

	"github.com/bnema/bangr/internal/domain/bang"
)

// SettingKey names one field of UserSettings for partial updates.
type SettingKey string

const (
	SettingDefaultBang SettingKey = "default_bang"
	SettingCustomBangs SettingKey = "custom_bangs"
)

// DefaultSettingsExpiry is how long a stored settings blob stays valid.
const DefaultSettingsExpiry = 365 * 24 * time.Hour

// UserSettings is the user-owned part of bang configuration.
type UserSettings struct {
	// DefaultBang is the trigger used when a query has no bang. Empty means
	// the built-in fallback.
	DefaultBang string       `json:"default_bang,omitempty"`
	CustomBangs []bang.Entry `json:"custom_bangs,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Expired reports whether the settings are past their expiry. A zero
// ExpiresAt never expires.
func (s UserSettings) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Stamp sets UpdatedAt to now and ExpiresAt to now+ttl (no expiry when ttl <= 0).
func (s *UserSettings) Stamp(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = time.Time{}
	if ttl > 0 {
		s.ExpiresAt = now.Add(ttl)
	}
}

// Apply sets the field named by key. It is shared by store implementations so
// Update behaves the same across backends.
func (s *UserSettings) Apply(key SettingKey, value any) error {
	switch key {
	case SettingDefaultBang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %s: expected string, got %T", key, value)
		}
		s.DefaultBang = v
	case SettingCustomBangs:
		v, ok := value.([]bang.Entry)
		if !ok {
			return fmt.Errorf("setting %s: expected []bang.Entry, got %T", key, value)
		}
		s.CustomBangs = v
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
