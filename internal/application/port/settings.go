package port

import (
	"context"

	"github.com/bnema/bangr/internal/domain/entity"
)

// SettingsStore persists the user's bang settings across restarts.
// Callers treat every Load result as authoritative; nothing is cached between
// calls.
type SettingsStore interface {
	// Load returns the stored settings, or empty settings when nothing is
	// stored or the stored blob has expired.
	Load(ctx context.Context) (entity.UserSettings, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, settings entity.UserSettings) error

	// Update replaces a single setting, keeping the others.
	Update(ctx context.Context, key entity.SettingKey, value any) error

	// Close releases the underlying storage.
	Close() error
}
