// Package bolt provides a bbolt-backed settings store, for users who prefer a
// single embedded key/value file over SQLite.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/entity"
	"github.com/bnema/bangr/internal/logging"
)

var (
	settingsBucket = []byte("settings")
	settingsKey    = []byte("user")
)

// SettingsStore keeps the user settings as one JSON value in a bolt bucket.
type SettingsStore struct {
	db  *bbolt.DB
	ttl time.Duration
	now func() time.Time
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore opens (or creates) the bolt file at dbPath. Saved settings
// expire after ttl; ttl <= 0 disables expiry.
func NewSettingsStore(ctx context.Context, dbPath string, ttl time.Duration) (*SettingsStore, error) {
	const dbDirPerm = 0o750

	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(settingsBucket)
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", dbPath).Msg("bolt settings store opened")

	return &SettingsStore{db: db, ttl: ttl, now: time.Now}, nil
}

// Load returns the stored settings. Expired settings are deleted and read as
// empty.
func (s *SettingsStore) Load(ctx context.Context) (entity.UserSettings, error) {
	var settings entity.UserSettings
	var expired bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		settings, err = s.read(tx)
		expired = settings.Expired(s.now())
		return err
	})
	if err != nil {
		return entity.UserSettings{}, err
	}
	if !expired {
		return settings, nil
	}

	logging.FromContext(ctx).Debug().Time("expires_at", settings.ExpiresAt).Msg("stored bang settings expired")
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(settingsBucket).Delete(settingsKey)
	})
	if err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to purge expired settings: %w", err)
	}
	return entity.UserSettings{}, nil
}

// Save replaces the stored settings.
func (s *SettingsStore) Save(ctx context.Context, settings entity.UserSettings) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return s.write(tx, settings)
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("default_bang", settings.DefaultBang).
		Int("custom_bangs", len(settings.CustomBangs)).
		Msg("bang settings saved")
	return nil
}

// Update replaces one setting inside a single write transaction.
func (s *SettingsStore) Update(_ context.Context, key entity.SettingKey, value any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		settings, err := s.read(tx)
		if err != nil {
			return err
		}
		if settings.Expired(s.now()) {
			settings = entity.UserSettings{}
		}
		if err := settings.Apply(key, value); err != nil {
			return err
		}
		return s.write(tx, settings)
	})
}

// Close closes the bolt file.
func (s *SettingsStore) Close() error {
	return s.db.Close()
}

func (s *SettingsStore) read(tx *bbolt.Tx) (entity.UserSettings, error) {
	var settings entity.UserSettings
	data := tx.Bucket(settingsBucket).Get(settingsKey)
	if data == nil {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsStore) write(tx *bbolt.Tx, settings entity.UserSettings) error {
	settings.Stamp(s.now(), s.ttl)
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return tx.Bucket(settingsBucket).Put(settingsKey, data)
}
