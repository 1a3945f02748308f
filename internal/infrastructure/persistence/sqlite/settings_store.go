package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/entity"
	"github.com/bnema/bangr/internal/logging"
)

const (
	selectSettings = `SELECT data FROM bang_settings WHERE id = 1`
	upsertSettings = `INSERT INTO bang_settings (id, data, updated_at, expires_at)
VALUES (1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at, expires_at = excluded.expires_at`
	deleteExpiredSettings = `DELETE FROM bang_settings WHERE expires_at > 0 AND expires_at < ?`
)

type settingsStore struct {
	provider port.SettingsDatabase
	ttl      time.Duration
	now      func() time.Time
}

// NewSettingsStore creates a SQLite-backed settings store. Saved settings
// expire after ttl; ttl <= 0 disables expiry.
func NewSettingsStore(provider port.SettingsDatabase, ttl time.Duration) port.SettingsStore {
	return &settingsStore{provider: provider, ttl: ttl, now: time.Now}
}

func (s *settingsStore) Load(ctx context.Context) (entity.UserSettings, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return entity.UserSettings{}, err
	}
	return s.load(ctx, db)
}

func (s *settingsStore) load(ctx context.Context, q queryer) (entity.UserSettings, error) {
	log := logging.FromContext(ctx)
	now := s.now()

	if _, err := q.ExecContext(ctx, deleteExpiredSettings, now.UnixMilli()); err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to purge expired settings: %w", err)
	}

	var data string
	err := q.QueryRowContext(ctx, selectSettings).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Msg("no stored bang settings")
		return entity.UserSettings{}, nil
	}
	if err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings entity.UserSettings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if settings.Expired(now) {
		log.Debug().Time("expires_at", settings.ExpiresAt).Msg("stored bang settings expired")
		return entity.UserSettings{}, nil
	}
	return settings, nil
}

func (s *settingsStore) Save(ctx context.Context, settings entity.UserSettings) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, db, settings)
}

func (s *settingsStore) save(ctx context.Context, q queryer, settings entity.UserSettings) error {
	settings.Stamp(s.now(), s.ttl)

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	var expires int64
	if !settings.ExpiresAt.IsZero() {
		expires = settings.ExpiresAt.UnixMilli()
	}
	if _, err := q.ExecContext(ctx, upsertSettings, string(data), settings.UpdatedAt.UnixMilli(), expires); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("default_bang", settings.DefaultBang).
		Int("custom_bangs", len(settings.CustomBangs)).
		Msg("bang settings saved")
	return nil
}

// Update runs the read-modify-write in one transaction.
func (s *settingsStore) Update(ctx context.Context, key entity.SettingKey, value any) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	settings, err := s.load(ctx, tx)
	if err != nil {
		return err
	}
	if err := settings.Apply(key, value); err != nil {
		return err
	}
	if err := s.save(ctx, tx, settings); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

func (s *settingsStore) Close() error {
	return s.provider.Close()
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
