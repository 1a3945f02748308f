package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/domain/entity"
	"github.com/bnema/bangr/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bangr/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestStore(t *testing.T, ttl time.Duration) (port.SettingsStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	store := sqlite.NewSettingsStore(sqlite.NewLazyDB(dbPath), ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, dbPath
}

func myTube() bang.Entry {
	return bang.Entry{
		Triggers:    []string{"mt", "mytube"},
		ServiceName: "MyTube",
		Domain:      "mytube.example",
		Relevance:   bang.CustomRelevance,
		URLTemplate: "https://mytube.example/?q={{{s}}}",
	}
}

func TestSettingsStore_LoadEmpty(t *testing.T) {
	store, _ := newTestStore(t, entity.DefaultSettingsExpiry)

	settings, err := store.Load(testCtx())

	require.NoError(t, err)
	assert.Empty(t, settings.DefaultBang)
	assert.Empty(t, settings.CustomBangs)
}

func TestSettingsStore_SaveAndLoad(t *testing.T) {
	ctx := testCtx()
	store, _ := newTestStore(t, entity.DefaultSettingsExpiry)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sqlite.SetClock(store, func() time.Time { return now })

	require.NoError(t, store.Save(ctx, entity.UserSettings{
		DefaultBang: "ddg",
		CustomBangs: []bang.Entry{myTube()},
	}))

	settings, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "ddg", settings.DefaultBang)
	assert.Equal(t, []bang.Entry{myTube()}, settings.CustomBangs)
	assert.True(t, now.Equal(settings.UpdatedAt))
	assert.True(t, now.Add(entity.DefaultSettingsExpiry).Equal(settings.ExpiresAt))
}

func TestSettingsStore_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "settings.db")

	first := sqlite.NewSettingsStore(sqlite.NewLazyDB(dbPath), 0)
	require.NoError(t, first.Save(ctx, entity.UserSettings{DefaultBang: "w"}))
	require.NoError(t, first.Close())

	second := sqlite.NewSettingsStore(sqlite.NewLazyDB(dbPath), 0)
	t.Cleanup(func() { _ = second.Close() })

	settings, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "w", settings.DefaultBang)
	assert.True(t, settings.ExpiresAt.IsZero(), "ttl 0 never expires")
}

func TestSettingsStore_Expiry(t *testing.T) {
	ctx := testCtx()
	store, _ := newTestStore(t, time.Hour)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sqlite.SetClock(store, func() time.Time { return now })
	require.NoError(t, store.Save(ctx, entity.UserSettings{DefaultBang: "gh"}))

	sqlite.SetClock(store, func() time.Time { return now.Add(59 * time.Minute) })
	settings, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gh", settings.DefaultBang)

	sqlite.SetClock(store, func() time.Time { return now.Add(61 * time.Minute) })
	settings, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultBang, "expired settings read as absent")

	sqlite.SetClock(store, func() time.Time { return now })
	settings, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultBang, "expired row was purged")
}

func TestSettingsStore_Update(t *testing.T) {
	ctx := testCtx()
	store, _ := newTestStore(t, entity.DefaultSettingsExpiry)

	require.NoError(t, store.Save(ctx, entity.UserSettings{DefaultBang: "ddg"}))
	require.NoError(t, store.Update(ctx, entity.SettingCustomBangs, []bang.Entry{myTube()}))

	settings, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ddg", settings.DefaultBang, "other keys are kept")
	assert.Equal(t, []bang.Entry{myTube()}, settings.CustomBangs)

	require.NoError(t, store.Update(ctx, entity.SettingDefaultBang, ""))
	settings, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultBang)
	assert.Len(t, settings.CustomBangs, 1)
}

func TestSettingsStore_UpdateRejectsBadValue(t *testing.T) {
	ctx := testCtx()
	store, _ := newTestStore(t, 0)

	require.NoError(t, store.Save(ctx, entity.UserSettings{DefaultBang: "w"}))

	assert.Error(t, store.Update(ctx, entity.SettingDefaultBang, 42))
	assert.Error(t, store.Update(ctx, entity.SettingKey("theme"), "dark"))

	settings, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "w", settings.DefaultBang, "failed update is rolled back")
}

func TestSettingsStore_ConcurrentUpdates(t *testing.T) {
	ctx := testCtx()
	store, _ := newTestStore(t, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Update(ctx, entity.SettingDefaultBang, "g"))
		}()
	}
	wg.Wait()

	settings, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "g", settings.DefaultBang)
}

func TestSettingsStore_MigrationVersion(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "settings.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
