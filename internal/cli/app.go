// Package cli wires configuration, stores and use cases for the bangr
// commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/cli/styles"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/domain/build"
	"github.com/bnema/bangr/internal/infrastructure/cache"
	"github.com/bnema/bangr/internal/infrastructure/catalog"
	"github.com/bnema/bangr/internal/infrastructure/config"
	"github.com/bnema/bangr/internal/infrastructure/persistence/bolt"
	"github.com/bnema/bangr/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bangr/internal/logging"
)

const dataDirPerm = 0o755

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Base catalog before custom bangs are merged in.
	Catalog []bang.Entry

	// Use cases
	SearchUC      *usecase.SearchBangsUseCase
	ResolveUC     *usecase.ResolveBangUseCase
	CustomBangsUC *usecase.ManageCustomBangsUseCase

	settings port.SettingsStore
	results  *cache.LRU[string, usecase.CachedResults]

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. configFile
// overrides the XDG config location when non-empty.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	entries, err := loadCatalog(ctx, cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	settings, err := openSettingsStore(ctx, cfg.Settings)
	if err != nil {
		return nil, err
	}

	results := cache.NewLRU[string, usecase.CachedResults](cfg.Search.CacheSize)
	searchUC := usecase.NewSearchBangsUseCase(entries, results, cfg.RankPolicy())

	app := &App{
		Config:        cfg,
		Manager:       mgr,
		Theme:         styles.NewTheme(),
		Catalog:       entries,
		SearchUC:      searchUC,
		ResolveUC:     usecase.NewResolveBangUseCase(searchUC, settings, cfg.Resolve.FallbackTrigger),
		CustomBangsUC: usecase.NewManageCustomBangsUseCase(settings, searchUC),
		settings:      settings,
		results:       results,
		ctx:           ctx,
	}

	mgr.OnConfigChange(app.applyConfig)
	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.results != nil {
		stats := a.results.Stats()
		logging.FromContext(a.ctx).Debug().
			Uint64("hits", stats.Hits).
			Uint64("misses", stats.Misses).
			Uint64("evictions", stats.Evictions).
			Msg("search cache stats")
	}
	if a.settings != nil {
		return a.settings.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Watch reloads the ranking policy whenever the config file changes. Only
// long-running commands need it.
func (a *App) Watch() error {
	return a.Manager.Watch()
}

func (a *App) applyConfig(cfg *config.Config) {
	log := logging.FromContext(a.ctx)
	a.SearchUC.SetPolicy(a.ctx, cfg.RankPolicy())
	log.Info().Int("popular_services", len(cfg.Search.PopularServices)).Msg("config reloaded, search cache cleared")
}

func loadCatalog(ctx context.Context, path string) ([]bang.Entry, error) {
	log := logging.FromContext(ctx)
	if path == "" {
		return catalog.Default()
	}
	entries, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Debug().Str("path", path).Int("bangs", len(entries)).Msg("catalog loaded")
	return entries, nil
}

func openSettingsStore(ctx context.Context, cfg config.SettingsConfig) (port.SettingsStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	ttl := cfg.TTL()

	switch cfg.Backend {
	case config.SettingsBackendBolt:
		store, err := bolt.NewSettingsStore(ctx, cfg.Path, ttl)
		if err != nil {
			return nil, fmt.Errorf("open settings: %w", err)
		}
		return store, nil
	default:
		// opened on first use
		return sqlite.NewSettingsStore(sqlite.NewLazyDB(cfg.Path), ttl), nil
	}
}
