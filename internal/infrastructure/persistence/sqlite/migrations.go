package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/bangr/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrator(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return p, nil
}

// Migrate brings the settings schema up to the latest embedded version.
func Migrate(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	p, err := newMigrator(db)
	if err != nil {
		return err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if len(results) == 0 {
		log.Debug().Msg("settings schema up to date")
		return nil
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("settings migration applied")
	}
	return nil
}

// SchemaVersion returns the applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	p, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
