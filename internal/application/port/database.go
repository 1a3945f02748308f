package port

import (
	"context"
	"database/sql"
)

// SettingsDatabase hands out the SQL connection behind the SQLite settings
// store. Implementations may open it on first use.
type SettingsDatabase interface {
	// DB returns the open connection with the schema migrated.
	DB(ctx context.Context) (*sql.DB, error)

	// Opened reports whether a connection is currently held.
	Opened() bool

	Close() error
}
