package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/logging"
)

// ErrClosed is returned by DB after Close.
var ErrClosed = errors.New("settings database closed")

// LazyDB opens the settings database on first use. Commands such as
// `bangr search` never touch user settings and so never pay for loading
// SQLite or running migrations. A failed open is retried on the next call.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

var _ port.SettingsDatabase = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens and migrates the database if needed and returns the connection.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrClosed
	case l.db != nil:
		return l.db, nil
	}

	logging.FromContext(ctx).Debug().Str("path", l.path).Msg("opening settings database")
	db, err := NewConnection(ctx, l.path)
	if err != nil {
		return nil, fmt.Errorf("open settings database %q: %w", l.path, err)
	}
	l.db = db
	return db, nil
}

func (l *LazyDB) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close closes the connection if one was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func (l *LazyDB) Path() string {
	return l.path
}
