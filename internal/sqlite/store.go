// Package sqlite implements types.Store on top of SQLite. It reads and
// writes nullable BOOLEAN columns of existing tables, mapping NULL to
// types.Unknown.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Store implements types.Store. All methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	owned  bool // Close closes db only if Open created it.
	closed bool
}

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db, owned: true}, nil
}

// NewStore wraps an existing connection. Close leaves db open.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the database. Idempotent. After Close all operations
// return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.owned {
		return s.db.Close()
	}
	return nil
}

// Tables returns the user tables, sorted by name.
func (s *Store) Tables() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// TristateColumns returns the nullable BOOLEAN columns of table.
func (s *Store) TristateColumns(table string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	cols, err := s.columns(table)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, c := range cols {
		if c.isTristate() {
			names = append(names, c.name)
		}
	}
	return names, nil
}

var _ types.Store = (*Store)(nil)
