// Package sqlite provides the public API for the SQLite tri-state store.
// This package exposes the factory functions while keeping implementation
// details internal.
package sqlite

import (
	"database/sql"

	"github.com/mesh-intelligence/tristate/internal/sqlite"
	"github.com/mesh-intelligence/tristate/pkg/types"
)

// Open opens (or creates) the SQLite database at path.
//
// Example:
//
//	store, err := sqlite.Open("app.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	cols, err := store.TristateColumns("companies")
func Open(path string) (types.Store, error) {
	s, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewStore wraps a connection opened with the "sqlite" driver. Closing the
// store leaves db open.
func NewStore(db *sql.DB) types.Store {
	return sqlite.NewStore(db)
}
