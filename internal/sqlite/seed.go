package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// DemoTable is the table created by Seed.
const DemoTable = "companies"

const createCompanies = `CREATE TABLE IF NOT EXISTS companies (
    company_id TEXT PRIMARY KEY,
    name TEXT,
    is_public BOOLEAN NOT NULL DEFAULT 0,
    is_profitable BOOLEAN,
    evades_taxation BOOLEAN
);`

// demoCompany describes a row inserted by Seed.
type demoCompany struct {
	name           string
	isProfitable   types.TriState
	evadesTaxation types.TriState
}

var demoCompanies = []demoCompany{
	{"Acme", types.True, types.False},
	{"Globex", types.False, types.Unknown},
	{"Initech", types.Unknown, types.Unknown},
}

// Seed creates the demo table and fills it when empty. It returns the
// number of rows inserted. Seeding twice inserts nothing.
func (s *Store) Seed() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, types.ErrStoreClosed
	}
	if _, err := s.db.Exec(createCompanies); err != nil {
		return 0, fmt.Errorf("creating %s: %w", DemoTable, err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", DemoTable, err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range demoCompanies {
		_, err := tx.Exec(
			"INSERT INTO companies (company_id, name, is_profitable, evades_taxation) VALUES (?, ?, ?, ?)",
			newUUID(), c.name, c.isProfitable, c.evadesTaxation)
		if err != nil {
			return 0, fmt.Errorf("seeding %s: %w", c.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return len(demoCompanies), nil
}
