package sqlite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// column is one row of PRAGMA table_info.
type column struct {
	name    string
	declTyp string
	notNull bool
	pk      int // 1-based position in the primary key, 0 if not part of it.
}

// booleanTypes are the declared types treated as boolean columns.
var booleanTypes = map[string]bool{
	"BOOLEAN": true,
	"BOOL":    true,
}

func (c column) isTristate() bool {
	return booleanTypes[strings.ToUpper(c.declTyp)] && !c.notNull
}

// hasIntegerAffinity follows SQLite's rule: a declared type containing
// "INT" has INTEGER affinity.
func (c column) hasIntegerAffinity() bool {
	return strings.Contains(strings.ToUpper(c.declTyp), "INT")
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// quoteIdent validates and double-quotes a table or column name. Names are
// interpolated into SQL, so only plain identifiers are accepted.
func quoteIdent(name string) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidIdentifier, name)
	}
	return `"` + name + `"`, nil
}

// columns reads the schema of table. The caller must hold s.mu.
func (s *Store) columns(table string) ([]column, error) {
	q, err := quoteIdent(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("PRAGMA table_info(" + q + ")")
	if err != nil {
		return nil, fmt.Errorf("reading schema of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []column
	for rows.Next() {
		var (
			cid     int
			c       column
			notNull int
			dflt    any
		)
		if err := rows.Scan(&cid, &c.name, &c.declTyp, &notNull, &dflt, &c.pk); err != nil {
			return nil, fmt.Errorf("scanning schema of %s: %w", table, err)
		}
		c.notNull = notNull != 0
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrTableNotFound, table)
	}
	return cols, nil
}

// target resolves the primary key and the tri-state column addressed by a
// Get or Set. The caller must hold s.mu.
func (s *Store) target(table, columnName string) (pk, col column, err error) {
	if _, err := quoteIdent(columnName); err != nil {
		return column{}, column{}, err
	}
	cols, err := s.columns(table)
	if err != nil {
		return column{}, column{}, err
	}

	var pks []column
	found := false
	for _, c := range cols {
		if c.pk > 0 {
			pks = append(pks, c)
		}
		if c.name == columnName {
			col, found = c, true
		}
	}
	if !found || !col.isTristate() {
		return column{}, column{}, fmt.Errorf("%w: %s.%s", types.ErrNotTristateColumn, table, columnName)
	}
	if len(pks) != 1 {
		return column{}, column{}, fmt.Errorf("%w: %s", types.ErrNoPrimaryKey, table)
	}
	if _, err := quoteIdent(pks[0].name); err != nil {
		return column{}, column{}, err
	}
	return pks[0], col, nil
}
