package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Get reads column of the row whose primary key is id.
func (s *Store) Get(table, columnName, id string) (types.TriState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return types.Unknown, types.ErrStoreClosed
	}
	pk, col, err := s.target(table, columnName)
	if err != nil {
		return types.Unknown, err
	}

	var v types.TriState
	query := fmt.Sprintf(`SELECT "%s" FROM "%s" WHERE "%s" = ?`, col.name, table, pk.name)
	err = s.db.QueryRow(query, id).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Unknown, fmt.Errorf("%w: %s %s", types.ErrNotFound, table, id)
	}
	if err != nil {
		return types.Unknown, fmt.Errorf("reading %s.%s: %w", table, columnName, err)
	}
	return v, nil
}

// Set writes v to column of the row whose primary key is id. With an empty
// id a new row is inserted: INTEGER keys are assigned by SQLite, any other
// key gets a UUID v7.
func (s *Store) Set(table, columnName, id string, v types.TriState) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", types.ErrStoreClosed
	}
	pk, col, err := s.target(table, columnName)
	if err != nil {
		return "", err
	}

	if id == "" {
		return s.insert(table, pk, col, v)
	}

	query := fmt.Sprintf(`UPDATE "%s" SET "%s" = ? WHERE "%s" = ?`, table, col.name, pk.name)
	res, err := s.db.Exec(query, v, id)
	if err != nil {
		return "", fmt.Errorf("updating %s.%s: %w", table, columnName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("updating %s.%s: %w", table, columnName, err)
	}
	if n == 0 {
		return "", fmt.Errorf("%w: %s %s", types.ErrNotFound, table, id)
	}
	return id, nil
}

func (s *Store) insert(table string, pk, col column, v types.TriState) (string, error) {
	if pk.hasIntegerAffinity() {
		query := fmt.Sprintf(`INSERT INTO "%s" ("%s") VALUES (?)`, table, col.name)
		res, err := s.db.Exec(query, v)
		if err != nil {
			return "", fmt.Errorf("inserting into %s: %w", table, err)
		}
		rowID, err := res.LastInsertId()
		if err != nil {
			return "", fmt.Errorf("inserting into %s: %w", table, err)
		}
		return strconv.FormatInt(rowID, 10), nil
	}

	id := newUUID()
	query := fmt.Sprintf(`INSERT INTO "%s" ("%s", "%s") VALUES (?, ?)`, table, pk.name, col.name)
	if _, err := s.db.Exec(query, id, v); err != nil {
		return "", fmt.Errorf("inserting into %s: %w", table, err)
	}
	return id, nil
}

// Row is one primary key and tri-state value pair.
type Row struct {
	ID    string         `json:"id"`
	Value types.TriState `json:"value"`
}

// Values returns every row's value of column, ordered by primary key.
func (s *Store) Values(table, columnName string) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	pk, col, err := s.target(table, columnName)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT "%s", "%s" FROM "%s" ORDER BY "%s"`, pk.name, col.name, table, pk.name)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("reading %s.%s: %w", table, columnName, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			id any
			r  Row
		)
		if err := rows.Scan(&id, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning %s.%s: %w", table, columnName, err)
		}
		r.ID = formatID(id)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Tally counts the rows of column in each state.
func (s *Store) Tally(table, columnName string) (map[types.TriState]int, error) {
	rows, err := s.Values(table, columnName)
	if err != nil {
		return nil, err
	}
	counts := map[types.TriState]int{types.True: 0, types.False: 0, types.Unknown: 0}
	for _, r := range rows {
		counts[r.Value]++
	}
	return counts, nil
}

func formatID(v any) string {
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
