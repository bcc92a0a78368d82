package sqlite

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tristate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	n, err := s.Seed()
	require.NoError(t, err)
	require.Equal(t, len(demoCompanies), n)
	return s
}

func exec(t *testing.T, s *Store, stmts ...string) {
	t.Helper()
	for _, stmt := range stmts {
		_, err := s.DB().Exec(stmt)
		require.NoError(t, err, stmt)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := seededStore(t)

	n, err := s.Seed()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM companies").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestTablesAndColumns(t *testing.T) {
	s := seededStore(t)
	exec(t, s, "CREATE TABLE flags (id INTEGER PRIMARY KEY, enabled BOOLEAN, beta bool, label TEXT)")

	tables, err := s.Tables()
	require.NoError(t, err)
	assert.Equal(t, []string{"companies", "flags"}, tables)

	cols, err := s.TristateColumns(DemoTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"is_profitable", "evades_taxation"}, cols, "NOT NULL booleans are two-state")

	cols, err = s.TristateColumns("flags")
	require.NoError(t, err)
	assert.Equal(t, []string{"enabled", "beta"}, cols)

	_, err = s.TristateColumns("missing")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestTally(t *testing.T) {
	s := seededStore(t)

	counts, err := s.Tally(DemoTable, "is_profitable")
	require.NoError(t, err)
	assert.Equal(t, map[types.TriState]int{types.True: 1, types.False: 1, types.Unknown: 1}, counts)

	counts, err = s.Tally(DemoTable, "evades_taxation")
	require.NoError(t, err)
	assert.Equal(t, map[types.TriState]int{types.True: 0, types.False: 1, types.Unknown: 2}, counts)
}

func TestSetInsertsWithUUID(t *testing.T) {
	s := seededStore(t)

	id, err := s.Set(DemoTable, "is_profitable", "", types.False)
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	got, err := s.Get(DemoTable, "is_profitable", id)
	require.NoError(t, err)
	assert.Equal(t, types.False, got)

	got, err = s.Get(DemoTable, "evades_taxation", id)
	require.NoError(t, err)
	assert.Equal(t, types.Unknown, got)
}

func TestSetRoundTrip(t *testing.T) {
	s := seededStore(t)
	id, err := s.Set(DemoTable, "is_profitable", "", types.True)
	require.NoError(t, err)

	for _, v := range []types.TriState{types.False, types.Unknown, types.True, types.Unknown} {
		gotID, err := s.Set(DemoTable, "is_profitable", id, v)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)

		got, err := s.Get(DemoTable, "is_profitable", id)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	var isNull bool
	require.NoError(t, s.DB().QueryRow(
		"SELECT is_profitable IS NULL FROM companies WHERE company_id = ?", id).Scan(&isNull))
	assert.True(t, isNull, "unknown must be stored as NULL")
}

func TestSetIntegerKey(t *testing.T) {
	s := newTestStore(t)
	exec(t, s, "CREATE TABLE flags (id INTEGER PRIMARY KEY, enabled BOOLEAN)")

	id, err := s.Set("flags", "enabled", "", types.True)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	id, err = s.Set("flags", "enabled", "", types.Unknown)
	require.NoError(t, err)
	assert.Equal(t, "2", id)

	got, err := s.Get("flags", "enabled", "1")
	require.NoError(t, err)
	assert.Equal(t, types.True, got)
}

func TestAddressingErrors(t *testing.T) {
	s := seededStore(t)
	exec(t, s,
		"CREATE TABLE loose (flag BOOLEAN)",
		"CREATE TABLE pairs (a TEXT, b TEXT, flag BOOLEAN, PRIMARY KEY (a, b))",
	)

	tests := []struct {
		name   string
		table  string
		column string
		id     string
		want   error
	}{
		{"not null boolean", DemoTable, "is_public", "x", types.ErrNotTristateColumn},
		{"text column", DemoTable, "name", "x", types.ErrNotTristateColumn},
		{"missing column", DemoTable, "nope", "x", types.ErrNotTristateColumn},
		{"missing table", "missing", "flag", "x", types.ErrTableNotFound},
		{"bad table name", "companies; DROP TABLE companies", "flag", "x", types.ErrInvalidIdentifier},
		{"bad column name", DemoTable, `is_profitable"`, "x", types.ErrInvalidIdentifier},
		{"no primary key", "loose", "flag", "x", types.ErrNoPrimaryKey},
		{"composite primary key", "pairs", "flag", "x", types.ErrNoPrimaryKey},
		{"missing row", DemoTable, "is_profitable", "no-such-id", types.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.table, tt.column, tt.id)
			assert.ErrorIs(t, err, tt.want)

			_, err = s.Set(tt.table, tt.column, tt.id, types.True)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	tables, err := s.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables, DemoTable)
}

func TestWriteJSONL(t *testing.T) {
	s := newTestStore(t)
	exec(t, s,
		"CREATE TABLE flags (id INTEGER PRIMARY KEY, enabled BOOLEAN)",
		"INSERT INTO flags (id, enabled) VALUES (1, 1), (2, 0), (3, NULL)",
	)

	var buf bytes.Buffer
	n, err := s.WriteJSONL(&buf, "flags", "enabled")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`{"id":"1","value":true}`,
		`{"id":"2","value":false}`,
		`{"id":"3","value":null}`,
	}, lines)
}

func TestClose(t *testing.T) {
	s := seededStore(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close must be idempotent")

	_, err := s.Tables()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.TristateColumns(DemoTable)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Get(DemoTable, "is_profitable", "x")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Set(DemoTable, "is_profitable", "", types.True)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Seed()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestNewStoreLeavesConnectionOpen(t *testing.T) {
	db, err := sql.Open(DriverName, filepath.Join(t.TempDir(), "shared.db"))
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	_, err = s.Seed()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.NoError(t, db.Ping())
	_, err = s.Tables()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
