package types

// Store reads and writes nullable boolean columns of a relational database.
type Store interface {
	// Tables returns the names of the user tables, sorted.
	Tables() ([]string, error)

	// TristateColumns returns the BOOLEAN columns of table that accept NULL,
	// in declaration order. Returns ErrTableNotFound for unknown tables.
	TristateColumns(table string) ([]string, error)

	// Get reads column of the row whose primary key is id. NULL reads as
	// Unknown. Returns ErrNotFound if no such row exists.
	Get(table, column, id string) (TriState, error)

	// Set writes v to column of the row whose primary key is id; Unknown
	// writes NULL. An empty id inserts a new row and returns its id.
	// Returns ErrNotTristateColumn unless column is a nullable BOOLEAN.
	Set(table, column, id string, v TriState) (string, error)

	// Close releases the database. Idempotent.
	Close() error
}
