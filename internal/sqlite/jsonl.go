package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSONL writes one {"id":...,"value":...} record per row of column to
// w. Unknown values are written as null.
func (s *Store) WriteJSONL(w io.Writer, table, columnName string) (int, error) {
	rows, err := s.Values(table, columnName)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return 0, fmt.Errorf("writing record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flushing records: %w", err)
	}
	return len(rows), nil
}
