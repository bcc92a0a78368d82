package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tristate/internal/sqlite"
	"github.com/mesh-intelligence/tristate/pkg/types"
)

// userStoreErrors are store failures caused by the arguments.
var userStoreErrors = []error{
	types.ErrNotFound,
	types.ErrTableNotFound,
	types.ErrNotTristateColumn,
	types.ErrInvalidIdentifier,
	types.ErrNoPrimaryKey,
}

// storeError classifies err for the exit code.
func storeError(err error) error {
	for _, target := range userStoreErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return asSysError(err)
}

// withStore opens the store, runs fn and closes the store.
func (a *app) withStore(fn func(s *sqlite.Store) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := fn(s); err != nil {
		return storeError(err)
	}
	return nil
}

// columnsOutput lists the tri-state columns of one table.
type columnsOutput struct {
	Table   string                    `json:"table"`
	Columns []string                  `json:"columns"`
	Counts  map[string]map[string]int `json:"counts,omitempty"`
}

func (a *app) newColumnsCmd() *cobra.Command {
	var counts bool
	cmd := &cobra.Command{
		Use:   "columns [TABLE...]",
		Short: "List nullable BOOLEAN columns",
		Long:  "List the BOOLEAN columns that accept NULL, for the named tables or for every table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *sqlite.Store) error {
				tables := args
				if len(tables) == 0 {
					var err error
					if tables, err = s.Tables(); err != nil {
						return err
					}
				}

				var out []columnsOutput
				for _, table := range tables {
					cols, err := s.TristateColumns(table)
					if err != nil {
						return err
					}
					entry := columnsOutput{Table: table, Columns: cols}
					if counts {
						entry.Counts = make(map[string]map[string]int, len(cols))
						for _, col := range cols {
							tally, err := s.Tally(table, col)
							if err != nil {
								return err
							}
							entry.Counts[col] = map[string]int{
								types.NameTrue:    tally[types.True],
								types.NameFalse:   tally[types.False],
								types.NameUnknown: tally[types.Unknown],
							}
						}
					}
					out = append(out, entry)
				}

				w := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return writeJSON(w, out)
				}
				for _, entry := range out {
					for _, col := range entry.Columns {
						if c, ok := entry.Counts[col]; ok {
							fmt.Fprintf(w, "%s.%s\ttrue=%d false=%d unknown=%d\n", entry.Table, col,
								c[types.NameTrue], c[types.NameFalse], c[types.NameUnknown])
							continue
						}
						fmt.Fprintf(w, "%s.%s\n", entry.Table, col)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&counts, "counts", false, "count the rows in each state")
	return cmd
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE COLUMN ID",
		Short: "Read a nullable BOOLEAN column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *sqlite.Store) error {
				v, err := s.Get(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), sqlite.Row{ID: args[2], Value: v})
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			})
		},
	}
}

func (a *app) newSetCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "set TABLE COLUMN VALUE",
		Short: "Write a nullable BOOLEAN column",
		Long: `Cast VALUE like the resolve command and write it to COLUMN of the row
with primary key --id. Unknown is written as NULL. Without --id a new row
is inserted and its id printed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.resolver.Resolve(args[2])
			return a.withStore(func(s *sqlite.Store) error {
				rowID, err := s.Set(args[0], args[1], id, v)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), sqlite.Row{ID: rowID, Value: v})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rowID, v)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "primary key of the row to update")
	return cmd
}

func (a *app) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump TABLE COLUMN",
		Short: "Write a column as JSONL",
		Long:  `Write one {"id": ..., "value": true|false|null} line per row of COLUMN.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *sqlite.Store) error {
				_, err := s.WriteJSONL(cmd.OutOrStdout(), args[0], args[1])
				return err
			})
		},
	}
}
