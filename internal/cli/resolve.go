package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolution is one line of resolve output.
type resolution struct {
	Input string `json:"input"`
	State string `json:"state"`
}

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve VALUE...",
		Short: "Cast values to true, false or unknown",
		Long: `Cast each VALUE to true, false or unknown.

"", "null" and the configured unset key are unknown; "0", "f", "false",
"off" and their upper-case forms are false; anything else is true.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]resolution, 0, len(args))
			for _, arg := range args {
				out = append(out, resolution{Input: arg, State: a.resolver.Resolve(arg).String()})
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(w, out)
			}
			for _, r := range out {
				fmt.Fprintf(w, "%q\t%s\n", r.Input, r.State)
			}
			return nil
		},
	}
}
