package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tristate/pkg/tristate"
)

const modulePath = "github.com/mesh-intelligence/tristate"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tristate version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tristate v%s\nmodule: %s\n", tristate.Version, modulePath)
			return nil
		},
	}
}
