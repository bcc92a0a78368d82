package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tristate/pkg/i18n"
	"github.com/mesh-intelligence/tristate/pkg/tristate"
	"github.com/mesh-intelligence/tristate/pkg/types"
)

// choiceOutput is one choice as printed by the choices command.
type choiceOutput struct {
	Label   string `json:"label"`
	Value   any    `json:"value"`
	Checked bool   `json:"checked"`
}

func (a *app) newChoicesCmd() *cobra.Command {
	var (
		labels     tristate.Labels
		current    string
		statusTags bool
	)
	cmd := &cobra.Command{
		Use:   "choices",
		Short: "Print the three radio choices",
		Long: `Print the true, false and unset choices with their labels and values.

Labels not given by flag are looked up in the translation catalog. The
unset label has no default: without --null or a catalog entry the command
fails and prints the catalog keys to add. With --current the choice that
stands for that state is marked. With --status-tags the labels come from the
status tag scope of the catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.resolver
			if statusTags && a.catalog != nil {
				var err error
				r, err = tristate.New(a.resolver.Config(),
					tristate.WithTranslator(a.catalog.WithScope(i18n.StatusTagScope)),
					tristate.WithLogger(a.logger))
				if err != nil {
					return err
				}
			}

			choices, err := r.Choices(labels)
			if err != nil {
				return err
			}

			selected := -1
			if cmd.Flags().Changed("current") {
				state, err := types.ParseTriState(current)
				if err != nil {
					return err
				}
				selected = r.Selected(choices, state)
			}

			out := make([]choiceOutput, len(choices))
			for i, c := range choices {
				out[i] = choiceOutput{Label: c.Label, Value: c.Value, Checked: i == selected}
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(w, out)
			}
			for _, c := range out {
				mark := " "
				if c.Checked {
					mark = "x"
				}
				fmt.Fprintf(w, "(%s) %s\t%v\n", mark, c.Label, c.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&labels.True, "true", "", "label of the true choice")
	cmd.Flags().StringVar(&labels.False, "false", "", "label of the false choice")
	cmd.Flags().StringVar(&labels.Unknown, "null", "", "label of the unset choice")
	cmd.Flags().StringVar(&current, "current", "", "current state: true, false or unknown")
	cmd.Flags().BoolVar(&statusTags, "status-tags", false, "look up status tag labels instead of form labels")
	return cmd
}
