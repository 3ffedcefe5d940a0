package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datagen/synthetic-data/internal/generator"
	"github.com/datagen/synthetic-data/internal/output"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCENARIO\tROWS\tDESCRIPTION")
			for _, s := range generator.Scenarios() {
				rows := "approx"
				if s.ExactRows {
					rows = "exact"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, rows, s.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nScenario aliases: %s\n", strings.Join(generator.AvailableScenarioAliases(), ", "))
			fmt.Fprintf(out, "Formats: %s (aliases: %s)\n",
				strings.Join(output.AvailableFormatNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}
