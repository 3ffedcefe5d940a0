package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datagen/synthetic-data/internal/config"
	"github.com/datagen/synthetic-data/internal/output"
)

func newExampleConfigCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example YAML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if out == "" {
				b, err := yaml.Marshal(example)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := output.SaveConfiguration(example, out); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write (default stdout)")
	return cmd
}
