package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datagen/synthetic-data/internal/generator"
	"github.com/datagen/synthetic-data/internal/output"
)

func newGenerateCommand(flags *globalFlags) *cobra.Command {
	var (
		out    string
		rows   int
		seed   int64
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate <scenario>",
		Short: "Generate one scenario into a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfiguration(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.ApplySeed(seed)
			}
			if rows < 0 {
				return fmt.Errorf("--rows cannot be negative")
			}

			gen, err := generator.New(args[0], cfg, rows, logger)
			if err != nil {
				return err
			}
			if out == "" {
				ext := format
				if ext == "" {
					ext = "csv"
				}
				if ext, err = output.ResolveFormat(ext); err != nil {
					return err
				}
				out = filepath.Join(cfg.Output.Dir, gen.Name()+"."+ext)
			}

			table, err := generator.Save(gen, out, format, output.Options{ParquetCompression: cfg.Output.ParquetCompression})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d rows -> %s\n", table.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; the extension selects the format (default <dir>/<scenario>.csv)")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "target row count (exact for row-count scenarios, approximate otherwise)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed overriding the configured one")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format overriding the file extension")
	return cmd
}
