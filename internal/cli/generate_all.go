package cli

import (
	"github.com/spf13/cobra"

	"github.com/datagen/synthetic-data/internal/generator"
	"github.com/datagen/synthetic-data/internal/output"
)

func newGenerateAllCommand(flags *globalFlags) *cobra.Command {
	var (
		dir      string
		ext      string
		rows     int
		parallel int
		report   string
	)
	cmd := &cobra.Command{
		Use:   "generate-all",
		Short: "Generate every scenario into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfiguration(cmd, flags)
			if err != nil {
				return err
			}
			formatter, err := output.GetReportFormatter(report)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Output.Dir
			}
			if dir == "" {
				dir = "data"
			}

			result, err := generator.GenerateAll(cmd.Context(), cfg, generator.BatchOptions{
				Dir:      dir,
				Ext:      ext,
				Rows:     rows,
				Parallel: parallel,
				Output:   output.Options{ParquetCompression: cfg.Output.ParquetCompression},
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			b, err := formatter.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default from config, else ./data)")
	cmd.Flags().StringVar(&ext, "ext", "csv", "output format for every table")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "target row count per scenario")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "scenarios generated at once (default GOMAXPROCS)")
	cmd.Flags().StringVar(&report, "report", "console", "summary format: console, json or csv")
	return cmd
}
