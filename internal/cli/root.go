// Package cli wires the datagen command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datagen/synthetic-data/internal/config"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/internal/generator"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCommand builds the datagen command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "datagen",
		Short:         "Generate reproducible synthetic tabular datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newGenerateCommand(flags),
		newGenerateAllCommand(flags),
		newListCommand(),
		newExampleConfigCommand(),
	)
	return root
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfiguration resolves file, environment and defaults, then returns a
// logger writing to the command's stderr.
func loadConfiguration(cmd *cobra.Command, flags *globalFlags) (*domain.Configuration, generator.Logger, error) {
	cfg, env, err := config.NewInputParser().Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger := newStdLogger(cmd.ErrOrStderr(), flags.verbose || env.Verbose)
	if flags.configPath != "" {
		logger.Debugf("loaded configuration from %s", flags.configPath)
	}
	return cfg, logger, nil
}
