package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger

	// buildLogger is called once per run, before any subcommand.
	buildLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{logger: zap.NewNop(), buildLogger: productionLogger}
}

// productionLogger writes JSON logs to stderr, at debug level when verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// rootCmd wires the command tree. Each call returns an independent tree,
// which keeps tests free of global flag state.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlkit",
		Short:         "String and lattice-path algorithms",
		Long:          "lvlkit runs run-length encoding, frequent-substring search, date normalization\nand lattice-path counting from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.buildLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.encodeCmd(),
		a.decodeCmd(),
		a.substrCmd(),
		a.dateCmd(),
		a.pathsCmd(),
	)

	return root
}

// execute runs cmd and flushes the logger whether or not the command failed.
// cobra skips PersistentPostRun after a RunE error, so the flush lives here.
func (a *app) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	_ = a.logger.Sync()

	return err
}

// fail logs err against the running command and returns it for cobra.
func (a *app) fail(cmd *cobra.Command, err error) error {
	a.logger.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))

	return err
}
