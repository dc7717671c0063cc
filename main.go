// ABOUTME: Entry point for discipline-ranker
// ABOUTME: Builds the cobra command tree and shared setup for config and logging

// Package main provides the entry point for discipline-ranker, a tool for
// ordering a list of disciplines by drag-and-drop and priority edits.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"discipline-ranker/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}

	return 0
}

// app carries state shared by all subcommands
type app struct {
	configPath string
	debug      bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "discipline-ranker",
		Short: "Rank disciplines by dragging them into order",
		Long: `discipline-ranker keeps an ordered list of disciplines in a TOML file.

Use "tui" to reorder it interactively with the mouse or keyboard, or the
list, move and set-priority commands to script it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./discipline-ranker.toml or ~/.config/discipline-ranker/config.toml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to "+debugLogFile)

	cmd.AddCommand(
		newTUICmd(a),
		newListCmd(a),
		newMoveCmd(a),
		newSetPriorityCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

// resolvedConfigPath returns --config, or the default lookup when unset
func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}

	return config.GetConfigPath()
}

// setup initializes logging and loads the config before any subcommand runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = zap.NewNop()

	if a.debug {
		logger, err := SetupDebugLog(debugLogFile)
		if err != nil {
			return err
		}

		a.logger = logger
	}

	path := a.resolvedConfigPath()

	cfg, err := config.LoadConfig(path)
	if err != nil {
		// Continue with defaults rather than refusing to start
		cmd.PrintErrf("Warning: %v (using defaults)\n", err)
	}

	a.cfg = cfg
	a.logger.Debug("config loaded", zap.String("path", path), zap.Any("config", cfg))

	return nil
}
