// ABOUTME: Subcommands for viewing and editing a ranking file
// ABOUTME: Non-interactive moves and priority edits go through the same reorder engine as the TUI

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"discipline-ranker/config"
	"discipline-ranker/ranking"
	"discipline-ranker/reorder"
	"discipline-ranker/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "tui <ranking.toml>",
		Short: "Reorder a ranking interactively",
		Long: `Opens the ranking in a terminal UI.

Drag a row by its handle with the mouse, or swipe it sideways; vertical
swipes scroll. From the keyboard, press m to grab a row, move with j/k and
drop with enter. Press e to type a new priority.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				RankingPath: args[0],
				DryRun:      dryRun,
			}, tui.Dependencies{
				Store:  fileStore{},
				Logger: a.logger.Sugar(),
				Config: a.cfg,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "never write changes to disk")

	return cmd
}

func newListCmd(_ *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list <ranking.toml>",
		Short: "Print the ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ranking.ReadRanking(args[0])
			if err != nil {
				return err
			}

			if plain {
				return printPlain(cmd.OutOrStdout(), r)
			}

			return printRanking(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "one line per discipline, no table or colors")

	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	var before string

	var after string

	cmd := &cobra.Command{
		Use:   "move <ranking.toml> <id>",
		Short: "Move a discipline before or after another one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (before == "") == (after == "") {
				return errors.New("provide exactly one of --before or --after")
			}

			target, pos := before, reorder.Before
			if after != "" {
				target, pos = after, reorder.After
			}

			return a.updateRanking(cmd, args[0], func(r ranking.Ranking) ([]ranking.Discipline, error) {
				for _, id := range []string{args[1], target} {
					if _, err := r.Find(id); err != nil {
						return nil, err
					}
				}

				return reorder.Reorder(r.Disciplines, args[1], target, pos)
			})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "place the discipline before this id")
	cmd.Flags().StringVar(&after, "after", "", "place the discipline after this id")

	return cmd
}

func newSetPriorityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-priority <ranking.toml> <id> <value>",
		Short: "Set a discipline's priority and re-sort the ranking",
		Long: fmt.Sprintf(`Sets the priority of one discipline, re-sorts and renumbers the ranking.
Values are clamped to %d..%d. The discipline takes the requested place\namong disciplines that already share that priority.`, reorder.MinPriority, reorder.MaxPriority),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := reorder.ParsePriority(args[2])
			if err != nil {
				return err
			}

			return a.updateRanking(cmd, args[0], func(r ranking.Ranking) ([]ranking.Discipline, error) {
				d, err := r.Find(args[1])
				if err != nil {
					return nil, err
				}

				a.logger.Debug("set priority",
					zap.String("id", d.ID),
					zap.Int("from", d.Priority),
					zap.Int("to", value))

				return reorder.ResortByPriority(r.Disciplines, d.ID, value)
			})
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var title string

	var force bool

	cmd := &cobra.Command{
		Use:   "import <list.txt> <ranking.toml>",
		Short: "Create a ranking from a plain-text list",
		Long: `Creates a ranking from a text file with one discipline per line.
Lines are either a name or "CODE | Name | credits". Blank lines and lines
starting with # are skipped. File order becomes the initial ranking.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listPath, rankingPath := args[0], args[1]

			if _, err := os.Stat(rankingPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", rankingPath)
			}

			r, err := ranking.ImportList(listPath)
			if err != nil {
				return err
			}

			r.Title = title
			if r.Title == "" {
				r.Title = strings.TrimSuffix(filepath.Base(listPath), filepath.Ext(listPath))
			}

			if err := ranking.WriteRanking(rankingPath, r); err != nil {
				return err
			}

			a.logger.Debug("imported ranking",
				zap.String("from", listPath),
				zap.String("to", rankingPath),
				zap.Int("disciplines", len(r.Disciplines)))

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d disciplines into %s\n", len(r.Disciplines), rankingPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "ranking title (default: list file name)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing ranking file")

	return cmd
}

func newExportCmd(_ *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <ranking.toml>",
		Short: "Write the ranking as YAML, JSON or TOML to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ranking.ReadRanking(args[0])
			if err != nil {
				return err
			}

			return ranking.Export(cmd.OutOrStdout(), r, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", ranking.FormatYAML, "output format: yaml, json or toml")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.resolvedConfigPath()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)

			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", a.resolvedConfigPath())

			return config.Encode(cmd.OutOrStdout(), a.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)

	return cmd
}

// updateRanking loads path, applies edit, saves the result and prints it
func (a *app) updateRanking(cmd *cobra.Command, path string, edit func(ranking.Ranking) ([]ranking.Discipline, error)) error {
	r, err := ranking.ReadRanking(path)
	if err != nil {
		return err
	}

	next, err := edit(r)
	if err != nil {
		return err
	}

	r.Disciplines = next

	if err := ranking.WriteRanking(path, r); err != nil {
		return err
	}

	a.logger.Debug("ranking updated", zap.String("path", path), zap.String("command", cmd.Name()))

	return printRanking(cmd.OutOrStdout(), r)
}
