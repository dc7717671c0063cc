// ABOUTME: Shared utilities for the CLI commands
// ABOUTME: Debug log setup, terminal detection and ranking table output

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"discipline-ranker/ranking"
)

const debugLogFile = "discipline-ranker-debug.log"

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetupDebugLog creates a debug logger writing to filename, truncating any
// previous log
func SetupDebugLog(filename string) (*zap.Logger, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file: %w", err)
	}

	_ = f.Close()

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{filename}
	cfg.ErrorOutputPaths = []string{filename}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return logger, nil
}

// printRanking writes the ranking as an aligned table
func printRanking(w io.Writer, r ranking.Ranking) error {
	bold := color.New(color.Bold).SprintFunc()

	if r.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", bold(r.Title)); err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow(bold("#"), bold("CODE"), bold("NAME"), bold("CREDITS"), bold("ID"))

	for _, d := range r.Disciplines {
		credits := ""
		if d.Credits > 0 {
			credits = strconv.Itoa(d.Credits)
		}

		tbl.AddRow(d.Priority, d.Code, d.Name, credits, d.ID)
	}

	_, err := fmt.Fprintln(w, tbl)

	return err
}

// printPlain writes one line per discipline, suited to pipes and scripts
func printPlain(w io.Writer, r ranking.Ranking) error {
	for _, d := range r.Disciplines {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}

	return nil
}
