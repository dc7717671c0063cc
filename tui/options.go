// ABOUTME: TUI mode configuration and command-line options
// ABOUTME: Defines input parameters and injected dependencies for running the TUI

package tui

import (
	"discipline-ranker/config"
)

// Options contains configuration for running the TUI
type Options struct {
	RankingPath string // Path to the ranking TOML file
	DryRun      bool   // If true, never write changes to disk
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	Store  RankingStore
	Logger Logger
	Config config.Config
}
