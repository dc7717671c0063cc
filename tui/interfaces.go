// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

import (
	"go.uber.org/zap"

	"discipline-ranker/ranking"
)

// RankingStore loads and saves ranking documents
type RankingStore interface {
	Load(path string) (ranking.Ranking, error)
	Save(path string, r ranking.Ranking) error
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
	Desugar() *zap.Logger
}
