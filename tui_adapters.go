// ABOUTME: Adapter implementations for TUI interfaces
// ABOUTME: Bridges the ranking file functions to the TUI store contract

package main

import (
	"discipline-ranker/ranking"
)

// fileStore adapts ranking.ReadRanking/WriteRanking to tui.RankingStore
type fileStore struct{}

func (fileStore) Load(path string) (ranking.Ranking, error) {
	return ranking.ReadRanking(path)
}

func (fileStore) Save(path string, r ranking.Ranking) error {
	return ranking.WriteRanking(path, r)
}
