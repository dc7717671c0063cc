// ABOUTME: Watches the ranking file and reloads it when another process writes it
// ABOUTME: Watches the parent directory so saves that rename the old file keep working

package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"discipline-ranker/ranking"
)

// writeSettleDelay lets multi-step writes finish before reloading
const writeSettleDelay = 100 * time.Millisecond

// fileChangeMsg reports that the ranking file changed on disk
type fileChangeMsg struct{}

// reloadCompleteMsg carries the result of a background reload
type reloadCompleteMsg struct {
	ranking ranking.Ranking
	err     error
}

// newRankingWatcher watches the directory holding path
func newRankingWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch ranking directory: %w", err)
	}

	return watcher, nil
}

// waitForFileChange blocks until path is written or recreated
func waitForFileChange(watcher *fsnotify.Watcher, path string, debugf func(string, ...interface{})) tea.Cmd {
	if watcher == nil {
		return nil
	}

	target := filepath.Clean(path)

	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Clean(event.Name) != target {
					continue
				}

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					time.Sleep(writeSettleDelay)
					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadRanking loads the ranking in the background
func reloadRanking(store RankingStore, path string) tea.Cmd {
	return func() tea.Msg {
		r, err := store.Load(path)
		return reloadCompleteMsg{ranking: r, err: err}
	}
}
