// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model that drives the reorder engine over a discipline ranking

// Package tui provides an interactive terminal UI for ranking disciplines
// by dragging rows and editing priorities.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"discipline-ranker/config"
	"discipline-ranker/ranking"
	"discipline-ranker/reorder"
)

// Layout constants for UI dimensions
const (
	// UI chrome heights (elements that reduce available viewport space)
	titleHeight     = 2 // Title line plus spacing
	headerHeight    = 1 // Column headers
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	totalUIChrome   = titleHeight + headerHeight + statusBarHeight + helpHeight

	minViewportHeight = 2 * rowHeight
)

// Navigation and interaction constants
const (
	pageJumpSize          = 10              // Rows to jump on PageUp/PageDown
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	selfWriteGrace        = time.Second     // File events this soon after a save are our own
)

// scrollAnchor remembers where a press started so a gesture classified as
// a scroll can move the list under the pointer
type scrollAnchor struct {
	active bool
	y      int
	cursor int
}

// model holds the TUI state
type model struct {
	// Dependencies
	store  RankingStore
	debugf func(string, ...interface{})
	cfg    config.Config

	// Document
	rankingPath string
	title       string
	disciplines []ranking.Discipline
	dryRun      bool
	modified    bool
	lastSave    time.Time

	// Reorder engine
	gestures      *reorder.GestureController
	edits         *reorder.PriorityEditController
	priorityInput textinput.Model
	moveMode      bool
	scroll        scrollAnchor

	// UI state
	width        int
	height       int
	quitting     bool
	confirmKey   string    // Key that must be pressed again to confirm a destructive action
	statusMsg    string    // Temporary status message (e.g., "Ranking saved")
	statusMsgAge time.Time // When status message was set

	cursorPos int
	viewport  viewport.Model
	scroller  *ViewportManager
	layout    *layout
	undoMgr   *UndoManager
	watcher   *fsnotify.Watcher
}

// Key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Grab      key.Binding
	Drop      key.Binding
	Cancel    key.Binding
	Edit      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Save      key.Binding
	Reload    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Grab: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m", "grab"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit priority"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Save: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	// Quits from any mode; q only backs out of a move or edit
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	draggingStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	dropTargetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Run starts the TUI with injected dependencies
func Run(opts Options, deps Dependencies) error {
	path, err := filepath.Abs(opts.RankingPath)
	if err != nil {
		return fmt.Errorf("invalid ranking path: %w", err)
	}

	opts.RankingPath = path

	r, err := deps.Store.Load(path)
	if err != nil {
		return err
	}

	m := initModel(r, opts, deps)

	if deps.Config.WatchFile {
		watcher, err := newRankingWatcher(path)
		if err != nil {
			m.debugf("[TUI] File watching disabled: %v", err)
		} else {
			defer func() {
				_ = watcher.Close()
			}()

			m.watcher = watcher
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(model); ok && fm.modified {
		if fm.dryRun {
			fmt.Println("\n--dry-run mode: ranking not modified")
		} else {
			fmt.Println("\nExited without saving changes")
		}
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(r ranking.Ranking, opts Options, deps Dependencies) model {
	cfg := deps.Config

	input := textinput.New()
	input.CharLimit = 4
	input.Width = 4
	input.Prompt = ""

	m := model{
		store:  deps.Store,
		debugf: deps.Logger.Debugf,
		cfg:    cfg,

		rankingPath: opts.RankingPath,
		title:       r.Title,
		disciplines: r.Disciplines,
		dryRun:      opts.DryRun,

		gestures:      reorder.NewGestureController(reorder.WithLogger(deps.Logger.Desugar())),
		edits:         reorder.NewPriorityEditController(),
		priorityInput: input,

		viewport: viewport.New(0, 0), // Width and height set on first WindowSizeMsg
		scroller: NewViewportManager(0, 0, len(r.Disciplines)),
		layout:   newLayout(cfg.CellWidthPx, cfg.CellHeightPx),
		undoMgr:  NewUndoManager(cfg.UndoLimit),
	}

	m.layout.syncRows(m.gestures, m.ids())
	m.updateViewportContent()

	return m
}

// Init starts watching the ranking file when enabled
func (m model) Init() tea.Cmd {
	return waitForFileChange(m.watcher, m.rankingPath, m.debugf)
}

// ========== Helpers ==========

// ids returns discipline ids in display order
func (m model) ids() []string {
	ids := make([]string, len(m.disciplines))
	for i, d := range m.disciplines {
		ids[i] = d.ID
	}

	return ids
}

// state snapshots the ranking for undo/redo
func (m model) state() RankingState {
	return RankingState{
		Disciplines: m.disciplines,
		CursorPos:   m.cursorPos,
	}
}

// current returns the discipline under the cursor
func (m model) current() (ranking.Discipline, bool) {
	if m.cursorPos < 0 || m.cursorPos >= len(m.disciplines) {
		return ranking.Discipline{}, false
	}

	return m.disciplines[m.cursorPos], true
}

// setStatusMsg shows a transient message in the status bar
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// ensureCursorVisible scrolls so the cursor row is on screen
func (m *model) ensureCursorVisible() {
	m.scroller.SetVisibleRows(m.viewport.Height / rowHeight)
	m.scroller.SetCursorRow(m.cursorPos)
	m.scroller.SetTotalRows(len(m.disciplines))
	m.viewport.YOffset = m.scroller.FirstVisibleRow() * rowHeight
	m.layout.yOffset = m.viewport.YOffset
}

// clampCursor keeps the cursor inside the list
func (m *model) clampCursor() {
	m.cursorPos = max(0, min(m.cursorPos, len(m.disciplines)-1))
}

// truncate shortens s to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
