// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and keyboard handlers

package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-totalUIChrome, minViewportHeight)
		m.layout.width = m.viewport.Width
		m.layout.height = m.viewport.Height

		m.ensureCursorVisible()
		m.updateViewportContent()

		return m, nil

	case fileChangeMsg:
		next := waitForFileChange(m.watcher, m.rankingPath, m.debugf)

		if time.Since(m.lastSave) < selfWriteGrace {
			return m, next
		}

		if m.modified {
			m.setStatusMsg("Ranking changed on disk: r to reload, w to overwrite")
			return m, next
		}

		return m, tea.Batch(next, reloadRanking(m.store, m.rankingPath))

	case reloadCompleteMsg:
		if msg.err != nil {
			m.debugf("[TUI] Reload failed: %v", msg.err)
			m.setStatusMsg(fmt.Sprintf("Reload failed: %v", msg.err))

			return m, nil
		}

		m.applyReload(msg.ranking)

		return m, nil

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Interrupt) && (m.moveMode || m.edits.Editing() != nil) {
			return m.interrupt(msg)
		}

		if m.edits.Editing() != nil {
			cmd := m.handleEditKey(msg)
			return m, cmd
		}

		if m.moveMode {
			m.handleMoveKey(msg)
			return m, nil
		}

		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles keys in normal browsing mode
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := m.confirmKey != "" && msg.String() == m.confirmKey
	m.confirmKey = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m.handleQuitKey(msg, confirmed)

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.PageUp):
		m.moveCursor(-pageJumpSize)

	case key.Matches(msg, keys.PageDown):
		m.moveCursor(pageJumpSize)

	case key.Matches(msg, keys.Home):
		m.moveCursor(-len(m.disciplines))

	case key.Matches(msg, keys.End):
		m.moveCursor(len(m.disciplines))

	case key.Matches(msg, keys.MoveUp):
		m.moveCurrent(-1)

	case key.Matches(msg, keys.MoveDown):
		m.moveCurrent(1)

	case key.Matches(msg, keys.Grab):
		m.startMove()

	case key.Matches(msg, keys.Edit):
		cmd := m.startEdit()
		return m, cmd

	case key.Matches(msg, keys.Undo):
		m.undo()

	case key.Matches(msg, keys.Redo):
		m.redo()

	case key.Matches(msg, keys.Save):
		m.save()

	case key.Matches(msg, keys.Reload):
		if m.modified && !confirmed {
			m.confirmKey = msg.String()
			m.setStatusMsg("Unsaved changes: press r again to discard them and reload")

			return m, nil
		}

		return m, reloadRanking(m.store, m.rankingPath)
	}

	return m, nil
}

// handleQuitKey quits, asking for confirmation when changes are unsaved
func (m model) handleQuitKey(msg tea.KeyMsg, confirmed bool) (tea.Model, tea.Cmd) {
	if m.modified && !m.dryRun && !confirmed {
		m.confirmKey = msg.String()
		m.setStatusMsg(fmt.Sprintf("Unsaved changes: press %s again to quit, w to save", msg.String()))

		return m, nil
	}

	m.quitting = true

	return m, tea.Quit
}

// interrupt abandons a move or priority edit and goes straight to quitting
func (m model) interrupt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := m.confirmKey != "" && msg.String() == m.confirmKey
	m.confirmKey = ""

	if m.moveMode {
		m.cancelMove()
	}

	if m.edits.Editing() != nil {
		m.cancelEdit()
	}

	return m.handleQuitKey(msg, confirmed)
}

// moveCursor moves the cursor by delta rows, clamped to the list
func (m *model) moveCursor(delta int) {
	if len(m.disciplines) == 0 {
		return
	}

	m.cursorPos += delta
	m.clampCursor()
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// handleMoveKey handles keys while a row is grabbed from the keyboard
func (m *model) handleMoveKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		m.hoverCursor()

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		m.hoverCursor()

	case key.Matches(msg, keys.PageUp):
		m.moveCursor(-pageJumpSize)
		m.hoverCursor()

	case key.Matches(msg, keys.PageDown):
		m.moveCursor(pageJumpSize)
		m.hoverCursor()

	case key.Matches(msg, keys.Home):
		m.moveCursor(-len(m.disciplines))
		m.hoverCursor()

	case key.Matches(msg, keys.End):
		m.moveCursor(len(m.disciplines))
		m.hoverCursor()

	case key.Matches(msg, keys.Drop), key.Matches(msg, keys.Grab):
		m.drop()

	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		m.cancelMove()
	}
}

// handleEditKey routes keys to the priority input while an edit is active
func (m *model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Drop):
		m.commitEdit()
		return nil

	case key.Matches(msg, keys.Cancel):
		m.cancelEdit()
		return nil
	}

	editing := m.edits.Editing()

	var cmd tea.Cmd
	m.priorityInput, cmd = m.priorityInput.Update(msg)
	m.edits.StartEditing(editing.ItemID, m.priorityInput.Value())
	m.updateViewportContent()

	return cmd
}
