// ABOUTME: Ranking edits driven from the TUI: moves, priority edits, undo and save
// ABOUTME: Every mutation goes through the reorder engine and is recorded for undo

package tui

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"discipline-ranker/ranking"
	"discipline-ranker/reorder"
)

// applyReorder moves fromID next to toID. It returns false when the engine
// rejects the move or the order would not change.
func (m *model) applyReorder(fromID, toID string, pos reorder.Position) bool {
	next, err := reorder.Reorder(m.disciplines, fromID, toID, pos)
	if err != nil {
		m.debugf("[TUI] Reorder %s %s %s rejected: %v", fromID, pos, toID, err)
		return false
	}

	if slices.Equal(next, m.disciplines) {
		return false
	}

	m.debugf("[TUI] Moved %s %s %s", fromID, pos, toID)
	m.commit(next, fromID)

	return true
}

// commit replaces the ranking, keeping the cursor on focusID
func (m *model) commit(next []ranking.Discipline, focusID string) {
	m.undoMgr.Push(m.state())
	m.disciplines = next
	m.cursorPos = reorder.IndexOf(next, focusID)
	m.clampCursor()
	m.afterChange()
}

// afterChange refreshes derived state after the ranking changed
func (m *model) afterChange() {
	m.modified = true
	m.layout.syncRows(m.gestures, m.ids())
	m.ensureCursorVisible()
	m.updateViewportContent()

	if m.cfg.AutoSave && !m.dryRun {
		m.save()
	}
}

// moveCurrent swaps the cursor row with its neighbour in direction delta
func (m *model) moveCurrent(delta int) {
	cur, ok := m.current()
	if !ok {
		return
	}

	target := m.cursorPos + delta
	if target < 0 || target >= len(m.disciplines) {
		return
	}

	pos := reorder.Before
	if delta > 0 {
		pos = reorder.After
	}

	m.applyReorder(cur.ID, m.disciplines[target].ID, pos)
}

// ========== Keyboard drag ==========

// startMove grabs the cursor row
func (m *model) startMove() {
	cur, ok := m.current()
	if !ok {
		return
	}

	m.gestures.HandleDragStart(cur.ID)
	m.moveMode = true
	m.setStatusMsg(fmt.Sprintf("Moving %s: choose a position, enter to drop, esc to cancel", cur.Name))
	m.updateViewportContent()
}

// hoverCursor points the drag at the cursor row. Rows below the grabbed
// one are targeted on their lower half and rows above on their upper half,
// so the drop lands exactly at the cursor.
func (m *model) hoverCursor() {
	dragged := m.gestures.Dragged()
	target, ok := m.current()

	if dragged == nil || !ok {
		return
	}

	if target.ID == dragged.ItemID {
		m.gestures.HandleDragLeave()
		m.updateViewportContent()

		return
	}

	rect, visible := m.layout.rowRect(target.ID)
	if !visible {
		rect = reorder.Rect{Height: rowHeight * m.layout.cellH}
	}

	y := rect.Top + rect.Height/4
	if m.cursorPos > reorder.IndexOf(m.disciplines, dragged.ItemID) {
		y = rect.Top + rect.Height*3/4
	}

	m.gestures.HandleDragOver(reorder.PointerEvent{ClientY: y, Target: rect}, target.ID)
	m.updateViewportContent()
}

// drop completes a keyboard drag at the current target
func (m *model) drop() {
	dragged := m.gestures.Dragged()
	over := m.gestures.DragOver()

	m.gestures.HandleDragEnd()
	m.moveMode = false

	if dragged != nil && over != nil && m.applyReorder(dragged.ItemID, over.ItemID, over.Position) {
		m.setStatusMsg("Moved")
		return
	}

	if dragged != nil {
		m.cursorPos = reorder.IndexOf(m.disciplines, dragged.ItemID)
		m.clampCursor()
		m.ensureCursorVisible()
	}

	m.updateViewportContent()
}

// cancelMove abandons a keyboard drag and returns to the grabbed row
func (m *model) cancelMove() {
	if dragged := m.gestures.Dragged(); dragged != nil {
		m.cursorPos = reorder.IndexOf(m.disciplines, dragged.ItemID)
		m.clampCursor()
		m.ensureCursorVisible()
	}

	m.gestures.HandleDragEnd()
	m.moveMode = false
	m.setStatusMsg("Move cancelled")
	m.updateViewportContent()
}

// ========== Priority editing ==========

// startEdit opens the priority input on the cursor row
func (m *model) startEdit() tea.Cmd {
	cur, ok := m.current()
	if !ok {
		return nil
	}

	m.edits.StartEditing(cur.ID, strconv.Itoa(cur.Priority))
	m.priorityInput.SetValue(strconv.Itoa(cur.Priority))
	m.priorityInput.CursorEnd()
	cmd := m.priorityInput.Focus()
	m.updateViewportContent()

	return cmd
}

// commitEdit parses the typed priority and re-sorts the ranking. Text that
// does not parse leaves the ranking untouched.
func (m *model) commitEdit() {
	editing := m.edits.Editing()
	if editing == nil {
		return
	}

	m.edits.StopEditing()
	m.priorityInput.Blur()

	value, err := reorder.ParsePriority(editing.Value)
	if err != nil {
		m.debugf("[TUI] Priority edit for %s rejected: %v", editing.ItemID, err)
		m.setStatusMsg(fmt.Sprintf("Invalid priority %q, nothing changed", editing.Value))
		m.updateViewportContent()

		return
	}

	next, err := reorder.ResortByPriority(m.disciplines, editing.ItemID, value)
	if err != nil {
		m.debugf("[TUI] Priority edit for %s failed: %v", editing.ItemID, err)
		m.updateViewportContent()

		return
	}

	if slices.Equal(next, m.disciplines) {
		m.updateViewportContent()
		return
	}

	m.debugf("[TUI] Priority of %s set to %d", editing.ItemID, value)
	m.commit(next, editing.ItemID)
}

// cancelEdit discards the typed text
func (m *model) cancelEdit() {
	m.edits.StopEditing()
	m.priorityInput.Blur()
	m.updateViewportContent()
}

// ========== History and persistence ==========

func (m *model) undo() {
	state, ok := m.undoMgr.Undo(m.state())
	if !ok {
		m.setStatusMsg("Nothing to undo")
		return
	}

	m.restore(state)
	m.setStatusMsg("Undone")
}

func (m *model) redo() {
	state, ok := m.undoMgr.Redo(m.state())
	if !ok {
		m.setStatusMsg("Nothing to redo")
		return
	}

	m.restore(state)
	m.setStatusMsg("Redone")
}

func (m *model) restore(state RankingState) {
	m.disciplines = state.Disciplines
	m.cursorPos = state.CursorPos
	m.clampCursor()
	m.afterChange()
}

// save writes the ranking unless running in dry-run mode
func (m *model) save() {
	if m.dryRun {
		m.setStatusMsg("Dry run: ranking not saved")
		return
	}

	r := ranking.Ranking{Title: m.title, Disciplines: m.disciplines}
	if err := m.store.Save(m.rankingPath, r); err != nil {
		m.debugf("[TUI] Save failed: %v", err)
		m.setStatusMsg(fmt.Sprintf("Save failed: %v", err))

		return
	}

	m.modified = false
	m.lastSave = time.Now()
	m.debugf("[TUI] Saved %d disciplines to %s", len(m.disciplines), m.rankingPath)
	m.setStatusMsg(fmt.Sprintf("Saved %d disciplines", len(m.disciplines)))
}

// applyReload replaces the ranking with the copy on disk, dropping history
// and any gesture or edit in progress
func (m *model) applyReload(r ranking.Ranking) {
	var focusID string
	if cur, ok := m.current(); ok {
		focusID = cur.ID
	}

	m.gestures.HandleTouchCancel()
	m.gestures.HandleDragEnd()
	m.edits.StopEditing()
	m.priorityInput.Blur()
	m.moveMode = false
	m.scroll = scrollAnchor{}

	m.title = r.Title
	m.disciplines = r.Disciplines
	m.modified = false
	m.undoMgr.Clear()

	if idx := reorder.IndexOf(m.disciplines, focusID); idx >= 0 {
		m.cursorPos = idx
	}

	m.clampCursor()
	m.layout.syncRows(m.gestures, m.ids())
	m.ensureCursorVisible()
	m.updateViewportContent()
	m.setStatusMsg("Reloaded from disk")
}
