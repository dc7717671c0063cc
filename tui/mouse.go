// ABOUTME: Mouse handling that feeds terminal pointer events to the touch gesture engine
// ABOUTME: Press on the handle drags at once, elsewhere the engine decides between scroll and drag

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"discipline-ranker/reorder"
)

// handleMouse routes a mouse event. Wheel events scroll; left press,
// motion and release form one touch gesture.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.moveMode {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)

	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.touchStart(msg)

	case msg.Action == tea.MouseActionMotion:
		m.touchMove(msg)

	case msg.Action == tea.MouseActionRelease:
		m.touchEnd()
	}

	return nil
}

func (m *model) touchStart(msg tea.MouseMsg) {
	// Clicking away from the priority input commits it
	if m.edits.Editing() != nil {
		m.commitEdit()
	}

	idx, ok := m.layout.rowAt(msg.Y, len(m.disciplines))
	if !ok {
		m.gestures.HandleTouchCancel()
		return
	}

	id := m.disciplines[idx].ID
	ev := m.layout.touch(msg.X, msg.Y)

	if msg.X < m.cfg.HandleWidth {
		m.gestures.HandleDragHandleTouchStart(ev, id)
	} else {
		m.gestures.HandleTouchStart(ev, id, false)
	}

	m.cursorPos = idx
	m.scroll = scrollAnchor{active: true, y: msg.Y, cursor: idx}
	m.updateViewportContent()
}

func (m *model) touchMove(msg tea.MouseMsg) {
	if m.gestures.HandleTouchMove(m.layout.touch(msg.X, msg.Y)) {
		m.updateViewportContent()
		return
	}

	// The engine gave the gesture back as a scroll: follow the pointer
	if m.scroll.active && m.gestures.Phase() == reorder.PhaseIdle {
		m.cursorPos = m.scroll.cursor - (msg.Y-m.scroll.y)/rowHeight
		m.clampCursor()
		m.ensureCursorVisible()
		m.updateViewportContent()
	}
}

func (m *model) touchEnd() {
	result := m.gestures.HandleTouchEnd()
	m.scroll = scrollAnchor{}

	if result.Reorderable() && m.applyReorder(result.DraggedItemID, result.TargetItemID, result.Position) {
		m.setStatusMsg("Moved")
		return
	}

	m.updateViewportContent()
}
