// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and the two-line discipline rows

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"discipline-ranker/ranking"
	"discipline-ranker/reorder"
)

const nameWidth = 40

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] View panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Exiting...\n"
	}

	title := m.title
	if title == "" {
		title = "Discipline ranking"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %4s  %s", m.cfg.HandleWidth, "", "Prio", "Discipline")) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(m.renderStatus() + "\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// updateViewportContent builds and sets the viewport content.
// Every discipline takes rowHeight lines; the viewport handles scrolling.
func (m *model) updateViewportContent() {
	dragged := m.gestures.Dragged()
	over := m.gestures.DragOver()

	var b strings.Builder

	for i, d := range m.disciplines {
		top, bottom := m.renderRow(d)

		switch {
		case dragged != nil && dragged.ItemID == d.ID:
			top = draggingStyle.Render(top)
			bottom = draggingStyle.Render(bottom)
		case over != nil && over.ItemID == d.ID:
			if over.Position == reorder.Before {
				top = dropTargetStyle.Render(top)
			} else {
				bottom = dropTargetStyle.Render(bottom)
			}
		}

		if i == m.cursorPos {
			top = cursorStyle.Render(top)
		}

		b.WriteString(top + "\n" + bottom + "\n")
	}

	m.viewport.SetContent(b.String())
}

// renderRow renders the two lines of one discipline
func (m model) renderRow(d ranking.Discipline) (string, string) {
	handle := strings.Repeat("⋮", m.cfg.HandleWidth)
	if over := m.gestures.DragOver(); over != nil && over.ItemID == d.ID {
		marker := "▲"
		if over.Position == reorder.After {
			marker = "▼"
		}

		handle = strings.Repeat(marker, m.cfg.HandleWidth)
	}

	priority := fmt.Sprintf("%4s", m.edits.EditingValue(d.ID, d.Priority))
	if m.edits.IsEditing(d.ID) {
		priority = fmt.Sprintf("%4s", m.priorityInput.View())
	}

	top := fmt.Sprintf("%s %s  %s", handleStyle.Render(handle), priority, truncate(d.Name, nameWidth))

	var details []string
	if d.Code != "" {
		details = append(details, d.Code)
	}

	if d.Credits > 0 {
		details = append(details, fmt.Sprintf("%d credits", d.Credits))
	}

	bottom := strings.Repeat(" ", m.cfg.HandleWidth+7) + detailStyle.Render(strings.Join(details, " · "))

	return top, bottom
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	var flags []string
	if m.moveMode {
		flags = append(flags, "[MOVE]")
	}

	if m.edits.Editing() != nil {
		flags = append(flags, "[EDIT]")
	}

	if m.modified {
		flags = append(flags, "[MODIFIED]")
	}

	if m.dryRun {
		flags = append(flags, "[DRY RUN]")
	}

	status := fmt.Sprintf("%d disciplines | Row %d/%d | U:%d R:%d",
		len(m.disciplines),
		m.cursorPos+1,
		len(m.disciplines),
		m.undoMgr.UndoSize(),
		m.undoMgr.RedoSize(),
	)

	if len(flags) > 0 {
		status = strings.Join(flags, " ") + " " + status
	}

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text for the current mode
func (m model) renderHelp() string {
	switch {
	case m.edits.Editing() != nil:
		return helpStyle.Render(" type a priority 0-99 | enter: apply | esc: cancel")
	case m.moveMode:
		return helpStyle.Render(" ↑/↓/j/k: choose position | enter/m: drop | esc: cancel")
	default:
		return helpStyle.Render(" ↑/↓/j/k: navigate | K/J: move | m: grab | drag ⋮ with mouse | e: priority | u: undo | ctrl+r: redo | w: save | r: reload | q: quit")
	}
}
