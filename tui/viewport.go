// ABOUTME: Keeps the cursor row in view while scrolling the ranking
// ABOUTME: Cursor travels to the middle of the screen, then the list scrolls under it

package tui

// ScrollPhase describes where the cursor sits relative to the scroll window
type ScrollPhase int

const (
	TopPhase    ScrollPhase = iota // Window pinned to the first row, cursor moves
	MiddlePhase                    // Cursor pinned to the middle, rows scroll
	BottomPhase                    // Window pinned to the last row, cursor moves
)

// ViewportManager computes the first visible row for a cursor position.
// All values are in rows, not terminal lines.
type ViewportManager struct {
	visibleRows int
	cursorRow   int
	totalRows   int
}

// NewViewportManager creates a manager for a window of visibleRows rows
func NewViewportManager(visibleRows, cursorRow, totalRows int) *ViewportManager {
	return &ViewportManager{
		visibleRows: visibleRows,
		cursorRow:   cursorRow,
		totalRows:   totalRows,
	}
}

// SetVisibleRows updates the window size
func (vm *ViewportManager) SetVisibleRows(rows int) {
	vm.visibleRows = rows
}

// SetCursorRow updates the cursor position
func (vm *ViewportManager) SetCursorRow(row int) {
	vm.cursorRow = row
}

// SetTotalRows updates the row count
func (vm *ViewportManager) SetTotalRows(total int) {
	vm.totalRows = total
}

// Phase returns the scrolling phase for the current cursor
func (vm *ViewportManager) Phase() ScrollPhase {
	if vm.totalRows == 0 || vm.visibleRows < 1 {
		return TopPhase
	}

	middle := vm.visibleRows / 2
	if vm.cursorRow < middle {
		return TopPhase
	}

	if vm.cursorRow < vm.totalRows-vm.visibleRows+middle {
		return MiddlePhase
	}

	return BottomPhase
}

// FirstVisibleRow returns the index of the first row to show
func (vm *ViewportManager) FirstVisibleRow() int {
	switch vm.Phase() {
	case MiddlePhase:
		return vm.cursorRow - vm.visibleRows/2
	case BottomPhase:
		return max(vm.totalRows-vm.visibleRows, 0)
	default:
		return 0
	}
}
