// ABOUTME: Maps terminal cells to the pixel geometry the gesture engine works in
// ABOUTME: Shared by all model copies so registered row bounds always read current state

package tui

import (
	"discipline-ranker/reorder"
)

// rowHeight is the number of terminal lines per discipline. The top line is
// the "before" half of the row and the bottom line the "after" half.
const rowHeight = 2

// layout is held by pointer so the BoundsFunc closures registered with the
// gesture controller see the latest scroll position after every Update.
type layout struct {
	listTop int // Screen line of the first list line
	height  int // Visible list lines
	width   int // List width in cells
	yOffset int // First visible list line

	cellW float64
	cellH float64

	index      map[string]int
	registered []string
}

func newLayout(cellW, cellH float64) *layout {
	return &layout{
		listTop: titleHeight + headerHeight,
		cellW:   cellW,
		cellH:   cellH,
		index:   map[string]int{},
	}
}

// syncRows re-registers every discipline with the gesture controller
func (l *layout) syncRows(g *reorder.GestureController, ids []string) {
	for _, id := range l.registered {
		g.UnregisterRow(id)
	}

	l.index = make(map[string]int, len(ids))
	l.registered = append(l.registered[:0], ids...)

	for i, id := range ids {
		l.index[id] = i
		g.RegisterRow(id, func() (reorder.Rect, bool) {
			return l.rowRect(id)
		})
	}
}

// rowRect returns the pixel rectangle of a fully visible row
func (l *layout) rowRect(id string) (reorder.Rect, bool) {
	idx, ok := l.index[id]
	if !ok {
		return reorder.Rect{}, false
	}

	line := idx*rowHeight - l.yOffset
	if line < 0 || line+rowHeight > l.height {
		return reorder.Rect{}, false
	}

	return reorder.Rect{
		Left:   0,
		Top:    float64(l.listTop+line) * l.cellH,
		Width:  float64(l.width) * l.cellW,
		Height: rowHeight * l.cellH,
	}, true
}

// rowAt returns the row index under screen line y
func (l *layout) rowAt(y, rows int) (int, bool) {
	line := y - l.listTop
	if line < 0 || line >= l.height {
		return 0, false
	}

	idx := (line + l.yOffset) / rowHeight
	if idx >= rows {
		return 0, false
	}

	return idx, true
}

// point converts a cell to the pixel at its centre
func (l *layout) point(x, y int) reorder.Point {
	return reorder.Point{
		X: (float64(x) + 0.5) * l.cellW,
		Y: (float64(y) + 0.5) * l.cellH,
	}
}

// touch wraps a cell position as a single-finger touch event
func (l *layout) touch(x, y int) reorder.TouchEvent {
	return reorder.TouchEvent{Touches: []reorder.Point{l.point(x, y)}}
}
