// ABOUTME: Pointer geometry helpers for drop-position classification
// ABOUTME: Decides whether a pointer sits in the upper or lower half of a row

// Package reorder implements the list-reordering engine behind the ranking
// presenter: drop geometry, the reorder and resort algorithms, the drag/touch
// gesture state machine and the priority text-edit state.
package reorder

// Position is the side of a drop target the dragged item lands on
type Position int

// Drop positions relative to the hovered row
const (
	Before Position = iota
	After
)

// String returns "before" or "after"
func (p Position) String() string {
	if p == After {
		return "after"
	}

	return "before"
}

// Point is a pointer or touch coordinate in the presenter's coordinate space
type Point struct {
	X float64
	Y float64
}

// Rect is a row's bounding rectangle in the same coordinate space as Point.
// Only Top and Height take part in position classification.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether p falls inside the rectangle.
// The horizontal band is only checked when Width is set.
func (r Rect) Contains(p Point) bool {
	if p.Y < r.Top || p.Y >= r.Top+r.Height {
		return false
	}

	if r.Width > 0 && (p.X < r.Left || p.X >= r.Left+r.Width) {
		return false
	}

	return true
}

// ClassifyPosition returns Before when pointerY is above the vertical midpoint
// of rect and After otherwise. The exact midpoint counts as After.
func ClassifyPosition(pointerY float64, rect Rect) Position {
	if pointerY-rect.Top < rect.Height/2 {
		return Before
	}

	return After
}
