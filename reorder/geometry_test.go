// ABOUTME: Tests for drop-position geometry
// ABOUTME: Checks midpoint tie-break and rectangle containment

package reorder

import "testing"

func TestClassifyPosition(t *testing.T) {
	rect := Rect{Top: 100, Height: 40}

	tests := []struct {
		name string
		y    float64
		want Position
	}{
		{"top edge", 100, Before},
		{"upper half", 119.9, Before},
		{"exact midpoint", 120, After},
		{"lower half", 139, After},
		{"above the row", 50, Before},
		{"below the row", 200, After},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPosition(tt.y, rect); got != tt.want {
				t.Errorf("ClassifyPosition(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPosition_MidpointOfAnyRect(t *testing.T) {
	for _, rect := range []Rect{{Top: 0, Height: 1}, {Top: -10, Height: 7}, {Top: 3.5, Height: 0}} {
		if got := ClassifyPosition(rect.Top+rect.Height/2, rect); got != After {
			t.Errorf("ClassifyPosition(midpoint of %+v) = %v, want after", rect, got)
		}
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		p    Point
		want bool
	}{
		{"inside band", Rect{Top: 10, Height: 10}, Point{X: 500, Y: 15}, true},
		{"bottom edge exclusive", Rect{Top: 10, Height: 10}, Point{Y: 20}, false},
		{"top edge inclusive", Rect{Top: 10, Height: 10}, Point{Y: 10}, true},
		{"outside width", Rect{Left: 0, Width: 50, Top: 10, Height: 10}, Point{X: 60, Y: 15}, false},
		{"inside width", Rect{Left: 0, Width: 50, Top: 10, Height: 10}, Point{X: 49, Y: 15}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if Before.String() != "before" || After.String() != "after" {
		t.Errorf("unexpected strings %q %q", Before, After)
	}
}
