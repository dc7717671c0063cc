// ABOUTME: Pure list reorder and priority resort algorithms
// ABOUTME: Every result carries dense 1-based priorities matching list order

package reorder

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidOperation is returned for a reorder onto the same item or a
// reference to an id that is not in the list. The input slice is returned
// untouched alongside it.
var ErrInvalidOperation = errors.New("invalid reorder operation")

// Sortable is the minimal shape the engine needs from a list item.
// WithPriority must return a copy so the caller's items are never mutated.
type Sortable[T any] interface {
	SortID() string
	SortPriority() int
	WithPriority(priority int) T
}

// Reorder moves the item fromID next to toID on the given side and renumbers
// priorities 1..N. The returned slice is always a new slice on success.
func Reorder[T Sortable[T]](items []T, fromID, toID string, pos Position) ([]T, error) {
	if fromID == toID {
		return items, fmt.Errorf("%w: %q dropped on itself", ErrInvalidOperation, fromID)
	}

	fromIdx := IndexOf(items, fromID)
	if fromIdx < 0 {
		return items, fmt.Errorf("%w: unknown source %q", ErrInvalidOperation, fromID)
	}

	toIdx := IndexOf(items, toID)
	if toIdx < 0 {
		return items, fmt.Errorf("%w: unknown target %q", ErrInvalidOperation, toID)
	}

	moved := items[fromIdx]

	rest := make([]T, 0, len(items))
	rest = append(rest, items[:fromIdx]...)
	rest = append(rest, items[fromIdx+1:]...)

	// Removing the source shifts every later index down by one, so the
	// target's post-removal index depends on the drag direction.
	insertAt := toIdx
	if fromIdx < toIdx {
		insertAt = toIdx - 1
		if pos == After {
			insertAt = toIdx
		}
	} else if pos == After {
		insertAt = toIdx + 1
	}

	rest = slices.Insert(rest, insertAt, moved)

	return Renumber(rest), nil
}

// ResortByPriority sets editedID's priority to newPriority, stable-sorts the
// list ascending by priority and renumbers 1..N. On a tie the edited item
// lands on the side it moved towards, so it takes the requested rank:
// after its equals when its priority grew, before them otherwise.
// newPriority is expected to be clamped by the caller.
func ResortByPriority[T Sortable[T]](items []T, editedID string, newPriority int) ([]T, error) {
	idx := IndexOf(items, editedID)
	if idx < 0 {
		return items, fmt.Errorf("%w: unknown item %q", ErrInvalidOperation, editedID)
	}

	tie := -1
	if newPriority > items[idx].SortPriority() {
		tie = 1
	}

	out := slices.Clone(items)
	out[idx] = out[idx].WithPriority(newPriority)

	slices.SortStableFunc(out, func(a, b T) int {
		if c := cmp.Compare(a.SortPriority(), b.SortPriority()); c != 0 {
			return c
		}

		switch editedID {
		case a.SortID():
			return tie
		case b.SortID():
			return -tie
		}

		return 0
	})

	return Renumber(out), nil
}

// Renumber returns a copy of items with priority = position + 1
func Renumber[T Sortable[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.WithPriority(i + 1)
	}

	return out
}

// IndexOf returns the position of id in items, or -1
func IndexOf[T Sortable[T]](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return item.SortID() == id
	})
}
