// ABOUTME: In-progress priority text edits for a single list item
// ABOUTME: Holds raw text until the caller parses, clamps and resorts

package reorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Priority clamp range applied when committing a typed value
const (
	MinPriority = 0
	MaxPriority = 99
)

// ErrInvalidPriority is returned by ParsePriority for empty or non-numeric text
var ErrInvalidPriority = errors.New("invalid priority")

// EditingPriorityState is the raw, unvalidated text typed for one item
type EditingPriorityState struct {
	ItemID string
	Value  string
}

// PriorityEditController tracks at most one in-progress priority edit
type PriorityEditController struct {
	editing *EditingPriorityState
}

// NewPriorityEditController creates a controller with no active edit
func NewPriorityEditController() *PriorityEditController {
	return &PriorityEditController{}
}

// Editing returns a copy of the active edit, or nil
func (c *PriorityEditController) Editing() *EditingPriorityState {
	if c.editing == nil {
		return nil
	}

	e := *c.editing

	return &e
}

// StartEditing replaces any active edit with rawValue for itemID.
// A previous uncommitted edit is dropped without a resort.
func (c *PriorityEditController) StartEditing(itemID, rawValue string) {
	c.editing = &EditingPriorityState{ItemID: itemID, Value: rawValue}
}

// StopEditing clears the active edit
func (c *PriorityEditController) StopEditing() {
	c.editing = nil
}

// EditingValue returns the raw text when itemID is being edited, otherwise
// the committed priority
func (c *PriorityEditController) EditingValue(itemID string, committed int) string {
	if c.IsEditing(itemID) {
		return c.editing.Value
	}

	return strconv.Itoa(committed)
}

// IsEditing reports whether itemID has the active edit
func (c *PriorityEditController) IsEditing(itemID string) bool {
	return c.editing != nil && c.editing.ItemID == itemID
}

// ParsePriority turns committed edit text into a priority clamped to
// [MinPriority, MaxPriority]. The whole trimmed text must be an integer:
// "12abc" and "3.5" are rejected rather than read as their leading digits.
func ParsePriority(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidPriority)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return MinPriority, nil
			}

			return MaxPriority, nil
		}

		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPriority, raw)
	}

	return min(max(n, MinPriority), MaxPriority), nil
}
