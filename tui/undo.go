// ABOUTME: Undo/redo history for ranking edits
// ABOUTME: Keeps bounded snapshots of the discipline order and cursor

package tui

import (
	"slices"

	"discipline-ranker/ranking"
)

// RankingState captures a snapshot of the ranking for undo/redo
type RankingState struct {
	Disciplines []ranking.Discipline
	CursorPos   int
}

func (s RankingState) clone() RankingState {
	return RankingState{
		Disciplines: slices.Clone(s.Disciplines),
		CursorPos:   s.CursorPos,
	}
}

// UndoManager manages undo/redo stacks with maximum size limit
type UndoManager struct {
	undoStack []RankingState
	redoStack []RankingState
	maxSize   int
}

// NewUndoManager creates a new undo manager with the specified max stack size
func NewUndoManager(maxSize int) *UndoManager {
	return &UndoManager{maxSize: maxSize}
}

// Push records the state before an edit and drops any redo history
func (um *UndoManager) Push(state RankingState) {
	um.undoStack = pushBounded(um.undoStack, state.clone(), um.maxSize)
	um.redoStack = nil
}

// Undo returns the previous state, moving current onto the redo stack.
// ok is false when there is nothing to undo.
func (um *UndoManager) Undo(current RankingState) (RankingState, bool) {
	if len(um.undoStack) == 0 {
		return RankingState{}, false
	}

	um.redoStack = pushBounded(um.redoStack, current.clone(), um.maxSize)

	state := um.undoStack[len(um.undoStack)-1]
	um.undoStack = um.undoStack[:len(um.undoStack)-1]

	return state, true
}

// Redo returns the next state, moving current onto the undo stack.
// ok is false when there is nothing to redo.
func (um *UndoManager) Redo(current RankingState) (RankingState, bool) {
	if len(um.redoStack) == 0 {
		return RankingState{}, false
	}

	um.undoStack = pushBounded(um.undoStack, current.clone(), um.maxSize)

	state := um.redoStack[len(um.redoStack)-1]
	um.redoStack = um.redoStack[:len(um.redoStack)-1]

	return state, true
}

// UndoSize returns the number of items in the undo stack
func (um *UndoManager) UndoSize() int {
	return len(um.undoStack)
}

// RedoSize returns the number of items in the redo stack
func (um *UndoManager) RedoSize() int {
	return len(um.redoStack)
}

// Clear drops all history
func (um *UndoManager) Clear() {
	um.undoStack = nil
	um.redoStack = nil
}

func pushBounded(stack []RankingState, state RankingState, maxSize int) []RankingState {
	stack = append(stack, state)
	if len(stack) > maxSize {
		stack = stack[len(stack)-maxSize:]
	}

	return stack
}
