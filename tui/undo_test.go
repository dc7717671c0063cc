// ABOUTME: Tests for UndoManager stack operations
// ABOUTME: Verifies undo/redo behavior, snapshot isolation and stack size limits

package tui

import (
	"testing"

	"discipline-ranker/ranking"
)

func createTestState(count, cursorPos int) RankingState {
	disciplines := make([]ranking.Discipline, count)
	for i := range disciplines {
		disciplines[i] = ranking.Discipline{
			ID:       string(rune('A' + i)),
			Name:     "Discipline " + string(rune('A'+i)),
			Priority: i + 1,
		}
	}

	return RankingState{
		Disciplines: disciplines,
		CursorPos:   cursorPos,
	}
}

func TestUndoManager_PushAndUndo(t *testing.T) {
	um := NewUndoManager(50)

	um.Push(createTestState(5, 0))

	restored, ok := um.Undo(createTestState(4, 1))
	if !ok {
		t.Fatal("Undo should succeed")
	}

	if len(restored.Disciplines) != 5 {
		t.Errorf("Undo restored %d disciplines, want 5", len(restored.Disciplines))
	}

	if restored.CursorPos != 0 {
		t.Errorf("Undo restored cursor to %d, want 0", restored.CursorPos)
	}

	if um.RedoSize() != 1 {
		t.Errorf("RedoSize = %d, want 1", um.RedoSize())
	}
}

func TestUndoManager_EmptyStacks(t *testing.T) {
	um := NewUndoManager(50)

	if _, ok := um.Undo(createTestState(3, 0)); ok {
		t.Error("Undo should fail on empty stack")
	}

	if _, ok := um.Redo(createTestState(3, 0)); ok {
		t.Error("Redo should fail on empty stack")
	}

	if um.RedoSize() != 0 {
		t.Error("failed undo must not touch the redo stack")
	}
}

func TestUndoManager_UndoRedoCycle(t *testing.T) {
	um := NewUndoManager(50)

	s1 := createTestState(3, 0)
	s2 := createTestState(3, 1)
	s3 := createTestState(3, 2)

	um.Push(s1)
	um.Push(s2)

	got, _ := um.Undo(s3)
	if got.CursorPos != 1 {
		t.Fatalf("first undo cursor = %d, want 1", got.CursorPos)
	}

	got, _ = um.Undo(got)
	if got.CursorPos != 0 {
		t.Fatalf("second undo cursor = %d, want 0", got.CursorPos)
	}

	got, _ = um.Redo(got)
	if got.CursorPos != 1 {
		t.Fatalf("first redo cursor = %d, want 1", got.CursorPos)
	}

	got, _ = um.Redo(got)
	if got.CursorPos != 2 {
		t.Fatalf("second redo cursor = %d, want 2", got.CursorPos)
	}

	if um.UndoSize() != 2 || um.RedoSize() != 0 {
		t.Errorf("sizes = U:%d R:%d, want U:2 R:0", um.UndoSize(), um.RedoSize())
	}
}

func TestUndoManager_PushClearsRedo(t *testing.T) {
	um := NewUndoManager(50)

	um.Push(createTestState(3, 0))
	um.Undo(createTestState(3, 1))

	if um.RedoSize() != 1 {
		t.Fatalf("RedoSize = %d, want 1", um.RedoSize())
	}

	um.Push(createTestState(3, 2))

	if um.RedoSize() != 0 {
		t.Errorf("Push should clear redo stack, RedoSize = %d", um.RedoSize())
	}
}

func TestUndoManager_MaxStackSize(t *testing.T) {
	um := NewUndoManager(3)

	for i := range 5 {
		um.Push(createTestState(3, i))
	}

	if um.UndoSize() != 3 {
		t.Fatalf("UndoSize = %d, want 3", um.UndoSize())
	}

	// Oldest entries are dropped first
	got, _ := um.Undo(createTestState(3, 9))
	if got.CursorPos != 4 {
		t.Errorf("newest state cursor = %d, want 4", got.CursorPos)
	}

	um.Undo(got)
	got, _ = um.Undo(got)

	if got.CursorPos != 2 {
		t.Errorf("oldest kept cursor = %d, want 2", got.CursorPos)
	}
}

func TestUndoManager_SnapshotsAreIsolated(t *testing.T) {
	um := NewUndoManager(50)

	state := createTestState(3, 0)
	um.Push(state)

	// Mutating the caller's slice must not change history
	state.Disciplines[0].Name = "changed"

	got, _ := um.Undo(createTestState(3, 0))
	if got.Disciplines[0].Name == "changed" {
		t.Error("undo stack shares memory with the pushed state")
	}
}

func TestUndoManager_Clear(t *testing.T) {
	um := NewUndoManager(50)

	um.Push(createTestState(3, 0))
	um.Push(createTestState(3, 1))
	um.Undo(createTestState(3, 2))
	um.Clear()

	if um.UndoSize() != 0 || um.RedoSize() != 0 {
		t.Errorf("after Clear sizes = U:%d R:%d", um.UndoSize(), um.RedoSize())
	}
}
