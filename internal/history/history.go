// Package history implements the bounded undo/redo snapshot stacks.
package history

import "github.com/bmorelli/kaleido-go/internal/snapshot"

// DefaultCapacity bounds each stack when no explicit capacity is given.
const DefaultCapacity = 50

// History holds two bounded LIFO stacks of snapshots. Pushing past capacity
// evicts the oldest entry at the bottom of the stack.
type History struct {
	capacity int
	undo     []snapshot.Snapshot
	redo     []snapshot.Snapshot
}

// New returns a history bounded at capacity; non-positive values fall back to
// DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Record pushes the pre-mutation state onto the undo stack and clears the
// redo stack. Call exactly once per discrete user-visible mutation, before
// applying it — never per frame and never per drag increment.
func (h *History) Record(s snapshot.Snapshot) {
	h.undo = push(h.undo, s, h.capacity)
	h.redo = h.redo[:0]
}

// Undo exchanges current for the most recent undo entry: current goes onto
// the redo stack, the popped entry is returned for restoring. The second
// return is false when there is nothing to undo.
func (h *History) Undo(current snapshot.Snapshot) (snapshot.Snapshot, bool) {
	n := len(h.undo)
	if n == 0 {
		return snapshot.Snapshot{}, false
	}
	h.redo = push(h.redo, current, h.capacity)
	s := h.undo[n-1]
	h.undo = h.undo[:n-1]
	return s, true
}

// Redo is the mirror of Undo across the two stacks.
func (h *History) Redo(current snapshot.Snapshot) (snapshot.Snapshot, bool) {
	n := len(h.redo)
	if n == 0 {
		return snapshot.Snapshot{}, false
	}
	h.undo = push(h.undo, current, h.capacity)
	s := h.redo[n-1]
	h.redo = h.redo[:n-1]
	return s, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undoable entries.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redoable entries.
func (h *History) RedoDepth() int { return len(h.redo) }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

func push(stack []snapshot.Snapshot, s snapshot.Snapshot, capacity int) []snapshot.Snapshot {
	if len(stack) >= capacity {
		// FIFO eviction at the bottom.
		copy(stack, stack[1:])
		stack = stack[:len(stack)-1]
	}
	return append(stack, s)
}
