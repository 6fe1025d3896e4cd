package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmorelli/kaleido-go/internal/snapshot"
)

func snapN(n int) snapshot.Snapshot {
	return snapshot.Snapshot{Params: map[string]float64{"marker": float64(n)}}
}

func marker(s snapshot.Snapshot) int {
	return int(s.Params["marker"])
}

func TestUndoRedoInverse(t *testing.T) {
	h := New(10)

	h.Record(snapN(1)) // state before mutation M
	current := snapN(2) // state after M

	popped, ok := h.Undo(current)
	require.True(t, ok)
	require.Equal(t, 1, marker(popped))

	redone, ok := h.Redo(popped)
	require.True(t, ok)
	require.Equal(t, 2, marker(redone), "redo must restore the exact post-mutation state")
}

func TestUndoOnEmptyStackIsInformational(t *testing.T) {
	h := New(10)
	h.Record(snapN(1))

	_, ok := h.Undo(snapN(2))
	require.True(t, ok)
	_, ok = h.Undo(snapN(1))
	require.False(t, ok, "second undo with one recorded entry must report nothing to undo")
	_, ok = h.Redo(snapN(0))
	require.True(t, ok)
	_, ok = h.Redo(snapN(0))
	require.False(t, ok)
}

func TestRecordClearsRedo(t *testing.T) {
	h := New(10)
	h.Record(snapN(1))
	_, ok := h.Undo(snapN(2))
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Record(snapN(3))
	require.False(t, h.CanRedo(), "new mutation must clear the redo stack")
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	const limit = 50
	h := New(limit)
	for i := 0; i < limit+5; i++ {
		h.Record(snapN(i))
	}
	require.Equal(t, limit, h.UndoDepth())

	// Unwind fully: the most recent limit entries survive, oldest five gone.
	var got []int
	current := snapN(limit + 5)
	for {
		s, ok := h.Undo(current)
		if !ok {
			break
		}
		got = append(got, marker(s))
		current = s
	}
	require.Len(t, got, limit)
	require.Equal(t, limit+4, got[0], "top of stack is the newest record")
	require.Equal(t, 5, got[len(got)-1], "records 0..4 were evicted in FIFO order")
}

func TestDefaultCapacityFallback(t *testing.T) {
	for _, bad := range []int{0, -3} {
		h := New(bad)
		for i := 0; i < DefaultCapacity+10; i++ {
			h.Record(snapN(i))
		}
		require.Equal(t, DefaultCapacity, h.UndoDepth(), fmt.Sprintf("capacity %d", bad))
	}
}
