package analyser

import "testing"

func TestHistoryBoundedAndNewestFirst(t *testing.T) {
	h := NewHistory(3)
	for i := range 10 {
		h.Push(Frame{byte(i)})
	}
	if h.Len() != 3 {
		t.Fatalf("expected history capped at 3, got %d", h.Len())
	}
	if h.At(0)[0] != 9 {
		t.Fatalf("expected newest frame at index 0, got %d", h.At(0)[0])
	}
	if h.At(2)[0] != 7 {
		t.Fatalf("expected oldest retained frame 7 at the back, got %d", h.At(2)[0])
	}
}

func TestHistoryFillsToDepth(t *testing.T) {
	h := NewHistory(5)
	for i := range 5 {
		h.Push(Frame{byte(i)})
	}
	if h.Len() != 5 {
		t.Fatalf("expected exactly depth frames, got %d", h.Len())
	}
	if h.At(4)[0] != 0 {
		t.Fatalf("expected first pushed frame still retained, got %d", h.At(4)[0])
	}
}

func TestSnapshotImmuneToLaterMutation(t *testing.T) {
	h := NewHistory(4)
	h.Push(Frame{10, 20})
	h.Push(Frame{30, 40})

	snap := h.Snapshot()
	h.Push(Frame{50, 60})
	h.At(0)[0] = 0
	h.Clear()

	if len(snap) != 2 {
		t.Fatalf("expected 2 frames in snapshot, got %d", len(snap))
	}
	if snap[0][0] != 30 || snap[1][0] != 10 {
		t.Fatalf("snapshot content disturbed: %v", snap)
	}
}

func TestClearEmptiesHistory(t *testing.T) {
	h := NewHistory(2)
	h.Push(Frame{1})
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("expected empty history after clear, got %d", h.Len())
	}
}
