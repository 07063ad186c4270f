package analyser

// HistoryDepth is the number of frames retained for the ridge stack.
const HistoryDepth = 60

// History holds the most recent frames, newest first, bounded by depth.
type History struct {
	frames []Frame
	depth  int
}

// NewHistory creates a History bounded to the given depth.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth}
}

// Push prepends a frame, evicting the oldest once the bound is exceeded.
func (h *History) Push(f Frame) {
	h.frames = append([]Frame{f}, h.frames...)
	if len(h.frames) > h.depth {
		h.frames = h.frames[:h.depth]
	}
}

// Len returns the number of retained frames.
func (h *History) Len() int { return len(h.frames) }

// Depth returns the bound.
func (h *History) Depth() int { return h.depth }

// At returns the frame at position i (0 = newest). The returned slice
// aliases the stored frame.
func (h *History) At(i int) Frame { return h.frames[i] }

// Frames returns the retained frames newest first. The slice is a
// fresh copy but the frames alias storage; callers must not mutate.
func (h *History) Frames() []Frame {
	out := make([]Frame, len(h.frames))
	copy(out, h.frames)
	return out
}

// Snapshot deep-copies the current frames so later pushes or clears
// cannot disturb the copy.
func (h *History) Snapshot() []Frame {
	out := make([]Frame, len(h.frames))
	for i, f := range h.frames {
		out[i] = f.Clone()
	}
	return out
}

// Clear drops all frames.
func (h *History) Clear() {
	h.frames = nil
}
