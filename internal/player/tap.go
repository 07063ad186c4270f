package player

import (
	"encoding/binary"
	"io"
	"sync"
)

// Tap sits between the looping source and the audio output, mirroring
// every sample it passes through into a bounded ring so the analyser
// can read the most recently played audio. The output's feeder
// goroutine writes; the UI tick reads.
type Tap struct {
	src io.Reader

	mu    sync.Mutex
	buf   []int16
	w     int
	fill  int
	spare byte
	held  bool
}

// NewTap wraps a PCM byte stream with a ring of the given sample count.
func NewTap(src io.Reader, size int) *Tap {
	return &Tap{src: src, buf: make([]int16, size)}
}

func (t *Tap) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 {
		t.capture(p[:n])
	}
	return n, err
}

// capture folds raw bytes into int16 ring entries, holding a spare byte
// across reads that split a sample in half.
func (t *Tap) capture(raw []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := 0
	if t.held && len(raw) > 0 {
		t.push(int16(binary.LittleEndian.Uint16([]byte{t.spare, raw[0]})))
		t.held = false
		i = 1
	}
	for ; i+1 < len(raw); i += 2 {
		t.push(int16(binary.LittleEndian.Uint16(raw[i:])))
	}
	if i < len(raw) {
		t.spare = raw[i]
		t.held = true
	}
}

func (t *Tap) push(s int16) {
	t.buf[t.w] = s
	t.w = (t.w + 1) % len(t.buf)
	if t.fill < len(t.buf) {
		t.fill++
	}
}

// Samples returns up to n of the most recent samples in chronological
// order.
func (t *Tap) Samples(n int) []int16 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n > t.fill {
		n = t.fill
	}
	if n == 0 {
		return nil
	}
	out := make([]int16, n)
	start := (t.w - n + len(t.buf)) % len(t.buf)
	for i := range n {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Clear resets the ring.
func (t *Tap) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w = 0
	t.fill = 0
	t.held = false
}
