package player

import (
	"encoding/binary"
	"io"
)

// loopReader streams a PCM buffer endlessly as 16-bit LE bytes,
// wrapping back to offset 0 at the end. It never returns io.EOF unless
// the buffer is empty.
type loopReader struct {
	data []byte
	pos  int
}

// newLoopReader converts the buffer's samples to their wire form once
// and loops over the result.
func newLoopReader(pcm []int16) *loopReader {
	data := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return &loopReader{data: data}
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	total := 0
	for total < len(p) {
		n := copy(p[total:], r.data[r.pos:])
		total += n
		r.pos += n
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return total, nil
}
