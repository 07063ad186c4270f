package analyser

import "math"

// Frame is one sampled spectrum: a byte magnitude (0-255) per frequency bin.
type Frame []byte

// Shape applies the sine envelope that turns raw magnitudes into the
// tapered mountain profile: bin i is scaled by sin(π·i/(L-1)) and both
// endpoints are forced to zero. Values never increase.
func (f Frame) Shape() {
	n := len(f)
	if n == 0 {
		return
	}
	if n == 1 {
		f[0] = 0
		return
	}
	for i := range n {
		env := math.Sin(math.Pi * float64(i) / float64(n-1))
		f[i] = byte(float64(f[i]) * env)
	}
	f[0] = 0
	f[n-1] = 0
}

// Clone returns an independent copy of the frame.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}
