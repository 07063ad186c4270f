// Package analyser converts raw PCM into the bounded stream of shaped
// frequency frames that the visualizer draws.
package analyser

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const (
	// FFTSize is the transform window; half of it is usable spectrum.
	FFTSize  = 512
	BinCount = FFTSize / 2

	// Byte magnitudes map this dB range onto 0-255.
	minDecibels = -100.0
	maxDecibels = -30.0

	// Exponential smoothing applied across successive frames.
	smoothing = 0.8
)

// Analyser produces frequency frames from interleaved stereo int16 PCM.
type Analyser struct {
	real     []float64
	smoothed []float64
}

// New creates an Analyser with the fixed FFT size.
func New() *Analyser {
	return &Analyser{
		real:     make([]float64, FFTSize),
		smoothed: make([]float64, BinCount),
	}
}

// Analyse runs one transform over the most recent samples and returns a
// fresh frame of byte magnitudes. The input must hold at least FFTSize
// stereo sample pairs; shorter input yields a zero frame.
func (a *Analyser) Analyse(samples []int16) Frame {
	out := make(Frame, BinCount)
	if len(samples) < FFTSize*2 {
		return out
	}

	// Mono mix, newest samples last
	start := len(samples) - FFTSize*2
	for i := range FFTSize {
		idx := start + i*2
		a.real[i] = float64(samples[idx]+samples[idx+1]) / 65536.0
	}
	window.Apply(a.real, window.Hann)

	spectrum := fft.FFTReal(a.real)

	for i := range BinCount {
		mag := cmplxAbs(spectrum[i]) / float64(FFTSize)
		a.smoothed[i] = a.smoothed[i]*smoothing + mag*(1-smoothing)

		db := minDecibels
		if a.smoothed[i] > 0 {
			db = 20 * math.Log10(a.smoothed[i])
		}
		out[i] = byteLevel(db)
	}
	return out
}

// Reset clears the smoothing state so the next frame starts cold.
func (a *Analyser) Reset() {
	for i := range a.smoothed {
		a.smoothed[i] = 0
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

// byteLevel maps a dB value onto 0-255 over [minDecibels, maxDecibels].
func byteLevel(db float64) byte {
	scaled := (db - minDecibels) / (maxDecibels - minDecibels) * 255
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return byte(scaled)
}
