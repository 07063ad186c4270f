package analyser

import "time"

// SampleInterval throttles sampling to ~30 fps regardless of how often
// the display tick fires.
const SampleInterval = 33 * time.Millisecond

// Sampler pulls a frame from the analyser at most once per interval and
// pushes the shaped result into the history.
type Sampler struct {
	analyser *Analyser
	history  *History
	interval time.Duration
	last     time.Time
}

// NewSampler wires an analyser to a history with the default throttle.
func NewSampler(a *Analyser, h *History) *Sampler {
	return &Sampler{analyser: a, history: h, interval: SampleInterval}
}

// Sample analyses the given PCM and records a frame if the throttle
// interval has elapsed since the previous sample. It reports whether a
// frame was recorded.
func (s *Sampler) Sample(now time.Time, samples []int16) bool {
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now

	f := s.analyser.Analyse(samples)
	f.Shape()
	s.history.Push(f)
	return true
}

// Reset forgets the throttle state and clears analyser smoothing, so a
// restarted playback begins with an immediate sample.
func (s *Sampler) Reset() {
	s.last = time.Time{}
	s.analyser.Reset()
}
