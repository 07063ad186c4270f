package visualizer

import (
	"time"

	"github.com/9ntonio/unknown-pleasures/internal/analyser"
)

// FadeDuration is the length of the stop fade.
const FadeDuration = 2 * time.Second

// Fade replays a history snapshot at linearly decaying opacity. It is a
// one-shot: once the duration elapses the owner clears the canvas and
// drops the fade.
type Fade struct {
	start    time.Time
	duration time.Duration
	frames   []analyser.Frame
}

// NewFade captures the snapshot and starts the decay clock.
func NewFade(now time.Time, snapshot []analyser.Frame) *Fade {
	return &Fade{start: now, duration: FadeDuration, frames: snapshot}
}

// Frames returns the immutable snapshot being replayed.
func (f *Fade) Frames() []analyser.Frame { return f.frames }

// Opacity returns the decayed stroke opacity at the given time.
func (f *Fade) Opacity(now time.Time) float64 {
	elapsed := now.Sub(f.start)
	if elapsed >= f.duration {
		return 0
	}
	return 1 - float64(elapsed)/float64(f.duration)
}

// Done reports whether the decay has fully elapsed.
func (f *Fade) Done(now time.Time) bool {
	return now.Sub(f.start) >= f.duration
}
