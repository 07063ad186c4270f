// Package visualizer renders frequency frame history as terminal
// graphics: the ridge stack by default, a scrolling spectrogram as the
// alternate mode.
package visualizer

import "github.com/9ntonio/unknown-pleasures/internal/analyser"

// Visualizer paints a waveform history into a terminal cell area.
// Opacity scales the stroke brightness; the fade-out passes decaying
// values, live rendering passes 1.
type Visualizer interface {
	Name() string
	Render(frames []analyser.Frame, width, height int, opacity float64)
	View() string
}

// Modes returns all available visualizers, default first.
func Modes() []Visualizer {
	return []Visualizer{
		NewRidge(),
		NewWaterfall(),
	}
}
