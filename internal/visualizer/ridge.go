package visualizer

import (
	"math"

	"github.com/9ntonio/unknown-pleasures/internal/analyser"
)

const (
	// Farther rows flatten toward 1-perspectiveDepth of full height.
	perspectiveDepth = 0.6

	// Vertical offset gain applied to every sample.
	amplitudeGain = 0.5

	// Fraction of the dot height kept clear above and below the stack.
	paddingFrac = 0.1

	// Rows in the front sixth of the stack get a thicker stroke.
	thickFrac = 6
)

// Ridge draws the waveform history as a stack of smoothed, perspective
// scaled mountain silhouettes, newest row at the bottom front.
type Ridge struct {
	depth  int
	canvas *dotCanvas
	output string
}

// NewRidge creates the ridge renderer for the standard history depth.
func NewRidge() *Ridge {
	return &Ridge{depth: analyser.HistoryDepth}
}

func (r *Ridge) Name() string { return "ridge" }

// Render repaints the full stack. Row layout depends only on the fixed
// depth, so the stack grows upward while the history fills.
func (r *Ridge) Render(frames []analyser.Frame, width, height int, opacity float64) {
	if r.canvas == nil || r.canvas.cols != width || r.canvas.rows != height {
		r.canvas = newDotCanvas(width, height)
	}
	r.canvas.clear()

	h := float64(r.canvas.h)
	pad := h * paddingFrac
	usable := h - 2*pad
	rowStep := usable / float64(r.depth)
	n := len(frames)
	if n > r.depth {
		n = r.depth
	}

	// Back to front so near rows occlude far ones
	for j := n - 1; j >= 0; j-- {
		depthFrac := float64(j) / float64(r.depth)
		baseline := h - pad - float64(j)*rowStep
		scale := 1 - depthFrac*perspectiveDepth
		level := 0.45 + 0.55*(1-depthFrac)
		thick := j < r.depth/thickFrac

		r.strokeRow(frames[j], baseline, scale, usable, level, thick)
	}

	r.output = r.canvas.render(opacity)
}

// strokeRow plots one frame as a smoothed curve over its baseline: one
// point per bin, consecutive points joined by quadratic segments whose
// control is the bin point and whose end is the midpoint to the next,
// with straight runs to the baseline at both ends.
func (r *Ridge) strokeRow(f analyser.Frame, baseline, scale, usable, level float64, thick bool) {
	l := len(f)
	if l < 2 || r.canvas.w < 2 {
		return
	}

	// The vertical gain maps a full-scale magnitude to half the usable
	// height once the amplitude gain is applied.
	gain := usable / 255
	xs := make([]float64, l)
	ys := make([]float64, l)
	for i := range l {
		taper := math.Sin(math.Pi * float64(i) / float64(l-1))
		xs[i] = float64(i) / float64(l-1) * float64(r.canvas.w-1)
		ys[i] = baseline - float64(f[i])*scale*amplitudeGain*taper*gain
	}

	prevX, prevY := xs[0], baseline
	stroke := func(x, y float64) {
		x0 := int(math.Round(prevX))
		y0 := int(math.Round(prevY))
		x1 := int(math.Round(x))
		y1 := int(math.Round(y))
		r.canvas.line(x0, y0, x1, y1, level)
		if thick {
			r.canvas.line(x0, y0+1, x1, y1+1, level)
		}
		prevX, prevY = x, y
	}

	stroke(xs[0], ys[0])
	for i := 1; i < l-1; i++ {
		midX := (xs[i] + xs[i+1]) / 2
		midY := (ys[i] + ys[i+1]) / 2
		sx, sy := prevX, prevY
		for _, t := range []float64{0.25, 0.5, 0.75, 1} {
			qx, qy := quadPoint(sx, sy, xs[i], ys[i], midX, midY, t)
			stroke(qx, qy)
		}
	}
	stroke(xs[l-1], ys[l-1])
	stroke(xs[l-1], baseline)
}

// quadPoint evaluates a quadratic Bézier at t.
func quadPoint(x0, y0, cx, cy, x1, y1, t float64) (float64, float64) {
	u := 1 - t
	x := u*u*x0 + 2*u*t*cx + t*t*x1
	y := u*u*y0 + 2*u*t*cy + t*t*y1
	return x, y
}

func (r *Ridge) View() string { return r.output }
