package visualizer

import (
	"strings"

	"github.com/9ntonio/unknown-pleasures/internal/analyser"
)

var waterfallChars = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// Waterfall scrolls the newest frequency frame down the screen as a
// spectrogram heatmap, the alternate mode to the ridge stack.
type Waterfall struct {
	smooth  springField
	history [][]float64
	output  string
	profile colorProfile
}

func NewWaterfall() *Waterfall {
	return &Waterfall{
		smooth:  newSpringField(30, 8.5, 0.72),
		profile: currentColorProfile(),
	}
}

func (w *Waterfall) Name() string { return "waterfall" }

func (w *Waterfall) Render(frames []analyser.Frame, width, height int, opacity float64) {
	if height < 1 {
		height = 1
	}
	cols := width - 2
	if cols < 8 {
		cols = 8
	}

	line := make([]float64, cols)
	w.smooth.resize(cols)
	if len(frames) > 0 && len(frames[0]) > 0 {
		f := frames[0]
		den := cols - 1
		if den < 1 {
			den = 1
		}
		for c := range cols {
			bin := float64(c) / float64(den) * float64(len(f)-1)
			lo := int(bin)
			hi := lo + 1
			if hi >= len(f) {
				hi = len(f) - 1
			}
			t := bin - float64(lo)
			target := (float64(f[lo])*(1-t) + float64(f[hi])*t) / 255
			line[c] = clamp01(w.smooth.step(c, target))
		}
	}

	if len(w.history) != height || (height > 0 && len(w.history[0]) != cols) {
		w.history = make([][]float64, height)
		for r := range height {
			w.history[r] = make([]float64, cols)
		}
	}

	for r := height - 1; r > 0; r-- {
		copy(w.history[r], w.history[r-1])
	}
	copy(w.history[0], line)

	var out strings.Builder
	color := newANSIState()

	for r := range height {
		if r > 0 {
			out.WriteByte('\n')
		}
		age := float64(r) / float64(height)
		for c := range cols {
			v := clamp01(w.history[r][c])
			idx := int(v * float64(len(waterfallChars)-1))
			ch := waterfallChars[idx]
			if ch == ' ' || w.profile == colorNone {
				out.WriteRune(ch)
				continue
			}
			col := pulseColor(v)
			col = scaleColor(col, (1-age*0.65)*clamp01(opacity))
			color.set(&out, col)
			out.WriteRune(ch)
		}
		color.reset(&out)
	}

	w.output = out.String()
}

func (w *Waterfall) View() string { return w.output }
