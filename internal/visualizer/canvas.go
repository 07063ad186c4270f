package visualizer

import "strings"

// dotCanvas is a braille dot grid (2x4 dots per cell) holding an
// intensity per dot. Strokes drawn later overwrite earlier ones, so
// painting back-to-front gives nearer rows occlusion.
type dotCanvas struct {
	cols, rows int // cells
	w, h       int // dots
	dots       []float64
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

func newDotCanvas(cols, rows int) *dotCanvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &dotCanvas{
		cols: cols,
		rows: rows,
		w:    cols * 2,
		h:    rows * 4,
		dots: make([]float64, cols*2*rows*4),
	}
}

func (c *dotCanvas) clear() {
	for i := range c.dots {
		c.dots[i] = 0
	}
}

func (c *dotCanvas) set(x, y int, level float64) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.dots[y*c.w+x] = level
}

// line draws a Bresenham segment in dot space.
func (c *dotCanvas) line(x0, y0, x1, y1 int, level float64) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.set(x0, y0, level)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// render emits the grid as braille runes; a cell's color comes from its
// brightest lit dot, scaled by opacity.
func (c *dotCanvas) render(opacity float64) string {
	opacity = clamp01(opacity)
	var out strings.Builder
	color := newANSIState()

	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			var pattern uint
			peak := 0.0
			for dx := range 2 {
				for dy := range 4 {
					v := c.dots[(row*4+dy)*c.w+col*2+dx]
					if v <= 0 {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if v > peak {
						peak = v
					}
				}
			}
			if pattern == 0 {
				out.WriteByte(' ')
				continue
			}
			color.set(&out, strokeGray(peak*opacity))
			out.WriteRune(rune(0x2800 + pattern))
		}
		color.reset(&out)
	}
	return out.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
