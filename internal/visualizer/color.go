package visualizer

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

// currentColorProfile probes the terminal once. NO_COLOR wins over
// everything.
func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case strings.Contains(term, "256color"):
			profile = colorANSI256
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI16
		}
	})
	return profile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// strokeGray maps an intensity to the white-on-black stroke color.
func strokeGray(intensity float64) colorRGB {
	v := uint8(clamp01(intensity) * 255)
	return colorRGB{R: v, G: v, B: v}
}

// pulseColor maps spectrogram energy onto a cold navy-to-white ramp.
func pulseColor(t float64) colorRGB {
	t = clamp01(t)
	switch {
	case t < 0.5:
		return lerpColor(colorRGB{R: 12, G: 16, B: 48}, colorRGB{R: 70, G: 110, B: 220}, t/0.5)
	case t < 0.8:
		return lerpColor(colorRGB{R: 70, G: 110, B: 220}, colorRGB{R: 180, G: 210, B: 255}, (t-0.5)/0.3)
	default:
		return lerpColor(colorRGB{R: 180, G: 210, B: 255}, colorRGB{R: 255, G: 255, B: 255}, (t-0.8)/0.2)
	}
}

func lerpColor(a, b colorRGB, t float64) colorRGB {
	t = clamp01(t)
	return colorRGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func scaleColor(c colorRGB, f float64) colorRGB {
	f = clamp01(f)
	return colorRGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// ansiState writes foreground escape sequences, skipping repeats.
type ansiState struct {
	profile colorProfile
	current uint32
}

func newANSIState() ansiState {
	return ansiState{profile: currentColorProfile(), current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.profile == colorNone {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || s.current == ^uint32(0) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.current = ^uint32(0)
}

func colorSequence(profile colorProfile, c colorRGB) string {
	key := uint32(profile)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch profile {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case colorANSI256:
		seq = fmt.Sprintf("\x1b[38;5;%dm", ansi256Index(c))
	case colorANSI16:
		seq = fmt.Sprintf("\x1b[%dm", 30+ansi16Index(c))
	}

	seqCache.Store(key, seq)
	return seq
}

// ansi256Index prefers the 24-step gray ramp for near-gray colors so
// the ridge strokes degrade cleanly on 256-color terminals.
func ansi256Index(c colorRGB) int {
	maxC := max(int(c.R), int(c.G), int(c.B))
	minC := min(int(c.R), int(c.G), int(c.B))
	if maxC-minC < 24 {
		gray := (int(c.R) + int(c.G) + int(c.B)) / 3
		if gray < 8 {
			return 16 // cube black
		}
		if gray > 238 {
			return 231 // cube white
		}
		return 232 + (gray-8)/10
	}
	r := int(c.R) * 5 / 255
	g := int(c.G) * 5 / 255
	b := int(c.B) * 5 / 255
	return 16 + 36*r + 6*g + b
}

func ansi16Index(c colorRGB) int {
	pal := []colorRGB{
		{R: 0, G: 0, B: 0},
		{R: 205, G: 49, B: 49},
		{R: 13, G: 188, B: 121},
		{R: 229, G: 229, B: 16},
		{R: 36, G: 114, B: 200},
		{R: 188, G: 63, B: 188},
		{R: 17, G: 168, B: 205},
		{R: 229, G: 229, B: 229},
	}
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range pal {
		dr := float64(c.R) - float64(p.R)
		dg := float64(c.G) - float64(p.G)
		db := float64(c.B) - float64(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
