package analyser

import (
	"math"
	"testing"
	"time"
)

// sineSamples generates interleaved stereo PCM of a pure tone.
func sineSamples(freq float64, sampleRate int, pairs int) []int16 {
	out := make([]int16, pairs*2)
	for i := range pairs {
		v := int16(12000 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}

func TestAnalyseFrameLength(t *testing.T) {
	a := New()
	f := a.Analyse(sineSamples(440, 44100, FFTSize))
	if len(f) != BinCount {
		t.Fatalf("expected %d bins, got %d", BinCount, len(f))
	}
}

func TestAnalyseShortInputYieldsSilence(t *testing.T) {
	a := New()
	f := a.Analyse(make([]int16, 10))
	if len(f) != BinCount {
		t.Fatalf("expected %d bins, got %d", BinCount, len(f))
	}
	for i, v := range f {
		if v != 0 {
			t.Fatalf("expected zero frame for short input, bin %d = %d", i, v)
		}
	}
}

func TestAnalyseToneConcentratesEnergy(t *testing.T) {
	a := New()
	// Several frames so exponential smoothing settles
	var f Frame
	for range 10 {
		f = a.Analyse(sineSamples(4410, 44100, FFTSize))
	}

	// 4410 Hz at 44100 Hz sample rate lands in bin 51.2 of 256
	peak := 0
	for i := range f {
		if f[i] > f[peak] {
			peak = i
		}
	}
	if peak < 45 || peak > 58 {
		t.Fatalf("expected spectral peak near bin 51, got %d", peak)
	}
}

func TestSamplerThrottles(t *testing.T) {
	h := NewHistory(HistoryDepth)
	s := NewSampler(New(), h)
	pcm := sineSamples(440, 44100, FFTSize)

	now := time.Now()
	if !s.Sample(now, pcm) {
		t.Fatal("expected first sample to proceed")
	}
	if s.Sample(now.Add(10*time.Millisecond), pcm) {
		t.Fatal("expected sample within interval to be throttled")
	}
	if !s.Sample(now.Add(40*time.Millisecond), pcm) {
		t.Fatal("expected sample past interval to proceed")
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 recorded frames, got %d", h.Len())
	}
}

func TestSamplerShapesFrames(t *testing.T) {
	h := NewHistory(HistoryDepth)
	s := NewSampler(New(), h)
	s.Sample(time.Now(), sineSamples(440, 44100, FFTSize))

	f := h.At(0)
	if f[0] != 0 || f[len(f)-1] != 0 {
		t.Fatalf("expected shaped frame with zero endpoints, got %d/%d", f[0], f[len(f)-1])
	}
}

func TestSamplerResetAllowsImmediateSample(t *testing.T) {
	h := NewHistory(HistoryDepth)
	s := NewSampler(New(), h)
	pcm := sineSamples(440, 44100, FFTSize)

	now := time.Now()
	s.Sample(now, pcm)
	s.Reset()
	if !s.Sample(now.Add(time.Millisecond), pcm) {
		t.Fatal("expected sample right after reset to proceed")
	}
}
