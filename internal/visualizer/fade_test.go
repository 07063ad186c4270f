package visualizer

import (
	"testing"
	"time"

	"github.com/9ntonio/unknown-pleasures/internal/analyser"
)

func TestFadeOpacitySchedule(t *testing.T) {
	start := time.Now()
	f := NewFade(start, []analyser.Frame{shapedFrame(100)})

	if got := f.Opacity(start); got != 1 {
		t.Fatalf("expected full opacity at start, got %v", got)
	}

	half := f.Opacity(start.Add(FadeDuration / 2))
	if half < 0.45 || half > 0.55 {
		t.Fatalf("expected ~0.5 opacity at midpoint, got %v", half)
	}

	if got := f.Opacity(start.Add(FadeDuration)); got != 0 {
		t.Fatalf("expected zero opacity at expiry, got %v", got)
	}
	if got := f.Opacity(start.Add(10 * FadeDuration)); got != 0 {
		t.Fatalf("expected opacity pinned at zero past expiry, got %v", got)
	}
}

func TestFadeDone(t *testing.T) {
	start := time.Now()
	f := NewFade(start, nil)

	if f.Done(start.Add(FadeDuration - time.Millisecond)) {
		t.Fatal("expected fade still running just before expiry")
	}
	if !f.Done(start.Add(FadeDuration)) {
		t.Fatal("expected fade done at expiry")
	}
}

func TestFadeFramesAreTheSnapshot(t *testing.T) {
	snap := []analyser.Frame{shapedFrame(42), shapedFrame(7)}
	f := NewFade(time.Now(), snap)
	if len(f.Frames()) != 2 {
		t.Fatalf("expected 2 snapshot frames, got %d", len(f.Frames()))
	}
}
