package analyser

import "testing"

func TestShapeZeroesEndpoints(t *testing.T) {
	f := Frame{200, 180, 160, 140, 120}
	f.Shape()
	if f[0] != 0 {
		t.Fatalf("expected first bin forced to 0, got %d", f[0])
	}
	if f[len(f)-1] != 0 {
		t.Fatalf("expected last bin forced to 0, got %d", f[len(f)-1])
	}
}

func TestShapeNeverIncreasesValues(t *testing.T) {
	orig := Frame{0, 50, 100, 150, 200, 250, 255}
	f := orig.Clone()
	f.Shape()
	for i := range f {
		if f[i] > orig[i] {
			t.Fatalf("bin %d grew from %d to %d", i, orig[i], f[i])
		}
	}
}

func TestShapePeaksAtMidpoint(t *testing.T) {
	f := Frame{200, 200, 200, 200, 200}
	f.Shape()
	mid := len(f) / 2
	for i := range f {
		if f[i] > f[mid] {
			t.Fatalf("bin %d (%d) exceeds midpoint bin (%d)", i, f[i], f[mid])
		}
	}
	if f[mid] == 0 {
		t.Fatal("expected nonzero midpoint for a loud flat frame")
	}
}

func TestShapeDegenerateLengths(t *testing.T) {
	var empty Frame
	empty.Shape()

	single := Frame{99}
	single.Shape()
	if single[0] != 0 {
		t.Fatalf("expected single-bin frame zeroed, got %d", single[0])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := Frame{1, 2, 3}
	c := f.Clone()
	c[0] = 99
	if f[0] != 1 {
		t.Fatalf("clone mutation leaked into original: %d", f[0])
	}
}
