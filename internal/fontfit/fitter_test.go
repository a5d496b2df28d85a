package fontfit

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestFitter(t *testing.T) *Fitter {
	t.Helper()
	f, err := New("goregular")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestLoadMissingFont(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "DejaVuSansMono.ttf"))
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("New() error = %v, want ErrFontNotFound", err)
	}
}

func TestLoadBuiltins(t *testing.T) {
	for _, family := range []string{"goregular", "GoMono", "gobold"} {
		if _, err := Load(family); err != nil {
			t.Errorf("Load(%q) error = %v", family, err)
		}
	}
}

func TestMeasureGrowsWithSize(t *testing.T) {
	f := newTestFitter(t)
	small := f.Measure("HELLO", 10)
	large := f.Measure("HELLO", 40)

	if small.Width <= 0 || small.Height <= 0 {
		t.Fatalf("Measure() = %+v, want positive size", small)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("Measure at 40 = %+v not larger than at 10 = %+v", large, small)
	}
	if small.MinY >= 0 {
		t.Errorf("capital letters should rise above the baseline, MinY = %d", small.MinY)
	}
}

func TestFitResultFitsOrIsFloor(t *testing.T) {
	f := newTestFitter(t)
	tests := []struct {
		name string
		text string
		w, h int
	}{
		{"wide box", "HELLO", 100, 20},
		{"square box", "HELLO", 60, 60},
		{"tall narrow box", "HELLO", 12, 80},
		{"long text", "The quick brown fox jumps over the lazy dog", 150, 30},
		{"tiny box", "Supercalifragilistic", 3, 3},
		{"single glyph", "i", 5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := f.FitBox(tt.text, tt.w, tt.h)
			if size < 1 {
				t.Fatalf("FitBox() = %d, want >= 1", size)
			}
			if size > min(tt.w, tt.h) && size != 1 {
				t.Errorf("FitBox() = %d exceeds start size %d", size, min(tt.w, tt.h))
			}
			m := f.Measure(tt.text, size)
			fits := m.Width <= tt.w && m.Height <= tt.h
			if !fits && size != 1 {
				t.Errorf("FitBox() = %d measures %dx%d, box %dx%d", size, m.Width, m.Height, tt.w, tt.h)
			}
		})
	}
}

func TestFitIsLargestInProbeSequence(t *testing.T) {
	f := newTestFitter(t)
	size := f.FitBox("HELLO", 100, 20)
	if size >= 20 {
		return
	}
	m := f.Measure("HELLO", size+1)
	if m.Width <= 100 && m.Height <= 20 {
		t.Errorf("size %d also fits, FitBox() = %d is not the largest", size+1, size)
	}
}

func TestFitMonotonic(t *testing.T) {
	f := newTestFitter(t)
	text := "Bienvenue"

	prev := 0
	for _, dim := range []struct{ w, h int }{
		{10, 4}, {20, 8}, {40, 12}, {60, 20}, {90, 30}, {120, 40}, {200, 80},
	} {
		size := f.FitBox(text, dim.w, dim.h)
		if size < prev {
			t.Errorf("box %dx%d: FitBox() = %d, smaller box gave %d", dim.w, dim.h, size, prev)
		}
		prev = size
	}
}

func TestFitDegenerateInputs(t *testing.T) {
	f := newTestFitter(t)
	if got := f.Fit("HELLO", 0, 10, 10); got != 1 {
		t.Errorf("Fit() with zero width = %d, want 1", got)
	}
	if got := f.Fit("HELLO", 100, 100, 0); got != 1 {
		t.Errorf("Fit() with start 0 = %d, want 1", got)
	}
}

func TestFaceCached(t *testing.T) {
	f := newTestFitter(t)
	if f.Face(12) != f.Face(12) {
		t.Error("Face() should reuse the face for the same size")
	}
	if len(f.faces) != 1 {
		t.Errorf("faces cached = %d, want 1", len(f.faces))
	}
}
