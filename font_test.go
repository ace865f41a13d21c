package easel

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFixedMetrics(t *testing.T) {
	m := FixedMetrics{AdvanceWidth: 10, Height: 16}
	if m.Advance('a') != 10 || m.Advance('世') != 10 {
		t.Error("fixed metrics must ignore the rune")
	}
	if m.LineHeight() != 16 {
		t.Errorf("LineHeight = %v", m.LineHeight())
	}

	if (FixedMetrics{AdvanceWidth: 10}).LineHeight() <= 0 {
		t.Error("zero height must fall back to a positive default")
	}
}

func TestCellMetrics(t *testing.T) {
	m := CellMetrics{CellWidth: 8, Height: 16}
	if got := m.Advance('a'); got != 8 {
		t.Errorf("narrow rune advance = %v, want 8", got)
	}
	if got := m.Advance('世'); got != 16 {
		t.Errorf("wide rune advance = %v, want 16", got)
	}
	if got := m.Advance('́'); got != 0 {
		t.Errorf("combining mark advance = %v, want 0", got)
	}
}

func TestFaceMetrics(t *testing.T) {
	m := NewFaceMetrics(basicfont.Face7x13)
	if got := m.Advance('A'); got != 7 {
		t.Errorf("Advance('A') = %v, want 7", got)
	}
	if m.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want positive", m.LineHeight())
	}
}

func TestFaceMetricsNilFace(t *testing.T) {
	m := NewFaceMetrics(nil)
	if m.Advance('A') != 0 {
		t.Error("nil face should measure zero")
	}
	if m.LineHeight() <= 0 {
		t.Error("nil face still needs a positive line height")
	}
}

func TestSafeMetrics(t *testing.T) {
	m := SafeMetrics(nil)
	if m.Advance('x') != 0 {
		t.Error("nil metrics should degrade to zero advances")
	}
	if m.LineHeight() <= 0 {
		t.Error("nil metrics still need a positive line height")
	}

	fixed := FixedMetrics{AdvanceWidth: 5}
	if SafeMetrics(fixed) != FontMetrics(fixed) {
		t.Error("non-nil metrics must pass through")
	}
}
