package easel

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
)

// FontMetrics is the width-measurement oracle consumed by text layout.
// Advance returns the horizontal pixel advance of a single code point;
// LineHeight returns the vertical pixel distance between line baselines.
type FontMetrics interface {
	Advance(r rune) float32
	LineHeight() float32
}

// defaultLineHeight is used when no usable metrics are available, so that
// layout keeps producing a finite line grid.
const defaultLineHeight = 16

// SafeMetrics shields layout code from a missing oracle: a nil FontMetrics
// degrades to zero-width advances instead of failing.
func SafeMetrics(m FontMetrics) FontMetrics {
	if m == nil {
		return zeroMetrics{}
	}
	return m
}

type zeroMetrics struct{}

func (zeroMetrics) Advance(rune) float32 { return 0 }
func (zeroMetrics) LineHeight() float32  { return defaultLineHeight }

// FixedMetrics is a uniform-advance oracle. It doubles as the natural
// metrics for true monospaced fonts and as a deterministic test fixture.
type FixedMetrics struct {
	AdvanceWidth float32
	Height       float32
}

func (m FixedMetrics) Advance(rune) float32 { return m.AdvanceWidth }

func (m FixedMetrics) LineHeight() float32 {
	if m.Height <= 0 {
		return defaultLineHeight
	}
	return m.Height
}

// CellMetrics measures text in terminal cells: narrow runes occupy one cell,
// East Asian wide runes two. CellWidth is the pixel width of one cell.
type CellMetrics struct {
	CellWidth float32
	Height    float32
}

func (m CellMetrics) Advance(r rune) float32 {
	return float32(runewidth.RuneWidth(r)) * m.CellWidth
}

func (m CellMetrics) LineHeight() float32 {
	if m.Height <= 0 {
		return defaultLineHeight
	}
	return m.Height
}

// FaceMetrics adapts a font.Face into a FontMetrics oracle. Glyphs missing
// from the face measure as zero width rather than failing.
type FaceMetrics struct {
	face   font.Face
	height float32
}

// NewFaceMetrics wraps a face, caching its line height.
func NewFaceMetrics(face font.Face) *FaceMetrics {
	m := &FaceMetrics{face: face}
	if face != nil {
		m.height = fixedToFloat(face.Metrics().Height)
	}
	if m.height <= 0 {
		m.height = defaultLineHeight
	}
	return m
}

func (m *FaceMetrics) Advance(r rune) float32 {
	if m.face == nil {
		return 0
	}
	advance, ok := m.face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat(advance)
}

func (m *FaceMetrics) LineHeight() float32 { return m.height }

// fixedToFloat converts a 26.6 fixed-point value to pixels.
func fixedToFloat[T ~int32](v T) float32 {
	return float32(v) / 64
}
