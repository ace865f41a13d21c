package textbox

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/easel-ui/easel"
)

// Line is one wrapped line: the half-open rune range [Start, End) of the
// buffer content plus its measured pixel width. A terminating '\n' is not
// part of the range; soft breaks consume nothing, so every rune of the
// buffer belongs to exactly one line or is a '\n' separator between two.
type Line struct {
	Start, End int
	Width      float32
}

// Len returns the number of runes on the line.
func (l Line) Len() int {
	return l.End - l.Start
}

// Wrapper turns the buffer content into the ordered wrapped line table. It
// is a pure function of its configuration: the same content, width and
// metrics always produce the same table.
type Wrapper struct {
	metrics    easel.FontMetrics
	width      float32
	horizontal bool // wrap only at '\n', report widest line for scrolling
	monospaced bool

	// fixed advance sampled once from the oracle while the monospaced
	// optimization is active; 0 means not yet sampled
	advance float32
}

// NewWrapper creates a wrapper over the given width oracle. A nil oracle
// degrades to zero-width advances.
func NewWrapper(metrics easel.FontMetrics) *Wrapper {
	return &Wrapper{metrics: easel.SafeMetrics(metrics)}
}

// SetMetrics replaces the width oracle.
func (w *Wrapper) SetMetrics(metrics easel.FontMetrics) {
	w.metrics = easel.SafeMetrics(metrics)
	w.advance = 0
}

// SetWidth changes the available wrap width in pixels.
func (w *Wrapper) SetWidth(width float32) {
	w.width = width
}

// Width returns the available wrap width.
func (w *Wrapper) Width() float32 {
	return w.width
}

// SetHorizontalScroll switches between word-wrap mode and
// horizontal-scrolling mode, where lines break only at explicit newlines.
func (w *Wrapper) SetHorizontalScroll(enabled bool) {
	w.horizontal = enabled
}

// HorizontalScroll reports whether horizontal-scrolling mode is active.
func (w *Wrapper) HorizontalScroll() bool {
	return w.horizontal
}

// SetMonospaced toggles the monospaced-font optimization: line widths are
// computed as rune count times a fixed advance sampled once, instead of
// querying the oracle per character. The caller asserts the font really is
// monospaced; this is never verified.
func (w *Wrapper) SetMonospaced(enabled bool) {
	w.monospaced = enabled
	w.advance = 0
}

// Monospaced reports whether the optimization is active.
func (w *Wrapper) Monospaced() bool {
	return w.monospaced
}

// LineHeight returns the oracle's line height.
func (w *Wrapper) LineHeight() float32 {
	return w.metrics.LineHeight()
}

// Wrap computes the wrapped line table for the given content. Empty content
// yields exactly one empty line.
func (w *Wrapper) Wrap(content []rune) []Line {
	if len(content) == 0 {
		return []Line{{}}
	}
	if w.horizontal {
		return w.wrapNewlines(content)
	}
	return w.wrapGreedy(content)
}

// wrapNewlines breaks only at explicit newline characters.
func (w *Wrapper) wrapNewlines(content []rune) []Line {
	lines := make([]Line, 0, 4)
	start := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			lines = append(lines, Line{Start: start, End: i, Width: w.measure(content, start, i)})
			start = i + 1
		}
	}
	return lines
}

// wrapGreedy accumulates grapheme clusters until the next one would exceed
// the wrap width, then breaks at the last whitespace boundary on the line,
// or mid-word when a single word is wider than the line. Newlines always
// break. A non-positive width degenerates to one cluster per line.
func (w *Wrapper) wrapGreedy(content []rune) []Line {
	lines := make([]Line, 0, 8)
	text := string(content)

	lineStart := 0
	lineWidth := float32(0)
	breakAt := -1 // rune index just after the last whitespace run on the line
	breakWidth := float32(0)

	pos := 0
	state := -1
	for rest := text; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		n := utf8.RuneCountInString(cluster)
		first := content[pos]

		if first == '\n' {
			lines = append(lines, Line{Start: lineStart, End: pos, Width: lineWidth})
			pos += n
			lineStart = pos
			lineWidth = 0
			breakAt, breakWidth = -1, 0
			continue
		}

		var clusterWidth float32
		for _, r := range cluster {
			clusterWidth += w.runeAdvance(r)
		}

		overflow := pos > lineStart && (w.width <= 0 || lineWidth+clusterWidth > w.width)
		if overflow {
			end, width := pos, lineWidth
			if breakAt > lineStart {
				end, width = breakAt, breakWidth
			}
			lines = append(lines, Line{Start: lineStart, End: end, Width: width})
			lineStart = end
			lineWidth -= width
			breakAt, breakWidth = -1, 0
		}

		if isSpaceRune(first) {
			breakAt = pos + n
			breakWidth = lineWidth + clusterWidth
		}
		lineWidth += clusterWidth
		pos += n
	}
	lines = append(lines, Line{Start: lineStart, End: len(content), Width: lineWidth})
	return lines
}

func (w *Wrapper) measure(content []rune, start, end int) float32 {
	var width float32
	for i := start; i < end; i++ {
		width += w.runeAdvance(content[i])
	}
	return width
}

func (w *Wrapper) runeAdvance(r rune) float32 {
	if w.monospaced {
		if w.advance == 0 {
			w.advance = w.metrics.Advance('M')
		}
		return w.advance
	}
	return w.metrics.Advance(r)
}

// ColumnX returns the pixel x offset of a caret column within a line.
func (w *Wrapper) ColumnX(content []rune, line Line, col int) float32 {
	var x float32
	for i := 0; i < col && line.Start+i < line.End; i++ {
		x += w.runeAdvance(content[line.Start+i])
	}
	return x
}

// ColumnAtX returns the caret column within a line for a pixel x offset.
// Each grapheme cluster's midpoint decides which caret slot is nearer, so a
// hit never lands inside a cluster.
func (w *Wrapper) ColumnAtX(content []rune, line Line, x float32) int {
	text := string(content[line.Start:line.End])
	col := 0
	var cx float32
	state := -1
	for rest := text; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		var advance float32
		for _, r := range cluster {
			advance += w.runeAdvance(r)
		}
		if x < cx+advance/2 {
			return col
		}
		cx += advance
		col += utf8.RuneCountInString(cluster)
	}
	return col
}

// MaxLineWidth returns the width of the widest line in the table.
func MaxLineWidth(lines []Line) float32 {
	var widest float32
	for _, line := range lines {
		if line.Width > widest {
			widest = line.Width
		}
	}
	return widest
}

// LineText extracts a line's text from the content.
func LineText(content []rune, line Line) string {
	if line.Start < 0 || line.End > len(content) || line.Start > line.End {
		return ""
	}
	return string(content[line.Start:line.End])
}

// IndexToPosition resolves an absolute rune index to a (line, column) slot
// on the wrapped grid. An index landing exactly on a soft break belongs to
// the start of the following line; on a hard '\n' it stays at the end of the
// line before the separator. Out-of-range indexes clamp.
func IndexToPosition(lines []Line, index int) Position {
	if len(lines) == 0 {
		return Position{}
	}
	if index < 0 {
		index = 0
	}
	for i, line := range lines {
		if index < line.Start {
			// index points at a separator before this line
			return Position{Line: i, Col: 0}
		}
		if index < line.End {
			return Position{Line: i, Col: index - line.Start}
		}
		if index == line.End {
			if i == len(lines)-1 || lines[i+1].Start > line.End {
				return Position{Line: i, Col: index - line.Start}
			}
			// soft break: the slot belongs to the next line's start
		}
	}
	last := len(lines) - 1
	return Position{Line: last, Col: lines[last].Len()}
}

// PositionToIndex converts a (line, column) slot back to an absolute rune
// index, clamping both coordinates into range.
func PositionToIndex(lines []Line, pos Position) int {
	if len(lines) == 0 {
		return 0
	}
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(lines) {
		return lines[len(lines)-1].End
	}
	line := lines[pos.Line]
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if col > line.Len() {
		col = line.Len()
	}
	return line.Start + col
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}
