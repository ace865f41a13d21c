package textbox

import "unicode"

// Position locates a caret slot on the wrapped line grid. Col is a rune
// offset within that wrapped line, not within the full text. Positions
// compare in (line, column) lexicographic order.
type Position struct {
	Line, Col int
}

// Before reports whether p precedes q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Selection tracks the caret and the drag anchor over the wrapped grid. The
// anchor is fixed where a selection started; the caret is the live end and
// may precede the anchor (backward selection). Anchor == caret means no
// selection.
type Selection struct {
	Anchor Position
	Caret  Position
}

// Active reports whether any text is selected.
func (s *Selection) Active() bool {
	return s.Anchor != s.Caret
}

// Clear collapses the selection onto the caret.
func (s *Selection) Clear() {
	s.Anchor = s.Caret
}

// CollapseTo places both anchor and caret at the given slot.
func (s *Selection) CollapseTo(pos Position) {
	s.Anchor = pos
	s.Caret = pos
}

// MoveCaret moves the live end. Without extend the selection collapses onto
// the new caret; with extend the anchor stays fixed, permitting backward
// selections.
func (s *Selection) MoveCaret(pos Position, extend bool) {
	s.Caret = pos
	if !extend {
		s.Anchor = pos
	}
}

// Range returns the selection endpoints in document order.
func (s *Selection) Range() (start, end Position) {
	if s.Caret.Before(s.Anchor) {
		return s.Caret, s.Anchor
	}
	return s.Anchor, s.Caret
}

// Reconcile re-resolves the selection after a re-wrap: both endpoints are
// converted to absolute rune indexes against the previous line table, then
// resolved against the new one, clamped to [0, textLen]. The character
// offsets into the full text survive even though (line, column) coordinates
// change.
func (s *Selection) Reconcile(oldLines, newLines []Line, textLen int) {
	anchor := clampIndex(PositionToIndex(oldLines, s.Anchor), textLen)
	caret := clampIndex(PositionToIndex(oldLines, s.Caret), textLen)
	s.Anchor = IndexToPosition(newLines, anchor)
	s.Caret = IndexToPosition(newLines, caret)
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// isWordRune splits text into the two caret-navigation classes:
// alphanumeric runs versus everything else.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordRangeAt returns the absolute rune range of the maximal same-class run
// containing index, for double-click selection: alphanumeric characters
// form one class, whitespace and punctuation the other. Runs never cross
// newlines; an index on a newline yields an empty range.
func WordRangeAt(content []rune, index int) (start, end int) {
	if len(content) == 0 {
		return 0, 0
	}
	if index >= len(content) {
		index = len(content) - 1
	}
	if index < 0 {
		index = 0
	}
	if content[index] == '\n' {
		return index, index
	}
	word := isWordRune(content[index])
	start, end = index, index+1
	for start > 0 && content[start-1] != '\n' && isWordRune(content[start-1]) == word {
		start--
	}
	for end < len(content) && content[end] != '\n' && isWordRune(content[end]) == word {
		end++
	}
	return start, end
}

// LineRangeAt returns the absolute rune range of the hard line (between
// newline separators) containing index.
func LineRangeAt(content []rune, index int) (start, end int) {
	start = clampIndex(index, len(content))
	for start > 0 && content[start-1] != '\n' {
		start--
	}
	end = clampIndex(index, len(content))
	for end < len(content) && content[end] != '\n' {
		end++
	}
	return start, end
}

// PrevWordIndex returns the index of the beginning of the word before
// index: any non-alphanumeric runes are skipped first, then the
// alphanumeric run.
func PrevWordIndex(content []rune, index int) int {
	index = clampIndex(index, len(content))
	for index > 0 && !isWordRune(content[index-1]) {
		index--
	}
	for index > 0 && isWordRune(content[index-1]) {
		index--
	}
	return index
}

// NextWordIndex returns the index just past the end of the word at or after
// index.
func NextWordIndex(content []rune, index int) int {
	index = clampIndex(index, len(content))
	for index < len(content) && !isWordRune(content[index]) {
		index++
	}
	for index < len(content) && isWordRune(content[index]) {
		index++
	}
	return index
}
