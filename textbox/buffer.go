package textbox

import "golang.org/x/text/unicode/norm"

// Buffer owns the text of a TextBox as a flat rune sequence, together with
// the maximum-length constraint. All mutations clamp their arguments into
// valid range instead of failing; incoming text is NFC-normalized so that a
// caret index always addresses a composed code point.
type Buffer struct {
	content  []rune
	maxChars int // 0 = unlimited
}

// NewBuffer returns an empty buffer without a length limit.
func NewBuffer() *Buffer {
	return &Buffer{content: make([]rune, 0, 64)}
}

// Text returns the full content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Content returns the backing rune slice for layout. Callers must not
// modify it.
func (b *Buffer) Content() []rune {
	return b.content
}

// Len returns the number of runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Rune returns the rune at index i, or 0 when out of range.
func (b *Buffer) Rune(i int) rune {
	if i < 0 || i >= len(b.content) {
		return 0
	}
	return b.content[i]
}

// Slice returns the text between two rune indexes, clamped and reordered as
// needed.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.orderedRange(start, end)
	return string(b.content[start:end])
}

// SetText replaces the whole content, truncating to the character limit.
func (b *Buffer) SetText(text string) {
	runes := []rune(norm.NFC.String(text))
	if b.maxChars > 0 && len(runes) > b.maxChars {
		runes = runes[:b.maxChars]
	}
	b.content = runes
}

// InsertAt inserts text before rune index i (clamped into range) and
// returns how many runes were actually inserted after applying the
// character limit. Insertion truncates silently rather than failing.
func (b *Buffer) InsertAt(i int, text string) int {
	runes := []rune(norm.NFC.String(text))
	if b.maxChars > 0 {
		available := b.maxChars - len(b.content)
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}
	if len(runes) == 0 {
		return 0
	}
	i = b.clampIndex(i)

	content := make([]rune, 0, len(b.content)+len(runes))
	content = append(content, b.content[:i]...)
	content = append(content, runes...)
	content = append(content, b.content[i:]...)
	b.content = content
	return len(runes)
}

// Append inserts text at the end, subject to the character limit, and
// returns how many runes were inserted.
func (b *Buffer) Append(text string) int {
	return b.InsertAt(len(b.content), text)
}

// DeleteRange removes the runes between two indexes. The range may be given
// backwards; both ends are clamped.
func (b *Buffer) DeleteRange(start, end int) {
	start, end = b.orderedRange(start, end)
	if start == end {
		return
	}
	b.content = append(b.content[:start], b.content[end:]...)
}

// SetMaxChars changes the character limit (0 = unlimited), truncating the
// current content when it exceeds the new limit. Reports whether content
// was dropped.
func (b *Buffer) SetMaxChars(n int) bool {
	if n < 0 {
		n = 0
	}
	b.maxChars = n
	if n > 0 && len(b.content) > n {
		b.content = b.content[:n]
		return true
	}
	return false
}

// MaxChars returns the character limit, 0 meaning unlimited.
func (b *Buffer) MaxChars() int {
	return b.maxChars
}

func (b *Buffer) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.content) {
		return len(b.content)
	}
	return i
}

func (b *Buffer) orderedRange(start, end int) (int, int) {
	start = b.clampIndex(start)
	end = b.clampIndex(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}
