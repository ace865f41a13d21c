package textbox

import (
	"strings"
	"testing"

	"github.com/easel-ui/easel"
)

// testMetrics gives every rune a 10px advance and a 16px line height, so
// expected pixel values stay readable.
var testMetrics = easel.FixedMetrics{AdvanceWidth: 10, Height: 16}

func wrapAt(t *testing.T, text string, width float32) ([]rune, []Line) {
	t.Helper()
	w := NewWrapper(testMetrics)
	w.SetWidth(width)
	content := []rune(text)
	return content, w.Wrap(content)
}

func lineStrings(content []rune, lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = LineText(content, line)
	}
	return out
}

func TestWrapGreedy(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{
			name:  "break at whitespace",
			text:  "hello world foo",
			width: 100,
			want:  []string{"hello ", "world foo"},
		},
		{
			name:  "fits on one line",
			text:  "hello",
			width: 100,
			want:  []string{"hello"},
		},
		{
			name:  "hard newline",
			text:  "ab\ncd",
			width: 100,
			want:  []string{"ab", "cd"},
		},
		{
			name:  "trailing newline yields empty line",
			text:  "ab\n",
			width: 100,
			want:  []string{"ab", ""},
		},
		{
			name:  "overlong word breaks mid-word",
			text:  "abcdefghij",
			width: 35,
			want:  []string{"abc", "def", "ghi", "j"},
		},
		{
			name:  "zero width degenerates to one cluster per line",
			text:  "abc",
			width: 0,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "consecutive newlines",
			text:  "a\n\nb",
			width: 100,
			want:  []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, lines := wrapAt(t, tt.text, tt.width)
			got := lineStrings(content, lines)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapEmptyContent(t *testing.T) {
	_, lines := wrapAt(t, "", 100)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Len() != 0 {
		t.Errorf("line length = %d, want 0", lines[0].Len())
	}
}

// Every rune of the content must belong to exactly one line or be a '\n'
// separator between two consecutive lines, so the original text can always
// be reassembled from the line table.
func TestWrapReconstruction(t *testing.T) {
	texts := []string{
		"hello world foo",
		"one two three four five six seven eight nine ten",
		"line one\nline two\nline three",
		"a\n\nb\n",
		"word",
		"   leading and   internal   spaces ",
		"überlange wörter müssen auch umbrechen",
	}

	for _, text := range texts {
		for _, width := range []float32{30, 60, 100, 500} {
			content, lines := wrapAt(t, text, width)
			var sb strings.Builder
			for i, line := range lines {
				if i > 0 && lines[i].Start == lines[i-1].End+1 {
					sb.WriteByte('\n')
				}
				sb.WriteString(LineText(content, line))
			}
			if got := sb.String(); got != text {
				t.Errorf("width %.0f: reconstructed %q, want %q", width, got, text)
			}
		}
	}
}

func TestWrapDeterministic(t *testing.T) {
	w := NewWrapper(testMetrics)
	w.SetWidth(100)
	content := []rune("the quick brown fox jumps over the lazy dog")

	first := w.Wrap(content)
	second := w.Wrap(content)
	if len(first) != len(second) {
		t.Fatalf("line counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestWrapLineWidths(t *testing.T) {
	_, lines := wrapAt(t, "hello world foo", 100)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// trailing space stays on the first line and counts toward its width
	if lines[0].Width != 60 {
		t.Errorf("line 0 width = %v, want 60", lines[0].Width)
	}
	if lines[1].Width != 90 {
		t.Errorf("line 1 width = %v, want 90", lines[1].Width)
	}
	if MaxLineWidth(lines) != 90 {
		t.Errorf("MaxLineWidth = %v, want 90", MaxLineWidth(lines))
	}
}

func TestWrapHorizontalMode(t *testing.T) {
	w := NewWrapper(testMetrics)
	w.SetWidth(50)
	w.SetHorizontalScroll(true)
	content := []rune("short\nthis line is far wider than fifty pixels\n")

	lines := w.Wrap(content)
	want := []string{"short", "this line is far wider than fifty pixels", ""}
	got := lineStrings(content, lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(got), got, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if w := MaxLineWidth(lines); w != 400 {
		t.Errorf("MaxLineWidth = %v, want 400", w)
	}
}

func TestWrapMonospacedMatchesFixed(t *testing.T) {
	content := []rune("monospaced fonts wrap the same either way")

	plain := NewWrapper(testMetrics)
	plain.SetWidth(120)

	mono := NewWrapper(testMetrics)
	mono.SetWidth(120)
	mono.SetMonospaced(true)

	a, b := plain.Wrap(content), mono.Wrap(content)
	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("line %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestIndexPositionRoundTrip(t *testing.T) {
	content, lines := wrapAt(t, "hello world foo", 100)
	// lines: "hello " [0,6), "world foo" [6,15)

	tests := []struct {
		index int
		want  Position
	}{
		{0, Position{0, 0}},
		{5, Position{0, 5}},
		{6, Position{1, 0}}, // soft break belongs to the next line
		{10, Position{1, 4}},
		{15, Position{1, 9}},
		{99, Position{1, 9}}, // clamps
		{-1, Position{0, 0}},
	}
	for _, tt := range tests {
		if got := IndexToPosition(lines, tt.index); got != tt.want {
			t.Errorf("IndexToPosition(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}

	for i := 0; i <= len(content); i++ {
		if got := PositionToIndex(lines, IndexToPosition(lines, i)); got != i {
			t.Errorf("round trip %d = %d", i, got)
		}
	}
}

func TestIndexPositionHardBreak(t *testing.T) {
	_, lines := wrapAt(t, "ab\ncd", 100)
	// the index of the '\n' itself stays at the end of the first line
	if got := IndexToPosition(lines, 2); got != (Position{0, 2}) {
		t.Errorf("IndexToPosition(2) = %+v, want {0 2}", got)
	}
	if got := IndexToPosition(lines, 3); got != (Position{1, 0}) {
		t.Errorf("IndexToPosition(3) = %+v, want {1 0}", got)
	}
	if got := PositionToIndex(lines, Position{0, 99}); got != 2 {
		t.Errorf("PositionToIndex clamped col = %d, want 2", got)
	}
	if got := PositionToIndex(lines, Position{99, 0}); got != 5 {
		t.Errorf("PositionToIndex clamped line = %d, want 5", got)
	}
}

func TestColumnX(t *testing.T) {
	w := NewWrapper(testMetrics)
	content := []rune("world foo")
	line := Line{Start: 0, End: 9}

	for col, want := range map[int]float32{0: 0, 3: 30, 9: 90} {
		if got := w.ColumnX(content, line, col); got != want {
			t.Errorf("ColumnX(%d) = %v, want %v", col, got, want)
		}
	}
}

func TestColumnAtX(t *testing.T) {
	w := NewWrapper(testMetrics)
	content := []rune("world foo")
	line := Line{Start: 0, End: 9}

	tests := []struct {
		x    float32
		want int
	}{
		{-5, 0},
		{0, 0},
		{4, 0},  // before the first midpoint
		{6, 1},  // past it
		{45, 5}, // exactly on a midpoint rounds up
		{500, 9},
	}
	for _, tt := range tests {
		if got := w.ColumnAtX(content, line, tt.x); got != tt.want {
			t.Errorf("ColumnAtX(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func BenchmarkWrap(b *testing.B) {
	w := NewWrapper(testMetrics)
	w.SetWidth(400)
	content := []rune(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Wrap(content)
	}
}
