package textbox

import "testing"

func TestBufferSetText(t *testing.T) {
	b := NewBuffer()
	b.SetText("hello")
	if b.Text() != "hello" || b.Len() != 5 {
		t.Errorf("got %q len %d", b.Text(), b.Len())
	}

	b.SetText("")
	if b.Len() != 0 {
		t.Errorf("len after clearing = %d", b.Len())
	}
}

// Combining sequences are normalized to NFC so a caret index always
// addresses one composed code point.
func TestBufferNormalizes(t *testing.T) {
	b := NewBuffer()
	b.SetText("é") // e + combining acute
	if b.Text() != "é" {
		t.Errorf("got %q, want %q", b.Text(), "é")
	}
	if b.Len() != 1 {
		t.Errorf("len = %d, want 1", b.Len())
	}
}

func TestBufferInsertAt(t *testing.T) {
	b := NewBuffer()
	b.SetText("held")
	if n := b.InsertAt(3, "lo worl"); n != 7 {
		t.Errorf("inserted %d runes, want 7", n)
	}
	if b.Text() != "hello world" {
		t.Errorf("got %q", b.Text())
	}

	// out-of-range indexes clamp
	b.SetText("ab")
	b.InsertAt(-5, "x")
	b.InsertAt(99, "y")
	if b.Text() != "xaby" {
		t.Errorf("got %q, want %q", b.Text(), "xaby")
	}
}

func TestBufferDeleteRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"forward", 2, 5, "abfgh"},
		{"backward", 5, 2, "abfgh"},
		{"empty", 3, 3, "abcdefgh"},
		{"clamped", -4, 99, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.SetText("abcdefgh")
			b.DeleteRange(tt.start, tt.end)
			if b.Text() != tt.want {
				t.Errorf("got %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestBufferMaxChars(t *testing.T) {
	b := NewBuffer()
	b.SetMaxChars(5)

	b.SetText("abcdefgh")
	if b.Text() != "abcde" {
		t.Errorf("SetText over limit: got %q", b.Text())
	}

	if n := b.InsertAt(5, "x"); n != 0 {
		t.Errorf("insert at the limit reported %d runes", n)
	}
	b.DeleteRange(4, 5)
	if n := b.InsertAt(4, "xyz"); n != 1 {
		t.Errorf("partial insert reported %d runes, want 1", n)
	}
	if b.Text() != "abcdx" {
		t.Errorf("got %q, want %q", b.Text(), "abcdx")
	}
}

func TestBufferSetMaxCharsTruncates(t *testing.T) {
	b := NewBuffer()
	b.SetText("abcdefgh")

	if b.SetMaxChars(3) != true {
		t.Error("truncating SetMaxChars should report dropped content")
	}
	if b.Text() != "abc" {
		t.Errorf("got %q", b.Text())
	}
	if b.SetMaxChars(10) {
		t.Error("raising the limit must not report dropped content")
	}
	if b.SetMaxChars(0) {
		t.Error("removing the limit must not report dropped content")
	}
}

func TestBufferSlice(t *testing.T) {
	b := NewBuffer()
	b.SetText("hello world")

	if got := b.Slice(6, 11); got != "world" {
		t.Errorf("Slice(6, 11) = %q", got)
	}
	if got := b.Slice(11, 6); got != "world" {
		t.Errorf("backward Slice = %q", got)
	}
	if got := b.Slice(-3, 99); got != "hello world" {
		t.Errorf("clamped Slice = %q", got)
	}
}

func TestBufferRune(t *testing.T) {
	b := NewBuffer()
	b.SetText("ab")
	if b.Rune(1) != 'b' {
		t.Errorf("Rune(1) = %q", b.Rune(1))
	}
	if b.Rune(-1) != 0 || b.Rune(2) != 0 {
		t.Error("out-of-range Rune should be 0")
	}
}
