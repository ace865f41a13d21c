package easel

import (
	"strings"
	"testing"
)

const themeSource = `
[renderer.textbox]
background_color = "#101014"
text_color       = "#E0E0E0"
selection_color  = "#264F7880"
caret_width      = 2
padding          = [4, 6, 4, 6]

[renderer.scrollbar]
scrollbar_width = 16
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(themeSource))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	data, err := theme.Renderer("textbox")
	if err != nil {
		t.Fatalf("Renderer: %v", err)
	}
	if data.BackgroundColor != 0x101014FF {
		t.Errorf("BackgroundColor = %#x", data.BackgroundColor)
	}
	if data.SelectionColor != 0x264F7880 {
		t.Errorf("SelectionColor = %#x", data.SelectionColor)
	}
	if data.CaretWidth != 2 {
		t.Errorf("CaretWidth = %v", data.CaretWidth)
	}
	if data.Padding != [4]float32{4, 6, 4, 6} {
		t.Errorf("Padding = %v", data.Padding)
	}

	// unset fields keep the defaults
	defaults := DefaultRendererData()
	if data.Borders != defaults.Borders {
		t.Errorf("Borders = %v, want defaults %v", data.Borders, defaults.Borders)
	}
	if data.CaretColor != defaults.CaretColor {
		t.Errorf("CaretColor = %#x, want default %#x", data.CaretColor, defaults.CaretColor)
	}

	scrollbar, err := theme.Renderer("scrollbar")
	if err != nil {
		t.Fatalf("Renderer(scrollbar): %v", err)
	}
	if scrollbar.ScrollbarWidth != 16 {
		t.Errorf("ScrollbarWidth = %v", scrollbar.ScrollbarWidth)
	}
}

func TestThemeUnknownKind(t *testing.T) {
	theme, err := ParseTheme([]byte(themeSource))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	data, err := theme.Renderer("listview")
	if err != nil {
		t.Fatalf("Renderer: %v", err)
	}
	if data != DefaultRendererData() {
		t.Error("unknown kind should resolve to the defaults")
	}
}

func TestThemeBadValues(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errHas string
	}{
		{
			name:   "bad color",
			source: "[renderer.textbox]\ntext_color = \"red\"",
			errHas: "missing '#' prefix",
		},
		{
			name:   "short box",
			source: "[renderer.textbox]\npadding = [1, 2]",
			errHas: "needs 4 values",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ParseTheme([]byte(tt.source))
			if err != nil {
				t.Fatalf("ParseTheme: %v", err)
			}
			if _, err := theme.Renderer("textbox"); err == nil || !strings.Contains(err.Error(), tt.errHas) {
				t.Errorf("err = %v, want containing %q", err, tt.errHas)
			}
		})
	}
}

func TestParseThemeInvalidTOML(t *testing.T) {
	if _, err := ParseTheme([]byte("[renderer.textbox\n")); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#FFFFFF", 0xFFFFFFFF, false},
		{"#000000", 0x000000FF, false},
		{"#006EFF", 0x006EFFFF, false},
		{"#12345678", 0x12345678, false},
		{"FFFFFF", 0, true},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) accepted", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
