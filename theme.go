package easel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme is a set of per-widget renderer property tables loaded from a TOML
// document. Keys of the renderer table are widget kinds ("textbox",
// "scrollbar", ...).
//
// Example:
//
//	[renderer.textbox]
//	background_color = "#FFFFFF"
//	selection_color  = "#006EFF"
//	padding          = [2, 2, 2, 2]
//	borders          = [1, 1, 1, 1]
type Theme struct {
	Renderers map[string]RendererConfig `toml:"renderer"`
}

// RendererConfig is the TOML shape of one renderer property table. Zero
// values fall back to the toolkit defaults.
type RendererConfig struct {
	BackgroundColor   string `toml:"background_color"`
	BorderColor       string `toml:"border_color"`
	TextColor         string `toml:"text_color"`
	DefaultTextColor  string `toml:"default_text_color"`
	SelectedTextColor string `toml:"selected_text_color"`
	SelectionColor    string `toml:"selection_color"`
	CaretColor        string `toml:"caret_color"`

	CaretWidth     float32 `toml:"caret_width"`
	ScrollbarWidth float32 `toml:"scrollbar_width"`

	Borders []float32 `toml:"borders"`
	Padding []float32 `toml:"padding"`
}

// ParseTheme decodes a theme from TOML source.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	if err := toml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return &theme, nil
}

// LoadTheme reads and decodes a theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return ParseTheme(data)
}

// Renderer resolves the property table for a widget kind into RendererData,
// filling unset fields from the defaults. An unknown kind yields the
// defaults unchanged.
func (t *Theme) Renderer(kind string) (RendererData, error) {
	data := DefaultRendererData()
	cfg, ok := t.Renderers[kind]
	if !ok {
		return data, nil
	}

	colors := []struct {
		value string
		dst   *uint32
	}{
		{cfg.BackgroundColor, &data.BackgroundColor},
		{cfg.BorderColor, &data.BorderColor},
		{cfg.TextColor, &data.TextColor},
		{cfg.DefaultTextColor, &data.DefaultTextColor},
		{cfg.SelectedTextColor, &data.SelectedTextColor},
		{cfg.SelectionColor, &data.SelectionColor},
		{cfg.CaretColor, &data.CaretColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value)
		if err != nil {
			return data, fmt.Errorf("renderer %q: %w", kind, err)
		}
		*c.dst = parsed
	}

	if cfg.CaretWidth > 0 {
		data.CaretWidth = cfg.CaretWidth
	}
	if cfg.ScrollbarWidth > 0 {
		data.ScrollbarWidth = cfg.ScrollbarWidth
	}
	if err := copyBox(cfg.Borders, &data.Borders, kind, "borders"); err != nil {
		return data, err
	}
	if err := copyBox(cfg.Padding, &data.Padding, kind, "padding"); err != nil {
		return data, err
	}
	return data, nil
}

func copyBox(src []float32, dst *[4]float32, kind, field string) error {
	if src == nil {
		return nil
	}
	if len(src) != 4 {
		return fmt.Errorf("renderer %q: %s needs 4 values, got %d", kind, field, len(src))
	}
	copy(dst[:], src)
	return nil
}

// DefaultRendererData returns the built-in renderer properties used when no
// theme entry overrides them.
func DefaultRendererData() RendererData {
	return RendererData{
		Borders:           [4]float32{1, 1, 1, 1},
		Padding:           [4]float32{2, 2, 2, 2},
		CaretWidth:        1,
		ScrollbarWidth:    12,
		BackgroundColor:   0xFFFFFFFF,
		BorderColor:       0x3C3C3CFF,
		TextColor:         0x3C3C3CFF,
		DefaultTextColor:  0xA0A0A0FF,
		SelectedTextColor: 0xFFFFFFFF,
		SelectionColor:    0x006EFFFF,
		CaretColor:        0x3C3C3CFF,
	}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed RGBA value.
// A six-digit color gets an opaque alpha.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing '#' prefix", s)
	}
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return uint32(v)<<8 | 0xFF, nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return uint32(v), nil
	default:
		return 0, fmt.Errorf("color %q: need 6 or 8 hex digits", s)
	}
}
