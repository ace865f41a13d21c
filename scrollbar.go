package easel

// ScrollbarPolicy controls when a scrollbar is displayed.
type ScrollbarPolicy uint8

const (
	// ScrollbarAutomatic shows the scrollbar only when the content exceeds
	// the viewport along its axis.
	ScrollbarAutomatic ScrollbarPolicy = iota

	// ScrollbarAlways shows the scrollbar unconditionally.
	ScrollbarAlways

	// ScrollbarNever hides the scrollbar; overflowing content is clipped.
	ScrollbarNever
)

func (p ScrollbarPolicy) String() string {
	switch p {
	case ScrollbarAutomatic:
		return "automatic"
	case ScrollbarAlways:
		return "always"
	case ScrollbarNever:
		return "never"
	default:
		return "unknown"
	}
}

// Scrollbar models one scroll axis in content pixels: a maximum (total
// content extent), a viewport size (visible extent) and a value (offset of
// the visible window into the content). The value is always clamped to
// [0, maximum-viewportSize].
type Scrollbar struct {
	WidgetBase

	value        float32
	maximum      float32
	viewportSize float32
	policy       ScrollbarPolicy

	onValueChanged []func(value float32)
}

// NewScrollbar creates a scrollbar with the Automatic policy.
func NewScrollbar() *Scrollbar {
	return &Scrollbar{WidgetBase: NewWidgetBase()}
}

// Value returns the current scroll offset.
func (s *Scrollbar) Value() float32 { return s.value }

// SetValue changes the scroll offset, clamped into the valid range.
// Registered callbacks fire only when the effective value changed.
func (s *Scrollbar) SetValue(value float32) {
	if value > s.MaxValue() {
		value = s.MaxValue()
	}
	if value < 0 {
		value = 0
	}
	if value == s.value {
		return
	}
	s.value = value
	for _, fn := range s.onValueChanged {
		fn(value)
	}
}

// Maximum returns the total content extent.
func (s *Scrollbar) Maximum() float32 { return s.maximum }

// SetMaximum changes the content extent, re-clamping the value.
func (s *Scrollbar) SetMaximum(maximum float32) {
	if maximum < 0 {
		maximum = 0
	}
	s.maximum = maximum
	s.SetValue(s.value)
}

// ViewportSize returns the visible extent.
func (s *Scrollbar) ViewportSize() float32 { return s.viewportSize }

// SetViewportSize changes the visible extent, re-clamping the value.
func (s *Scrollbar) SetViewportSize(size float32) {
	if size < 0 {
		size = 0
	}
	s.viewportSize = size
	s.SetValue(s.value)
}

// MaxValue returns the largest valid scroll offset.
func (s *Scrollbar) MaxValue() float32 {
	maxValue := s.maximum - s.viewportSize
	if maxValue < 0 {
		return 0
	}
	return maxValue
}

// Policy returns the display policy.
func (s *Scrollbar) Policy() ScrollbarPolicy { return s.policy }

// SetPolicy changes the display policy.
func (s *Scrollbar) SetPolicy(policy ScrollbarPolicy) { s.policy = policy }

// Shown evaluates the policy against the current content and viewport
// extents.
func (s *Scrollbar) Shown() bool {
	switch s.policy {
	case ScrollbarAlways:
		return true
	case ScrollbarNever:
		return false
	default:
		return s.maximum > s.viewportSize
	}
}

// OnValueChanged registers a callback invoked after every effective value
// change.
func (s *Scrollbar) OnValueChanged(fn func(value float32)) {
	s.onValueChanged = append(s.onValueChanged, fn)
}
