package easel

import "sync/atomic"

// WidgetID uniquely identifies a widget. IDs are stable for the lifetime of
// the process and never reused.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// Drawable is implemented by widgets that can record their visual output
// into a draw list. Rasterization happens in a rendering backend; widgets
// only produce ordered draw commands.
type Drawable interface {
	Draw(list *DrawList)
}

// Resizable is implemented by widgets whose size can be changed after
// construction. Implementations recompute any size-derived state (layout,
// wrapping, scroll ranges) synchronously inside SetSize.
type Resizable interface {
	SetSize(width, height float32)
	Size() (width, height float32)
}

// FocusableInput is implemented by widgets that take keyboard focus and
// consume input events. Handle methods return true when the event was
// consumed.
type FocusableInput interface {
	SetFocused(focused bool)
	Focused() bool
	HandleKey(event KeyEvent) bool
	HandleText(r rune) bool
	MousePressed(event MouseEvent) bool
	MouseMoved(event MouseEvent)
	MouseReleased(event MouseEvent)
}

// WidgetBase carries the state every widget variant shares: identity,
// position, size and visibility. Concrete widgets embed it and layer their
// own behavior on top.
type WidgetBase struct {
	id            WidgetID
	x, y          float32
	width, height float32
	visible       bool
	enabled       bool
}

// NewWidgetBase returns a base with a fresh ID, visible and enabled.
func NewWidgetBase() WidgetBase {
	return WidgetBase{
		id:      newWidgetID(),
		visible: true,
		enabled: true,
	}
}

// ID returns the widget's unique identifier.
func (w *WidgetBase) ID() WidgetID { return w.id }

// Position returns the widget's top-left corner relative to its parent.
func (w *WidgetBase) Position() (x, y float32) { return w.x, w.y }

// SetPosition moves the widget's top-left corner.
func (w *WidgetBase) SetPosition(x, y float32) {
	w.x = x
	w.y = y
}

// Size returns the widget's outer size including borders.
func (w *WidgetBase) Size() (width, height float32) { return w.width, w.height }

// Visible reports whether the widget should be drawn.
func (w *WidgetBase) Visible() bool { return w.visible }

// SetVisible shows or hides the widget.
func (w *WidgetBase) SetVisible(visible bool) { w.visible = visible }

// Enabled reports whether the widget receives input.
func (w *WidgetBase) Enabled() bool { return w.enabled }

// SetEnabled enables or disables input handling.
func (w *WidgetBase) SetEnabled(enabled bool) { w.enabled = enabled }

// SetSize updates the stored outer size. Concrete widgets typically shadow
// this so they can recompute size-derived state.
func (w *WidgetBase) SetSize(width, height float32) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.width = width
	w.height = height
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains checks if a point is within the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}
