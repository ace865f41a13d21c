package textbox

import "github.com/easel-ui/easel"

// Viewport derives the visible line window and horizontal offset from the
// scrollbar pair and the inner content area. It owns the scrollbars'
// ranges; their values move either here (scroll-to-caret) or through the
// widget's scrollbar API, which is the only path that shifts the rendered
// window without any caret movement.
type Viewport struct {
	vertical   *easel.Scrollbar
	horizontal *easel.Scrollbar

	lineHeight  float32
	innerWidth  float32
	innerHeight float32
}

// NewViewport binds a viewport to its two scrollbars.
func NewViewport(vertical, horizontal *easel.Scrollbar) *Viewport {
	return &Viewport{vertical: vertical, horizontal: horizontal}
}

// SetInnerSize updates the content area the window is computed against.
func (v *Viewport) SetInnerSize(width, height float32) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.innerWidth = width
	v.innerHeight = height
}

// InnerSize returns the content area extent.
func (v *Viewport) InnerSize() (width, height float32) {
	return v.innerWidth, v.innerHeight
}

// SetLineHeight updates the pixel height of one wrapped line.
func (v *Viewport) SetLineHeight(h float32) {
	v.lineHeight = h
}

// VisibleLineCount is a pure function of the line height and the inner
// height; it never drops below one line.
func (v *Viewport) VisibleLineCount() int {
	if v.lineHeight <= 0 {
		return 1
	}
	n := int(v.innerHeight / v.lineHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// TopLine derives the first visible line from the vertical scrollbar value,
// holding the invariant topLine + visibleLines <= totalLines whenever the
// content overflows, and topLine == 0 otherwise.
func (v *Viewport) TopLine(totalLines int) int {
	if v.lineHeight <= 0 {
		return 0
	}
	top := int(v.vertical.Value() / v.lineHeight)
	maxTop := totalLines - v.VisibleLineCount()
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}

// HorizontalOffset returns the pixel offset of the content against the left
// edge of the inner area.
func (v *Viewport) HorizontalOffset() float32 {
	return v.horizontal.Value()
}

// Update recomputes both scrollbar ranges after a re-wrap or resize.
func (v *Viewport) Update(totalLines int, maxLineWidth float32) {
	v.vertical.SetViewportSize(v.innerHeight)
	v.vertical.SetMaximum(float32(totalLines) * v.lineHeight)
	v.horizontal.SetViewportSize(v.innerWidth)
	v.horizontal.SetMaximum(maxLineWidth)
}

// ScrollToCaret moves both scrollbars the minimal distance that brings the
// caret slot inside the window.
func (v *Viewport) ScrollToCaret(caretLine int, caretX float32, totalLines int) {
	top := v.TopLine(totalLines)
	visible := v.VisibleLineCount()
	if caretLine < top {
		v.vertical.SetValue(float32(caretLine) * v.lineHeight)
	} else if caretLine >= top+visible {
		v.vertical.SetValue(float32(caretLine-visible+1) * v.lineHeight)
	}

	offset := v.horizontal.Value()
	if caretX < offset {
		v.horizontal.SetValue(caretX)
	} else if caretX > offset+v.innerWidth {
		v.horizontal.SetValue(caretX - v.innerWidth)
	}
}
