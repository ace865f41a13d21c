// Package textbox: see doc.go.
package textbox

import (
	"time"

	"github.com/easel-ui/easel"
)

// Signal names emitted by TextBox.
const (
	// SignalTextChanged fires after any operation that changed the text,
	// with the new text as payload.
	SignalTextChanged easel.SignalName = "TextChanged"
	// SignalSelectionChanged fires after any operation that changed the
	// caret or selection endpoints, measured as absolute rune indexes.
	SignalSelectionChanged easel.SignalName = "SelectionChanged"
)

const caretBlinkInterval = 530 * time.Millisecond

// TextBox is a multi-line text editor widget. It composes a rune buffer, a
// line wrapper, a selection, a scrollbar-backed viewport and an input state
// machine; every mutation flows through one pipeline: edit, re-wrap,
// re-resolve the selection, update the viewport, emit signals.
type TextBox struct {
	easel.WidgetBase

	buffer  *Buffer
	wrapper *Wrapper

	lines        []Line
	maxLineWidth float32

	selection Selection
	viewport  *Viewport

	vertical   *easel.Scrollbar
	horizontal *easel.Scrollbar

	renderer  *easel.SharedRenderer
	signals   *easel.SignalHub
	clipboard easel.Clipboard

	defaultText string
	readOnly    bool

	focused      bool
	caretVisible bool
	lastBlink    time.Time

	// mouse state machine
	state      inputState
	clickCount int
	lastClick  time.Time
	lastClickX float32
	lastClickY float32

	// injectable clock for double-click and blink timing
	now func() time.Time
}

var (
	_ easel.Drawable       = (*TextBox)(nil)
	_ easel.Resizable      = (*TextBox)(nil)
	_ easel.FocusableInput = (*TextBox)(nil)
)

// New creates an empty text box using the given font metrics. Word wrap is
// on: the horizontal scrollbar policy defaults to Never.
func New(metrics easel.FontMetrics) *TextBox {
	t := &TextBox{
		WidgetBase: easel.NewWidgetBase(),
		buffer:     NewBuffer(),
		wrapper:    NewWrapper(metrics),
		vertical:   easel.NewScrollbar(),
		horizontal: easel.NewScrollbar(),
		renderer:   easel.NewSharedRenderer(easel.DefaultRendererData()),
		signals:    easel.NewSignalHub(SignalTextChanged, SignalSelectionChanged),
		clipboard:  &easel.MemoryClipboard{},
		now:        time.Now,
	}
	t.horizontal.SetPolicy(easel.ScrollbarNever)
	t.viewport = NewViewport(t.vertical, t.horizontal)
	t.SetSize(360, 180)
	return t
}

// SetSize resizes the widget and synchronously re-wraps against the new
// inner width. The selection survives as character offsets.
func (t *TextBox) SetSize(width, height float32) {
	t.WidgetBase.SetSize(width, height)
	t.refresh(true)
}

// ============================================================================
// Text
// ============================================================================

// SetText replaces the entire content and collapses the selection to the
// text start.
func (t *TextBox) SetText(text string) {
	prevText := t.buffer.Text()
	prevAnchor, prevCaret := t.selectionIndexes()

	t.buffer.SetText(text)
	t.refresh(false)
	t.emitAfter(prevText, prevAnchor, prevCaret)
}

// AddText appends to the content and places the caret after the appended
// text, scrolling it into view.
func (t *TextBox) AddText(text string) {
	prevText := t.buffer.Text()
	prevAnchor, prevCaret := t.selectionIndexes()

	t.buffer.Append(text)
	t.refresh(false)
	t.placeCaretAbs(t.buffer.Len(), false)
	t.scrollCaretIntoView()
	t.emitAfter(prevText, prevAnchor, prevCaret)
}

// Text returns the full content.
func (t *TextBox) Text() string {
	return t.buffer.Text()
}

// SetDefaultText sets the placeholder shown while the content is empty.
func (t *TextBox) SetDefaultText(text string) {
	t.defaultText = text
}

// DefaultText returns the placeholder text.
func (t *TextBox) DefaultText() string {
	return t.defaultText
}

// SetMaximumCharacters caps the content length in runes; 0 means unlimited.
// Existing content over the cap is truncated.
func (t *TextBox) SetMaximumCharacters(limit int) {
	prevText := t.buffer.Text()
	prevAnchor, prevCaret := t.selectionIndexes()

	if t.buffer.SetMaxChars(limit) {
		t.refresh(true)
	}
	t.emitAfter(prevText, prevAnchor, prevCaret)
}

// MaximumCharacters returns the rune cap, 0 when unlimited.
func (t *TextBox) MaximumCharacters() int {
	return t.buffer.MaxChars()
}

// SetReadOnly toggles read-only mode. Selection, navigation and copying
// keep working; edits and paste are rejected.
func (t *TextBox) SetReadOnly(readOnly bool) {
	t.readOnly = readOnly
}

// ReadOnly reports whether the widget rejects edits.
func (t *TextBox) ReadOnly() bool {
	return t.readOnly
}

// ============================================================================
// Selection and caret
// ============================================================================

// SetSelectedText selects the rune range [start, end]; start becomes the
// anchor and end the caret, so start > end yields a backward selection.
// Both clamp to the text length.
func (t *TextBox) SetSelectedText(start, end int) {
	prevAnchor, prevCaret := t.selectionIndexes()
	t.setSelectionAbs(start, end)
	t.scrollCaretIntoView()
	t.emitSelection(prevAnchor, prevCaret)
}

// SelectedText returns the selected text, empty when the selection is
// collapsed.
func (t *TextBox) SelectedText() string {
	start, end := t.selectionAbsRange()
	return t.buffer.Slice(start, end)
}

// SelectionStart returns the anchor as an absolute rune index. It may be
// after SelectionEnd for backward selections.
func (t *TextBox) SelectionStart() int {
	return PositionToIndex(t.lines, t.selection.Anchor)
}

// SelectionEnd returns the caret as an absolute rune index.
func (t *TextBox) SelectionEnd() int {
	return PositionToIndex(t.lines, t.selection.Caret)
}

// CaretPosition returns the caret as an absolute rune index.
func (t *TextBox) CaretPosition() int {
	return t.SelectionEnd()
}

// SetCaretPosition collapses the selection onto the given rune index,
// clamped, and scrolls it into view.
func (t *TextBox) SetCaretPosition(index int) {
	prevAnchor, prevCaret := t.selectionIndexes()
	t.placeCaretAbs(index, false)
	t.scrollCaretIntoView()
	t.emitSelection(prevAnchor, prevCaret)
}

// SelectAll selects the entire content, caret at the end.
func (t *TextBox) SelectAll() {
	prevAnchor, prevCaret := t.selectionIndexes()
	t.selectAll()
	t.emitSelection(prevAnchor, prevCaret)
}

// selectionIndexes returns the current anchor and caret as absolute rune
// indexes against the current line table.
func (t *TextBox) selectionIndexes() (anchor, caret int) {
	return PositionToIndex(t.lines, t.selection.Anchor),
		PositionToIndex(t.lines, t.selection.Caret)
}

// selectionAbsRange returns the selection as an ordered absolute range.
func (t *TextBox) selectionAbsRange() (start, end int) {
	start, end = t.selectionIndexes()
	if start > end {
		start, end = end, start
	}
	return start, end
}

// ============================================================================
// Scrollbars and wrapping
// ============================================================================

// SetVerticalScrollbarPolicy controls when the vertical scrollbar shows.
func (t *TextBox) SetVerticalScrollbarPolicy(policy easel.ScrollbarPolicy) {
	t.vertical.SetPolicy(policy)
	t.refresh(true)
}

// VerticalScrollbarPolicy returns the vertical scrollbar policy.
func (t *TextBox) VerticalScrollbarPolicy() easel.ScrollbarPolicy {
	return t.vertical.Policy()
}

// SetHorizontalScrollbarPolicy controls the horizontal scrollbar. Never,
// the default, enables word wrap; Automatic or Always disables it, so lines
// break only at explicit newlines and overlong lines scroll sideways.
func (t *TextBox) SetHorizontalScrollbarPolicy(policy easel.ScrollbarPolicy) {
	t.horizontal.SetPolicy(policy)
	t.wrapper.SetHorizontalScroll(policy != easel.ScrollbarNever)
	t.refresh(true)
}

// HorizontalScrollbarPolicy returns the horizontal scrollbar policy.
func (t *TextBox) HorizontalScrollbarPolicy() easel.ScrollbarPolicy {
	return t.horizontal.Policy()
}

// SetVerticalScrollbarValue scrolls the content vertically, in pixels.
func (t *TextBox) SetVerticalScrollbarValue(value float32) {
	t.vertical.SetValue(value)
}

// VerticalScrollbarValue returns the vertical scroll offset in pixels.
func (t *TextBox) VerticalScrollbarValue() float32 {
	return t.vertical.Value()
}

// SetHorizontalScrollbarValue scrolls the content sideways, in pixels.
func (t *TextBox) SetHorizontalScrollbarValue(value float32) {
	t.horizontal.SetValue(value)
}

// HorizontalScrollbarValue returns the horizontal scroll offset in pixels.
func (t *TextBox) HorizontalScrollbarValue() float32 {
	return t.horizontal.Value()
}

// VerticalScrollbar exposes the vertical scrollbar widget.
func (t *TextBox) VerticalScrollbar() *easel.Scrollbar {
	return t.vertical
}

// HorizontalScrollbar exposes the horizontal scrollbar widget.
func (t *TextBox) HorizontalScrollbar() *easel.Scrollbar {
	return t.horizontal
}

// LinesCount returns the number of wrapped lines; at least 1, even for
// empty content.
func (t *TextBox) LinesCount() int {
	return len(t.lines)
}

// EnableMonospacedFontOptimization switches line measurement to a single
// sampled advance. The caller asserts the font is monospaced.
func (t *TextBox) EnableMonospacedFontOptimization(enabled bool) {
	t.wrapper.SetMonospaced(enabled)
	t.refresh(true)
}

// SetFontMetrics replaces the width oracle and re-wraps.
func (t *TextBox) SetFontMetrics(metrics easel.FontMetrics) {
	t.wrapper.SetMetrics(metrics)
	t.refresh(true)
}

// SetClipboard replaces the clipboard used by cut, copy and paste.
func (t *TextBox) SetClipboard(clipboard easel.Clipboard) {
	t.clipboard = clipboard
}

// SetClock replaces the time source used for double-click and caret blink
// timing. Nil restores the wall clock.
func (t *TextBox) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	t.now = now
}

// ============================================================================
// Signals
// ============================================================================

// Connect registers a handler for one of the widget's signals. Unknown
// signal names return an error wrapping easel.ErrUnknownSignal.
func (t *TextBox) Connect(name easel.SignalName, handler func()) error {
	return t.signals.Connect(name, handler)
}

// ConnectString registers a handler that also receives the signal's string
// payload (the new text, for SignalTextChanged).
func (t *TextBox) ConnectString(name easel.SignalName, handler func(string)) error {
	return t.signals.ConnectString(name, handler)
}

// emitSelection fires SignalSelectionChanged when the selection's absolute
// endpoints differ from the captured previous ones.
func (t *TextBox) emitSelection(prevAnchor, prevCaret int) {
	anchor, caret := t.selectionIndexes()
	if anchor != prevAnchor || caret != prevCaret {
		t.signals.Emit(SignalSelectionChanged)
	}
}

// emitAfter compares the observable state captured before a mutation and
// fires the matching signals. Operations that end up changing nothing stay
// silent.
func (t *TextBox) emitAfter(prevText string, prevAnchor, prevCaret int) {
	if text := t.buffer.Text(); text != prevText {
		t.signals.EmitString(SignalTextChanged, text)
	}
	t.emitSelection(prevAnchor, prevCaret)
}

// ============================================================================
// Renderer
// ============================================================================

// SharedRenderer returns the renderer handle currently in use, without
// detaching it. Use this to share one renderer across widgets.
func (t *TextBox) SharedRenderer() *easel.SharedRenderer {
	return t.renderer
}

// Renderer detaches the renderer from any other widgets sharing it and
// returns the now-exclusive handle for local modification.
func (t *TextBox) Renderer() *easel.SharedRenderer {
	t.renderer = t.renderer.Exclusive()
	return t.renderer
}

// SetRenderer adopts a renderer handle, taking a reference. The inner area
// depends on borders and padding, so the content re-wraps.
func (t *TextBox) SetRenderer(renderer *easel.SharedRenderer) {
	if renderer == nil || renderer == t.renderer {
		return
	}
	t.renderer.Release()
	t.renderer = renderer.Acquire()
	t.refresh(true)
}

// ============================================================================
// Focus and caret blink
// ============================================================================

// SetFocused gives or takes keyboard focus. Gaining focus restarts the
// caret blink cycle with the caret visible.
func (t *TextBox) SetFocused(focused bool) {
	t.focused = focused
	t.caretVisible = focused
	t.lastBlink = t.now()
}

// Focused reports whether the widget has keyboard focus.
func (t *TextBox) Focused() bool {
	return t.focused
}

// Blink advances the caret blink cycle and reports whether the caret's
// visibility flipped. Callers drive this from their frame loop.
func (t *TextBox) Blink(now time.Time) bool {
	if !t.focused {
		return false
	}
	if now.Sub(t.lastBlink) < caretBlinkInterval {
		return false
	}
	t.caretVisible = !t.caretVisible
	t.lastBlink = now
	return true
}

// CaretVisible reports whether the caret should be drawn this frame.
func (t *TextBox) CaretVisible() bool {
	return t.focused && t.caretVisible
}

// resetBlink makes the caret visible and restarts the blink interval, so
// the caret never blinks away mid-interaction.
func (t *TextBox) resetBlink() {
	t.caretVisible = true
	t.lastBlink = t.now()
}

// ============================================================================
// Pipeline
// ============================================================================

// refresh runs the re-wrap half of the pipeline: recompute the line table
// for the current inner width, update the scrollbar ranges, and either
// carry the selection across as character offsets or reset it.
func (t *TextBox) refresh(keepSelection bool) {
	oldLines := t.lines
	data := t.renderer.Data()
	width, height := t.Size()
	innerWidth := maxf(0, width-data.HorizontalInset())
	innerHeight := maxf(0, height-data.VerticalInset())

	t.viewport.SetLineHeight(t.wrapper.LineHeight())

	// First pass assumes no scrollbar is taking space.
	t.wrapper.SetWidth(innerWidth)
	t.viewport.SetInnerSize(innerWidth, innerHeight)
	t.rewrap()

	// A shown scrollbar narrows the content area; re-wrap once against the
	// reduced size. Automatic policies were decided by the first pass.
	contentWidth, contentHeight := innerWidth, innerHeight
	if t.vertical.Shown() {
		contentWidth = maxf(0, contentWidth-data.ScrollbarWidth)
	}
	if t.horizontal.Shown() {
		contentHeight = maxf(0, contentHeight-data.ScrollbarWidth)
	}
	if contentWidth != innerWidth || contentHeight != innerHeight {
		t.wrapper.SetWidth(contentWidth)
		t.viewport.SetInnerSize(contentWidth, contentHeight)
		t.rewrap()
	}

	if keepSelection {
		t.selection.Reconcile(oldLines, t.lines, t.buffer.Len())
	} else {
		t.selection = Selection{}
	}
}

func (t *TextBox) rewrap() {
	t.lines = t.wrapper.Wrap(t.buffer.Content())
	t.maxLineWidth = MaxLineWidth(t.lines)
	t.viewport.Update(len(t.lines), t.maxLineWidth)
}

// scrollCaretIntoView nudges both scrollbars the minimal distance that puts
// the caret inside the visible window.
func (t *TextBox) scrollCaretIntoView() {
	caret := t.selection.Caret
	x := t.wrapper.ColumnX(t.buffer.Content(), t.lines[caret.Line], caret.Col)
	t.viewport.ScrollToCaret(caret.Line, x, len(t.lines))
}

// ============================================================================
// View output
// ============================================================================

// VisibleLine is one wrapped line inside the current window, positioned
// relative to the inner content origin.
type VisibleLine struct {
	Index int // index into the wrapped line table
	Text  string
	Y     float32
}

// VisibleLines returns the ordered window of wrapped lines the viewport
// exposes.
func (t *TextBox) VisibleLines() []VisibleLine {
	top := t.viewport.TopLine(len(t.lines))
	count := t.viewport.VisibleLineCount()
	content := t.buffer.Content()
	lh := t.wrapper.LineHeight()

	out := make([]VisibleLine, 0, count)
	for i := top; i < top+count && i < len(t.lines); i++ {
		out = append(out, VisibleLine{
			Index: i,
			Text:  LineText(content, t.lines[i]),
			Y:     float32(i)*lh - t.vertical.Value(),
		})
	}
	return out
}

// SelectionRects returns one highlight rectangle per visible wrapped line
// the selection touches, relative to the inner content origin. Empty when
// the selection is collapsed.
func (t *TextBox) SelectionRects() []easel.Rect {
	start, end := t.selection.Range()
	if start == end {
		return nil
	}
	top := t.viewport.TopLine(len(t.lines))
	count := t.viewport.VisibleLineCount()
	content := t.buffer.Content()
	lh := t.wrapper.LineHeight()
	hOffset := t.viewport.HorizontalOffset()

	var rects []easel.Rect
	for i := start.Line; i <= end.Line && i < len(t.lines); i++ {
		if i < top || i >= top+count {
			continue
		}
		line := t.lines[i]
		fromCol, toCol := 0, line.Len()
		if i == start.Line {
			fromCol = start.Col
		}
		if i == end.Line {
			toCol = end.Col
		}
		x0 := t.wrapper.ColumnX(content, line, fromCol)
		x1 := t.wrapper.ColumnX(content, line, toCol)
		rects = append(rects, easel.Rect{
			X:      x0 - hOffset,
			Y:      float32(i)*lh - t.vertical.Value(),
			Width:  x1 - x0,
			Height: lh,
		})
	}
	return rects
}

// CaretRect returns the caret's rectangle relative to the inner content
// origin.
func (t *TextBox) CaretRect() easel.Rect {
	data := t.renderer.Data()
	caret := t.selection.Caret
	x := t.wrapper.ColumnX(t.buffer.Content(), t.lines[caret.Line], caret.Col)
	return easel.Rect{
		X:      x - t.viewport.HorizontalOffset(),
		Y:      float32(caret.Line)*t.wrapper.LineHeight() - t.vertical.Value(),
		Width:  data.CaretWidth,
		Height: t.wrapper.LineHeight(),
	}
}

// Draw records the widget's visual output: background, borders, selection
// highlights, text or placeholder, and the caret.
func (t *TextBox) Draw(list *easel.DrawList) {
	if !t.Visible() {
		return
	}
	data := t.renderer.Data()
	width, height := t.Size()

	list.PushRect(easel.Rect{Width: width, Height: height}, data.BorderColor)
	list.PushRect(easel.Rect{
		X:      data.Borders[3],
		Y:      data.Borders[0],
		Width:  maxf(0, width-data.Borders[1]-data.Borders[3]),
		Height: maxf(0, height-data.Borders[0]-data.Borders[2]),
	}, data.BackgroundColor)

	originX := data.Borders[3] + data.Padding[3]
	originY := data.Borders[0] + data.Padding[0]

	if t.buffer.Len() == 0 && t.defaultText != "" && !t.focused {
		list.PushText(originX, originY, t.defaultText, data.DefaultTextColor)
	} else {
		for _, r := range t.SelectionRects() {
			r.X += originX
			r.Y += originY
			list.PushRect(r, data.SelectionColor)
		}
		for _, line := range t.VisibleLines() {
			list.PushText(originX-t.viewport.HorizontalOffset(), originY+line.Y, line.Text, data.TextColor)
		}
	}

	if t.CaretVisible() && !t.readOnly {
		r := t.CaretRect()
		r.X += originX
		r.Y += originY
		list.PushRect(r, data.CaretColor)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
