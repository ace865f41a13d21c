package textbox

import (
	"time"
	"unicode"

	"github.com/easel-ui/easel"
)

// inputState is the mouse side of the input state machine.
type inputState uint8

const (
	stateIdle inputState = iota
	stateDragging
	stateAwaitingDoubleClick
)

const (
	doubleClickInterval = 500 * time.Millisecond
	doubleClickDistance = 5 // px

	wheelScrollLines = 3
)

// hitPosition converts widget-local pixel coordinates to a caret slot via
// the inverse of the wrap geometry.
func (t *TextBox) hitPosition(x, y float32) Position {
	data := t.renderer.Data()
	cx := x - data.Borders[3] - data.Padding[3] + t.viewport.HorizontalOffset()
	cy := y - data.Borders[0] - data.Padding[0] + t.vertical.Value()

	line := 0
	if lh := t.wrapper.LineHeight(); lh > 0 {
		line = int(cy / lh)
	}
	if line < 0 {
		line = 0
	}
	if line >= len(t.lines) {
		line = len(t.lines) - 1
	}
	col := t.wrapper.ColumnAtX(t.buffer.Content(), t.lines[line], cx)
	return Position{Line: line, Col: col}
}

// MousePressed places the caret, starts a drag selection, or escalates a
// quick repeated click to word and then line selection.
func (t *TextBox) MousePressed(e easel.MouseEvent) bool {
	if e.Button != easel.MouseButtonLeft {
		return false
	}
	now := t.now()
	quick := t.state == stateAwaitingDoubleClick &&
		now.Sub(t.lastClick) <= doubleClickInterval &&
		absf(e.X-t.lastClickX) <= doubleClickDistance &&
		absf(e.Y-t.lastClickY) <= doubleClickDistance
	if quick {
		t.clickCount++
	} else {
		t.clickCount = 1
	}
	t.lastClick = now
	t.lastClickX, t.lastClickY = e.X, e.Y

	prevAnchor, prevCaret := t.selectionIndexes()
	hit := t.hitPosition(e.X, e.Y)
	switch {
	case t.clickCount >= 3:
		start, end := LineRangeAt(t.buffer.Content(), PositionToIndex(t.lines, hit))
		t.setSelectionAbs(start, end)
		t.clickCount = 0
		t.state = stateIdle
	case t.clickCount == 2:
		start, end := WordRangeAt(t.buffer.Content(), PositionToIndex(t.lines, hit))
		t.setSelectionAbs(start, end)
		t.state = stateAwaitingDoubleClick
	default:
		t.selection.MoveCaret(hit, false)
		t.state = stateDragging
	}
	t.resetBlink()
	t.emitSelection(prevAnchor, prevCaret)
	return true
}

// MouseMoved extends the drag selection. The viewport is deliberately not
// scrolled per move; scrolling to the caret happens on release, so a drag
// that leaves the widget bounds cannot run away.
func (t *TextBox) MouseMoved(e easel.MouseEvent) {
	if t.state != stateDragging {
		return
	}
	prevAnchor, prevCaret := t.selectionIndexes()
	t.selection.MoveCaret(t.hitPosition(e.X, e.Y), true)
	t.emitSelection(prevAnchor, prevCaret)
}

// MouseReleased ends a drag and arms double-click detection.
func (t *TextBox) MouseReleased(e easel.MouseEvent) {
	if t.state == stateDragging {
		t.scrollCaretIntoView()
	}
	t.state = stateAwaitingDoubleClick
}

// MouseWheelScrolled scrolls the vertical axis by whole lines per delta
// unit.
func (t *TextBox) MouseWheelScrolled(delta float32) {
	t.vertical.SetValue(t.vertical.Value() - delta*t.wrapper.LineHeight()*wheelScrollLines)
}

// HandleKey runs the keyboard side of the state machine. In read-only mode
// only navigation, copy and select-all remain active. Returns whether the
// key was consumed.
func (t *TextBox) HandleKey(e easel.KeyEvent) bool {
	extend := e.Modifiers.Shift()
	jump := e.Modifiers.Ctrl()

	prevText := t.buffer.Text()
	prevAnchor, prevCaret := t.selectionIndexes()

	handled := true
	switch e.Key {
	case easel.KeyLeft:
		t.moveCaretHorizontal(-1, extend, jump)
	case easel.KeyRight:
		t.moveCaretHorizontal(1, extend, jump)
	case easel.KeyUp:
		t.moveCaretVertical(-1, extend)
	case easel.KeyDown:
		t.moveCaretVertical(1, extend)
	case easel.KeyPageUp:
		t.moveCaretVertical(-t.viewport.VisibleLineCount(), extend)
	case easel.KeyPageDown:
		t.moveCaretVertical(t.viewport.VisibleLineCount(), extend)
	case easel.KeyHome:
		if jump {
			t.placeCaretAbs(0, extend)
		} else {
			t.selection.MoveCaret(Position{Line: t.selection.Caret.Line}, extend)
		}
	case easel.KeyEnd:
		if jump {
			t.placeCaretAbs(t.buffer.Len(), extend)
		} else {
			line := t.selection.Caret.Line
			t.selection.MoveCaret(Position{Line: line, Col: t.lines[line].Len()}, extend)
		}
	case easel.KeyBackspace:
		if t.readOnly {
			handled = false
		} else {
			t.backspace()
		}
	case easel.KeyDelete:
		if t.readOnly {
			handled = false
		} else {
			t.deleteForward()
		}
	case easel.KeyEnter:
		if t.readOnly {
			handled = false
		} else {
			t.insertText("\n")
		}
	case easel.KeyA:
		if jump {
			t.selectAll()
		} else {
			handled = false
		}
	case easel.KeyC:
		if jump {
			t.copySelection()
		} else {
			handled = false
		}
	case easel.KeyX:
		if jump {
			t.cutSelection()
		} else {
			handled = false
		}
	case easel.KeyV:
		if jump && !t.readOnly {
			t.paste()
		} else {
			handled = false
		}
	default:
		handled = false
	}

	if !handled {
		return false
	}
	t.scrollCaretIntoView()
	t.resetBlink()
	t.emitAfter(prevText, prevAnchor, prevCaret)
	return true
}

// HandleText inserts a typed character at the caret, replacing any active
// selection, subject to the character limit. Control characters other than
// tab are ignored; newlines arrive through KeyEnter. Returns whether the
// rune changed the text; a full buffer rejects the keystroke.
func (t *TextBox) HandleText(r rune) bool {
	if t.readOnly {
		return false
	}
	if r != '\t' && !unicode.IsGraphic(r) {
		return false
	}
	prevText := t.buffer.Text()
	prevAnchor, prevCaret := t.selectionIndexes()

	t.insertText(string(r))

	t.scrollCaretIntoView()
	t.resetBlink()
	t.emitAfter(prevText, prevAnchor, prevCaret)
	return t.buffer.Text() != prevText
}

// ============================================================================
// Caret movement
// ============================================================================

// placeCaretAbs moves the caret to an absolute rune index, clamped.
func (t *TextBox) placeCaretAbs(index int, extend bool) {
	index = clampIndex(index, t.buffer.Len())
	t.selection.MoveCaret(IndexToPosition(t.lines, index), extend)
}

func (t *TextBox) moveCaretHorizontal(delta int, extend, jump bool) {
	caretAbs := PositionToIndex(t.lines, t.selection.Caret)
	switch {
	case jump:
		if delta < 0 {
			t.placeCaretAbs(PrevWordIndex(t.buffer.Content(), caretAbs), extend)
		} else {
			t.placeCaretAbs(NextWordIndex(t.buffer.Content(), caretAbs), extend)
		}
	case t.selection.Active() && !extend:
		// collapse onto the near edge instead of moving
		start, end := t.selection.Range()
		if delta < 0 {
			t.selection.CollapseTo(start)
		} else {
			t.selection.CollapseTo(end)
		}
	default:
		t.placeCaretAbs(caretAbs+delta, extend)
	}
}

// moveCaretVertical moves by wrapped lines, preserving the caret's
// horizontal pixel target. At the boundary lines the caret snaps to the
// text start or end.
func (t *TextBox) moveCaretVertical(delta int, extend bool) {
	caret := t.selection.Caret
	content := t.buffer.Content()

	target := caret.Line + delta
	if target < 0 {
		target = 0
	}
	if target >= len(t.lines) {
		target = len(t.lines) - 1
	}
	if target == caret.Line {
		if delta < 0 {
			t.placeCaretAbs(0, extend)
		} else if delta > 0 {
			t.placeCaretAbs(t.buffer.Len(), extend)
		}
		return
	}

	x := t.wrapper.ColumnX(content, t.lines[caret.Line], caret.Col)
	col := t.wrapper.ColumnAtX(content, t.lines[target], x)
	t.selection.MoveCaret(Position{Line: target, Col: col}, extend)
}

// ============================================================================
// Edit primitives (no signal emission; callers own the funnel)
// ============================================================================

// insertText replaces the active selection, or inserts at the caret, then
// re-wraps and re-resolves the caret after the insertion.
func (t *TextBox) insertText(text string) {
	start, end := t.selectionAbsRange()
	if start != end {
		t.buffer.DeleteRange(start, end)
	}
	n := t.buffer.InsertAt(start, text)
	t.refresh(false)
	t.placeCaretAbs(start+n, false)
}

func (t *TextBox) backspace() {
	if start, end := t.selectionAbsRange(); start != end {
		t.deleteAbsRange(start, end)
		return
	}
	caret := PositionToIndex(t.lines, t.selection.Caret)
	t.deleteAbsRange(caret-1, caret)
}

func (t *TextBox) deleteForward() {
	if start, end := t.selectionAbsRange(); start != end {
		t.deleteAbsRange(start, end)
		return
	}
	caret := PositionToIndex(t.lines, t.selection.Caret)
	t.deleteAbsRange(caret, caret+1)
}

func (t *TextBox) deleteAbsRange(start, end int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	t.buffer.DeleteRange(start, end)
	t.refresh(false)
	t.placeCaretAbs(start, false)
}

func (t *TextBox) selectAll() {
	t.selection.Anchor = Position{}
	t.selection.Caret = IndexToPosition(t.lines, t.buffer.Len())
}

// setSelectionAbs sets anchor and caret from absolute rune indexes; the
// pair may be backwards.
func (t *TextBox) setSelectionAbs(anchor, caret int) {
	t.selection.Anchor = IndexToPosition(t.lines, clampIndex(anchor, t.buffer.Len()))
	t.selection.Caret = IndexToPosition(t.lines, clampIndex(caret, t.buffer.Len()))
}

// ============================================================================
// Clipboard
// ============================================================================

// copySelection puts the selected text on the clipboard. Clipboard failures
// stay invisible to the user.
func (t *TextBox) copySelection() {
	if t.clipboard == nil {
		return
	}
	if text := t.SelectedText(); text != "" {
		_ = t.clipboard.SetText(text)
	}
}

// cutSelection copies and, unless read-only, deletes the selection.
func (t *TextBox) cutSelection() {
	t.copySelection()
	if t.readOnly {
		return
	}
	if start, end := t.selectionAbsRange(); start != end {
		t.deleteAbsRange(start, end)
	}
}

// paste inserts clipboard text at the caret, replacing any selection and
// truncating silently at the character limit.
func (t *TextBox) paste() {
	if t.clipboard == nil {
		return
	}
	text, err := t.clipboard.Text()
	if err != nil || text == "" {
		return
	}
	t.insertText(text)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
