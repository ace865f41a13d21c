package easel

// DrawOpKind discriminates the draw command variants.
type DrawOpKind uint8

const (
	OpRect DrawOpKind = iota + 1
	OpText
	OpLine
)

// DrawOp is one retained draw command. The rendering backend consumes the
// ordered op list; the toolkit never rasterizes anything itself.
type DrawOp struct {
	Kind  DrawOpKind
	Rect  Rect   // filled rect for OpRect, bounds/origin for OpText and OpLine
	Color uint32 // packed RGBA
	Text  string // only for OpText
}

// DrawList accumulates draw commands for one widget pass. Ops are replayed
// in push order.
type DrawList struct {
	ops []DrawOp
}

// Reset clears the list while keeping its capacity.
func (l *DrawList) Reset() {
	l.ops = l.ops[:0]
}

// Ops returns the accumulated commands in push order.
func (l *DrawList) Ops() []DrawOp {
	return l.ops
}

// PushRect records a filled rectangle.
func (l *DrawList) PushRect(r Rect, color uint32) {
	l.ops = append(l.ops, DrawOp{Kind: OpRect, Rect: r, Color: color})
}

// PushText records a text run with its top-left corner at (x, y).
func (l *DrawList) PushText(x, y float32, text string, color uint32) {
	l.ops = append(l.ops, DrawOp{Kind: OpText, Rect: Rect{X: x, Y: y}, Text: text, Color: color})
}

// PushLine records a one-pixel-extent line segment expressed as a thin rect.
func (l *DrawList) PushLine(r Rect, color uint32) {
	l.ops = append(l.ops, DrawOp{Kind: OpLine, Rect: r, Color: color})
}
