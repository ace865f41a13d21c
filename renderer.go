package easel

// RendererData holds the drawing properties a widget reads while producing
// its draw commands. Box metrics follow CSS order: top, right, bottom, left.
type RendererData struct {
	Borders [4]float32
	Padding [4]float32

	CaretWidth     float32
	ScrollbarWidth float32

	BackgroundColor   uint32
	BorderColor       uint32
	TextColor         uint32
	DefaultTextColor  uint32
	SelectedTextColor uint32
	SelectionColor    uint32
	CaretColor        uint32
}

// HorizontalInset returns the combined left and right border plus padding.
func (d RendererData) HorizontalInset() float32 {
	return d.Borders[1] + d.Borders[3] + d.Padding[1] + d.Padding[3]
}

// VerticalInset returns the combined top and bottom border plus padding.
func (d RendererData) VerticalInset() float32 {
	return d.Borders[0] + d.Borders[2] + d.Padding[0] + d.Padding[2]
}

// SharedRenderer is a reference-counted set of renderer properties. A single
// renderer may back any number of widgets; a widget that wants to mutate its
// properties without affecting the others first detaches via Exclusive.
type SharedRenderer struct {
	data RendererData
	refs int
}

// NewSharedRenderer wraps the given properties with a single reference.
func NewSharedRenderer(data RendererData) *SharedRenderer {
	return &SharedRenderer{data: data, refs: 1}
}

// Acquire records another widget sharing this renderer and returns it.
func (r *SharedRenderer) Acquire() *SharedRenderer {
	r.refs++
	return r
}

// Release drops one reference.
func (r *SharedRenderer) Release() {
	if r.refs > 0 {
		r.refs--
	}
}

// Refs returns the number of widgets currently sharing this renderer.
func (r *SharedRenderer) Refs() int { return r.refs }

// Data returns the current properties.
func (r *SharedRenderer) Data() RendererData { return r.data }

// SetData replaces the properties, affecting every sharing widget. Callers
// that want isolated changes detach with Exclusive first.
func (r *SharedRenderer) SetData(data RendererData) { r.data = data }

// Exclusive returns a renderer owned by exactly one widget. When the
// renderer is shared it is cloned and the caller's reference moves to the
// clone; otherwise the renderer itself is returned.
func (r *SharedRenderer) Exclusive() *SharedRenderer {
	if r.refs <= 1 {
		return r
	}
	r.refs--
	return &SharedRenderer{data: r.data, refs: 1}
}
