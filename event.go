package easel

// ============================================================================
// Event Types
// ============================================================================

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Key is the logical key of a keyboard event. Only the keys the toolkit's
// widgets react to are enumerated; anything else arrives as KeyNone plus a
// character through the text-entry path.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
)

// MouseEvent represents mouse interaction events. Coordinates are local to
// the receiving widget's top-left corner.
type MouseEvent struct {
	X, Y float32

	// Which button triggered the event (for press/release)
	Button MouseButton

	// Scroll delta (for wheel events), in lines
	DeltaX, DeltaY float32

	Modifiers Modifiers
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key Key

	// For printable keys, the character that was typed
	Char rune

	Modifiers Modifiers
}
