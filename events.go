package desky

// RawEvent is a platform input event handed to Gui.Dispatch.
// Use a type switch to handle specific event types.
type RawEvent interface {
	// isRawEvent is a marker method to prevent external implementations.
	isRawEvent()
}

// RawMouseMotion reports a pointer move in root coordinates.
type RawMouseMotion struct {
	X, Y int
	// RelX and RelY are the motion since the previous report.
	RelX, RelY int
}

// RawMouseButtonDown reports a button press in root coordinates.
type RawMouseButtonDown struct {
	X, Y   int
	Button MouseButton
}

// RawMouseButtonUp reports a button release in root coordinates.
type RawMouseButtonUp struct {
	X, Y   int
	Button MouseButton
}

// RawKeyDown reports a key press.
type RawKeyDown struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RawKeyUp reports a key release.
type RawKeyUp struct {
	Key Key
	Mod Modifier
}

func (RawMouseMotion) isRawEvent()     {}
func (RawMouseButtonDown) isRawEvent() {}
func (RawMouseButtonUp) isRawEvent()   {}
func (RawKeyDown) isRawEvent()         {}
func (RawKeyUp) isRawEvent()           {}

// MouseEvent is delivered to every panel in the tree for each pointer event.
type MouseEvent struct {
	Gui *Gui

	// X and Y are relative to the receiving panel's origin.
	X, Y int

	// Button is the button involved; MouseNone for motion.
	Button MouseButton

	// Inside reports whether the point lies within the receiving panel.
	Inside bool

	// Hover is true only for the panel resolved as the hover target.
	Hover bool

	// DeltaX and DeltaY are set for motion events.
	DeltaX, DeltaY int
}

// Pos returns the local event position.
func (e MouseEvent) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}

// KeyEvent is delivered to every panel in the tree for each key event.
// Panels filter on Hover and Focus themselves.
type KeyEvent struct {
	Gui *Gui

	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys
	// and for key releases.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier

	Hover bool
	Focus bool
}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}
