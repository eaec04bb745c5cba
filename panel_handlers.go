package desky

// handlers holds a panel's input callbacks. Every callback receives the
// panel as its first parameter.
type handlers struct {
	onMouseMove    func(*Panel, MouseEvent)
	onMousePress   func(*Panel, MouseEvent)
	onMouseRelease func(*Panel, MouseEvent)
	onMouseClick   func(*Panel, MouseEvent)
	onKeyPress     func(*Panel, KeyEvent)
	onKeyRelease   func(*Panel, KeyEvent)
	onFocusChange  func(*Panel, bool)
}

func (h *handlers) mouseMove() func(*Panel, MouseEvent)    { return h.onMouseMove }
func (h *handlers) mousePress() func(*Panel, MouseEvent)   { return h.onMousePress }
func (h *handlers) mouseRelease() func(*Panel, MouseEvent) { return h.onMouseRelease }
func (h *handlers) mouseClick() func(*Panel, MouseEvent)   { return h.onMouseClick }
func (h *handlers) keyPress() func(*Panel, KeyEvent)       { return h.onKeyPress }
func (h *handlers) keyRelease() func(*Panel, KeyEvent)     { return h.onKeyRelease }

// --- Event Handler API ---
//
// Pointer and key events are broadcast to every panel in the tree, not
// only the hover or focus target. Handlers check ev.Hover, ev.Inside or
// ev.Focus to decide whether the event concerns them.

// OnMouseMove sets the pointer motion handler.
func (p *Panel) OnMouseMove(fn func(*Panel, MouseEvent)) {
	p.handlers.onMouseMove = fn
}

// OnMousePress sets the button press handler.
func (p *Panel) OnMousePress(fn func(*Panel, MouseEvent)) {
	p.handlers.onMousePress = fn
}

// OnMouseRelease sets the button release handler.
func (p *Panel) OnMouseRelease(fn func(*Panel, MouseEvent)) {
	p.handlers.onMouseRelease = fn
}

// OnMouseClick sets the click handler. A click is broadcast after a
// release when the hover panel is the one that was under the pointer at
// press time for the same button.
func (p *Panel) OnMouseClick(fn func(*Panel, MouseEvent)) {
	p.handlers.onMouseClick = fn
}

// OnKeyPress sets the key press handler.
func (p *Panel) OnKeyPress(fn func(*Panel, KeyEvent)) {
	p.handlers.onKeyPress = fn
}

// OnKeyRelease sets the key release handler.
func (p *Panel) OnKeyRelease(fn func(*Panel, KeyEvent)) {
	p.handlers.onKeyRelease = fn
}

// OnFocusChange sets the handler called with true when p gains focus and
// false when it loses it.
func (p *Panel) OnFocusChange(fn func(*Panel, bool)) {
	p.handlers.onFocusChange = fn
}

// WithOnMouseMove sets the pointer motion handler at creation.
func WithOnMouseMove(fn func(*Panel, MouseEvent)) Option {
	return func(p *Panel) { p.OnMouseMove(fn) }
}

// WithOnMousePress sets the button press handler at creation.
func WithOnMousePress(fn func(*Panel, MouseEvent)) Option {
	return func(p *Panel) { p.OnMousePress(fn) }
}

// WithOnMouseRelease sets the button release handler at creation.
func WithOnMouseRelease(fn func(*Panel, MouseEvent)) Option {
	return func(p *Panel) { p.OnMouseRelease(fn) }
}

// WithOnMouseClick sets the click handler at creation.
func WithOnMouseClick(fn func(*Panel, MouseEvent)) Option {
	return func(p *Panel) { p.OnMouseClick(fn) }
}

// WithOnKeyPress sets the key press handler at creation.
func WithOnKeyPress(fn func(*Panel, KeyEvent)) Option {
	return func(p *Panel) { p.OnKeyPress(fn) }
}

// WithOnFocusChange sets the focus handler at creation.
func WithOnFocusChange(fn func(*Panel, bool)) Option {
	return func(p *Panel) { p.OnFocusChange(fn) }
}
