package termstyle

import "github.com/grindlemire/go-desky"

// Panel kinds created by this package.
const (
	KindFrame  = "frame"
	KindLabel  = "label"
	KindButton = "button"
)

// Frame is a bordered container with an optional title. Its padding
// defaults to one cell so children stay inside the border.
type Frame struct {
	panel *desky.Panel

	// Title is drawn into the top border.
	Title desky.Attr[string]
}

// NewFrame creates a frame panel. opts apply after the frame defaults.
func NewFrame(g *desky.Gui, title string, opts ...desky.Option) *Frame {
	f := &Frame{}
	opts = append([]desky.Option{desky.WithKind(KindFrame), desky.WithPadding(desky.EdgeAll(1))}, opts...)
	f.panel = g.Create(append(opts, desky.WithWidget(f))...)
	f.Title = desky.RenderAttr(f.panel, title)
	return f
}

// Panel returns the frame's panel.
func (f *Frame) Panel() *desky.Panel { return f.panel }

// Label draws one line of text inside its padding.
type Label struct {
	panel *desky.Panel

	// Text changes request layout since an auto-width label is measured.
	Text desky.Attr[string]

	autoWidth bool
}

// NewLabel creates a label panel.
func NewLabel(g *desky.Gui, text string, opts ...desky.Option) *Label {
	l := &Label{}
	opts = append([]desky.Option{desky.WithKind(KindLabel)}, opts...)
	l.panel = g.Create(append(opts, desky.WithWidget(l))...)
	l.Text = desky.LayoutAttr(l.panel, text)
	return l
}

// Panel returns the label's panel.
func (l *Label) Panel() *desky.Panel { return l.panel }

// AutoWidth reports whether layout sizes the label's width to its text.
func (l *Label) AutoWidth() bool { return l.autoWidth }

// SetAutoWidth makes layout size the label's width to its text plus
// horizontal padding. Only use it where the parent's layouter leaves the
// width alone, such as a Child sized grid column.
func (l *Label) SetAutoWidth(auto bool) {
	if l.autoWidth == auto {
		return
	}
	l.autoWidth = auto
	l.panel.RequestLayout()
}

// ButtonState is the visual state of a Button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonNormal:
		return "normal"
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// Button is a clickable label. It fires its callback on a mouse click or on
// Enter or Space while focused.
type Button struct {
	panel *desky.Panel

	Text  desky.Attr[string]
	State desky.Attr[ButtonState]

	onClick func(*Button)
}

// NewButton creates a button panel that accepts mouse input.
func NewButton(g *desky.Gui, text string, onClick func(*Button), opts ...desky.Option) *Button {
	b := &Button{onClick: onClick}
	opts = append([]desky.Option{desky.WithKind(KindButton), desky.WithAcceptMouseInput(true)}, opts...)
	opts = append(opts,
		desky.WithWidget(b),
		desky.WithOnMouseMove(b.mouseMove),
		desky.WithOnMousePress(b.mousePress),
		desky.WithOnMouseRelease(b.mouseRelease),
		desky.WithOnMouseClick(b.mouseClick),
		desky.WithOnKeyPress(b.keyPress),
	)
	b.panel = g.Create(opts...)
	b.Text = desky.LayoutAttr(b.panel, text)
	b.State = desky.RenderAttr(b.panel, ButtonNormal)
	return b
}

// Panel returns the button's panel.
func (b *Button) Panel() *desky.Panel { return b.panel }

// Click runs the callback.
func (b *Button) Click() {
	if b.onClick != nil {
		b.onClick(b)
	}
}

func (b *Button) mouseMove(_ *desky.Panel, ev desky.MouseEvent) {
	switch {
	case b.State.Get() == ButtonPressed:
	case ev.Hover:
		b.State.Set(ButtonHover)
	default:
		b.State.Set(ButtonNormal)
	}
}

func (b *Button) mousePress(_ *desky.Panel, ev desky.MouseEvent) {
	if ev.Hover && ev.Button == desky.MouseLeft {
		b.State.Set(ButtonPressed)
	}
}

func (b *Button) mouseRelease(_ *desky.Panel, ev desky.MouseEvent) {
	if ev.Hover {
		b.State.Set(ButtonHover)
		return
	}
	b.State.Set(ButtonNormal)
}

func (b *Button) mouseClick(_ *desky.Panel, ev desky.MouseEvent) {
	if ev.Hover && ev.Button == desky.MouseLeft {
		b.Click()
	}
}

func (b *Button) keyPress(_ *desky.Panel, ev desky.KeyEvent) {
	if ev.Focus && (ev.Key == desky.KeyEnter || ev.Key == desky.KeySpace) {
		b.Click()
	}
}
