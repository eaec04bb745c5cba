package desky

// Panel is a node of the panel tree. Panels are created through Gui.Create
// and addressed by handle; parent and child links are arena IDs, so freeing
// a subtree never leaves dangling references.
type Panel struct {
	gui  *Gui
	id   PanelID
	kind string

	// widget holds state for the concrete widget built on this panel.
	widget any

	// Tree structure. children[0] is the front-most child.
	parent   PanelID
	children []PanelID

	// Geometry, in the parent's coordinate space
	rect    Rect
	margins Edges
	padding Edges

	setupDirty  bool
	layoutDirty bool
	renderDirty bool
	removed     bool
	freed       bool
	acceptMouse bool

	// surface caches this panel's last rendering.
	surface Surface

	// Deferred structural mutations, drained by Gui.Update.
	childQueue []PanelID
	moveQueue  []move
	queuedAt   PanelID

	// childHost redirects panels parented here to another panel.
	childHost PanelID

	layouter Layouter
	handlers handlers
}

type move struct {
	child   PanelID
	toFront bool
}

// Option configures a panel at creation.
type Option func(*Panel)

// WithKind names the panel type. Style providers dispatch on it.
func WithKind(kind string) Option {
	return func(p *Panel) {
		p.kind = kind
	}
}

// WithWidget attaches widget state to the panel.
func WithWidget(w any) Option {
	return func(p *Panel) {
		p.widget = w
	}
}

// WithRect sets the initial rectangle.
func WithRect(r Rect) Option {
	return func(p *Panel) {
		p.rect = r
	}
}

// WithSize sets the initial width and height.
func WithSize(width, height int) Option {
	return func(p *Panel) {
		p.rect.Width = width
		p.rect.Height = height
	}
}

// WithMargins sets the initial margins.
func WithMargins(e Edges) Option {
	return func(p *Panel) {
		p.margins = e
	}
}

// WithPadding sets the initial padding.
func WithPadding(e Edges) Option {
	return func(p *Panel) {
		p.padding = e
	}
}

// WithAcceptMouseInput makes the panel a hover candidate.
func WithAcceptMouseInput(accept bool) Option {
	return func(p *Panel) {
		p.acceptMouse = accept
	}
}

// WithLayouter sets the layout manager applied by BaseStyle.Layout.
func WithLayouter(l Layouter) Option {
	return func(p *Panel) {
		p.layouter = l
	}
}

// ID returns the panel's arena handle.
func (p *Panel) ID() PanelID {
	return p.id
}

// Gui returns the owning Gui.
func (p *Panel) Gui() *Gui {
	return p.gui
}

// Kind returns the panel type name.
func (p *Panel) Kind() string {
	return p.kind
}

// Widget returns the attached widget state, or nil.
func (p *Panel) Widget() any {
	return p.widget
}

// SetWidget attaches widget state.
func (p *Panel) SetWidget(w any) {
	p.widget = w
}

// Layouter returns the panel's layout manager, or nil.
func (p *Panel) Layouter() Layouter {
	return p.layouter
}

// SetLayouter replaces the layout manager and requests layout.
func (p *Panel) SetLayouter(l Layouter) {
	p.layouter = l
	p.RequestLayout()
}

// AcceptsMouseInput reports whether the panel is a hover candidate.
func (p *Panel) AcceptsMouseInput() bool {
	return p.acceptMouse
}

// SetAcceptMouseInput sets whether the panel is a hover candidate.
func (p *Panel) SetAcceptMouseInput(accept bool) {
	p.acceptMouse = accept
}

// Surface returns the panel's cached surface, or nil before first render.
func (p *Panel) Surface() Surface {
	return p.surface
}

// SetupDirty reports whether Setup will run at the next Update.
func (p *Panel) SetupDirty() bool {
	return p.setupDirty
}

// LayoutDirty reports whether the panel needs layout.
func (p *Panel) LayoutDirty() bool {
	return p.layoutDirty
}

// RenderDirty reports whether the panel needs rendering.
func (p *Panel) RenderDirty() bool {
	return p.renderDirty
}

// ClearDirty clears the layout and render flags without running a pass.
// Intended for tests and providers that settle panels by hand.
func (p *Panel) ClearDirty() {
	p.layoutDirty = false
	p.renderDirty = false
}
