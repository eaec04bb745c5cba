package desky

// Surface is a drawing target owned by a Style provider. The core only
// allocates, clears and composes surfaces; it never touches their contents.
type Surface interface {
	// Size returns the surface dimensions.
	Size() (width, height int)

	// Clear resets the surface to fully transparent.
	Clear()

	// Blit draws src onto this surface with its top-left corner at (x, y).
	Blit(src Surface, x, y int)
}

// Style is the presentation collaborator. It positions and draws panels
// and is the only place where pixels or text metrics are handled.
//
// Layout implementations are expected to call p.LayoutChildren() and Render
// implementations p.RenderChildren(surface) so that the core's ordering and
// iteration bounds apply to the subtree.
type Style interface {
	// Setup prepares a panel after creation and after RequestSetup.
	Setup(p *Panel)

	// Layout positions p's children for the given panel size.
	Layout(p *Panel, width, height int)

	// Render draws p onto surface, which is width x height.
	Render(p *Panel, surface Surface, width, height int)

	// NewSurface allocates a transparent surface for a child panel.
	NewSurface(width, height int) Surface
}

// Layouter positions the children of a container panel.
// DockLayout, GridLayout and AdjustableDivider implement it.
type Layouter interface {
	Layout(container *Panel)
}

// BaseStyle is a Style that draws nothing. It applies a panel's Layouter,
// then recurses with the core's ordering rules. Providers embed it and
// override what they draw.
type BaseStyle struct{}

var _ Style = BaseStyle{}

// Setup does nothing.
func (BaseStyle) Setup(*Panel) {}

// Layout applies p's Layouter, if any, and lays out p's children.
func (BaseStyle) Layout(p *Panel, _, _ int) {
	if l := p.Layouter(); l != nil {
		l.Layout(p)
	}
	p.LayoutChildren()
}

// Render composes p's children onto surface.
func (BaseStyle) Render(p *Panel, surface Surface, _, _ int) {
	p.RenderChildren(surface)
}

// NewSurface returns a surface that only records its size.
func (BaseStyle) NewSurface(width, height int) Surface {
	return &nullSurface{width: width, height: height}
}

type nullSurface struct {
	width, height int
}

func (s *nullSurface) Size() (int, int)       { return s.width, s.height }
func (s *nullSurface) Clear()                 {}
func (s *nullSurface) Blit(Surface, int, int) {}
