package desky

// --- Geometry ---
//
// Every setter below is a no-op when the value is unchanged and requests
// layout otherwise.

// Rect returns the panel rectangle in its parent's coordinate space.
func (p *Panel) Rect() Rect {
	return p.rect
}

// SetRect sets the panel rectangle.
func (p *Panel) SetRect(r Rect) {
	if p.rect == r {
		return
	}
	p.rect = r
	p.RequestLayout()
}

// X returns the left edge in parent coordinates.
func (p *Panel) X() int { return p.rect.X }

// Y returns the top edge in parent coordinates.
func (p *Panel) Y() int { return p.rect.Y }

// Width returns the panel width.
func (p *Panel) Width() int { return p.rect.Width }

// Height returns the panel height.
func (p *Panel) Height() int { return p.rect.Height }

// SetX sets the left edge.
func (p *Panel) SetX(x int) {
	r := p.rect
	r.X = x
	p.SetRect(r)
}

// SetY sets the top edge.
func (p *Panel) SetY(y int) {
	r := p.rect
	r.Y = y
	p.SetRect(r)
}

// SetWidth sets the width.
func (p *Panel) SetWidth(width int) {
	r := p.rect
	r.Width = width
	p.SetRect(r)
}

// SetHeight sets the height.
func (p *Panel) SetHeight(height int) {
	r := p.rect
	r.Height = height
	p.SetRect(r)
}

// Pos returns the top-left corner in parent coordinates.
func (p *Panel) Pos() Point {
	return p.rect.Pos()
}

// SetPos moves the panel.
func (p *Panel) SetPos(x, y int) {
	r := p.rect
	r.X, r.Y = x, y
	p.SetRect(r)
}

// Size returns the panel width and height.
func (p *Panel) Size() (width, height int) {
	return p.rect.Width, p.rect.Height
}

// SetSize resizes the panel.
func (p *Panel) SetSize(width, height int) {
	r := p.rect
	r.Width, r.Height = width, height
	p.SetRect(r)
}

// Margins returns the space reserved around the panel.
func (p *Panel) Margins() Edges {
	return p.margins
}

// SetMargins sets the margins.
func (p *Panel) SetMargins(e Edges) {
	if p.margins == e {
		return
	}
	p.margins = e
	p.RequestLayout()
}

// Padding returns the space reserved inside the panel.
func (p *Panel) Padding() Edges {
	return p.padding
}

// SetPadding sets the padding.
func (p *Panel) SetPadding(e Edges) {
	if p.padding == e {
		return
	}
	p.padding = e
	p.RequestLayout()
}

// InnerRect returns the panel rectangle shrunk by its padding.
func (p *Panel) InnerRect() Rect {
	return p.rect.Inset(p.padding)
}

// SetInnerRect sets the rectangle so that InnerRect equals r.
func (p *Panel) SetInnerRect(r Rect) {
	p.SetRect(r.Outset(p.padding))
}

// OuterRect returns the panel rectangle expanded by its margins.
func (p *Panel) OuterRect() Rect {
	return p.rect.Outset(p.margins)
}

// SetOuterRect sets the rectangle so that OuterRect equals r.
// Layout managers place panels through this.
func (p *Panel) SetOuterRect(r Rect) {
	p.SetRect(r.Inset(p.margins))
}

// --- Coordinates ---

// AbsoluteX returns the left edge in root coordinates.
func (p *Panel) AbsoluteX() int {
	return p.ToWorld(Point{}).X
}

// AbsoluteY returns the top edge in root coordinates.
func (p *Panel) AbsoluteY() int {
	return p.ToWorld(Point{}).Y
}

// ToWorld converts a point local to p into root coordinates.
// The root's own position is not applied; root coordinates are the root's
// local space.
func (p *Panel) ToWorld(pt Point) Point {
	for q := p; q != nil && q != p.gui.root; q = q.Parent() {
		pt = pt.Add(q.Pos())
	}
	return pt
}

// ToLocal converts a point in root coordinates into p's local space.
func (p *Panel) ToLocal(pt Point) Point {
	return pt.Sub(p.ToWorld(Point{}))
}
