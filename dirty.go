package desky

// RequestRender marks p and its ancestors as needing rendering.
// Propagation stops at the first ancestor that is already render-dirty:
// a dirty panel always has dirty ancestors.
func (p *Panel) RequestRender() {
	for q := p; q != nil && !q.renderDirty; q = q.Parent() {
		q.renderDirty = true
	}
}

// RequestLayout marks p and its ancestors as needing layout. A layout
// change is assumed visible, so render is requested too. Propagation stops
// at the first ancestor that is already layout-dirty.
func (p *Panel) RequestLayout() {
	p.RequestRender()
	for q := p; q != nil && !q.layoutDirty; q = q.Parent() {
		q.layoutDirty = true
	}
}

// RequestSetup schedules the style provider's Setup for p at the next
// Update, before layout runs.
func (p *Panel) RequestSetup() {
	p.RequestLayout()
	p.setupDirty = true
}
