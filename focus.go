package desky

// --- Focus API ---
//
// Exactly one panel holds focus at a time. Pressing a mouse button focuses
// the hover panel immediately; RequestFocus defers the transfer to the next
// Update.

// RequestFocus asks for p to receive focus at the next Update. The request
// bubbles to the root; the last request before Update wins.
func (p *Panel) RequestFocus() {
	p.gui.focusRequest = p.id
}

// Focused reports whether p holds focus.
func (p *Panel) Focused() bool {
	return p.gui.focus == p
}

// setFocus notifies the previous holder, then the new one.
func (g *Gui) setFocus(p *Panel) {
	if g.focus == p {
		return
	}
	prev := g.focus
	g.focus = p

	g.log.Debug().
		Uint64("panel", uint64(p.id)).
		Str("kind", p.kind).
		Msg("focus transfer")

	if prev != nil && prev.handlers.onFocusChange != nil {
		prev.handlers.onFocusChange(prev, false)
	}
	if p.handlers.onFocusChange != nil {
		p.handlers.onFocusChange(p, true)
	}
}
