package desky

// Dispatch translates one raw input event into hover resolution and a
// broadcast to every panel. Dispatch is synchronous; structural changes
// requested by handlers are applied at the next Update.
func (g *Gui) Dispatch(ev RawEvent) {
	switch ev := ev.(type) {
	case RawMouseMotion:
		g.pointer = Point{X: ev.X, Y: ev.Y}
		g.FindHover(ev.X, ev.Y)
		g.broadcastMouse(MouseEvent{X: ev.X, Y: ev.Y, DeltaX: ev.RelX, DeltaY: ev.RelY}, (*handlers).mouseMove)

	case RawMouseButtonDown:
		g.pointer = Point{X: ev.X, Y: ev.Y}
		hover := g.FindHover(ev.X, ev.Y)
		g.pressTarget[ev.Button] = hover.id

		// The reorder is queued; this press still sees the old order.
		hover.MoveToFront()
		g.setFocus(hover)

		g.broadcastMouse(MouseEvent{X: ev.X, Y: ev.Y, Button: ev.Button}, (*handlers).mousePress)

	case RawMouseButtonUp:
		g.pointer = Point{X: ev.X, Y: ev.Y}
		hover := g.FindHover(ev.X, ev.Y)
		g.broadcastMouse(MouseEvent{X: ev.X, Y: ev.Y, Button: ev.Button}, (*handlers).mouseRelease)

		pressed, ok := g.pressTarget[ev.Button]
		delete(g.pressTarget, ev.Button)
		if ok && pressed == hover.id {
			g.broadcastMouse(MouseEvent{X: ev.X, Y: ev.Y, Button: ev.Button}, (*handlers).mouseClick)
		}

	case RawKeyDown:
		g.broadcastKey(KeyEvent{Key: ev.Key, Rune: ev.Rune, Mod: ev.Mod}, (*handlers).keyPress)

	case RawKeyUp:
		g.broadcastKey(KeyEvent{Key: ev.Key, Mod: ev.Mod}, (*handlers).keyRelease)
	}
}

// Pointer returns the last pointer position seen by Dispatch, in root
// coordinates.
func (g *Gui) Pointer() Point {
	return g.pointer
}

// FindHover resolves the panel under (x, y), given in root coordinates, and
// records it as the hover panel.
//
// The search is depth first. Children are tried in list order and the
// first child that contains the point and resolves wins, so the front-most
// child (index 0) has priority, matching render order. A panel is a
// result only if it accepts mouse input; the root always does, so the
// search cannot fail unless the root was reconfigured.
func (g *Gui) FindHover(x, y int) *Panel {
	hover := g.hoverSearch(g.root, Point{X: x, Y: y})
	if hover == nil {
		panic("desky: hover search resolved no panel; the root must accept mouse input")
	}
	g.hover = hover
	return hover
}

func (g *Gui) hoverSearch(p *Panel, pt Point) *Panel {
	for _, id := range p.children {
		c := g.panels[id]
		if c == nil || c.removed || !c.rect.ContainsPoint(pt) {
			continue
		}
		if found := g.hoverSearch(c, pt.Sub(c.Pos())); found != nil {
			return found
		}
	}
	if p.acceptMouse {
		return p
	}
	return nil
}

// broadcastMouse delivers ev to every panel, children before their parent,
// translating coordinates into each panel's local space.
func (g *Gui) broadcastMouse(ev MouseEvent, pick func(*handlers) func(*Panel, MouseEvent)) {
	ev.Gui = g
	g.broadcastMouseTo(g.root, ev, pick)
}

func (g *Gui) broadcastMouseTo(p *Panel, ev MouseEvent, pick func(*handlers) func(*Panel, MouseEvent)) {
	for _, id := range p.children {
		if c := g.panels[id]; c != nil {
			local := ev
			local.X -= c.rect.X
			local.Y -= c.rect.Y
			g.broadcastMouseTo(c, local, pick)
		}
	}
	ev.Inside = ev.X >= 0 && ev.Y >= 0 && ev.X < p.rect.Width && ev.Y < p.rect.Height
	ev.Hover = p == g.hover
	if fn := pick(&p.handlers); fn != nil {
		fn(p, ev)
	}
}

// broadcastKey delivers ev to every panel with hover and focus flags.
func (g *Gui) broadcastKey(ev KeyEvent, pick func(*handlers) func(*Panel, KeyEvent)) {
	ev.Gui = g
	g.broadcastKeyTo(g.root, ev, pick)
}

func (g *Gui) broadcastKeyTo(p *Panel, ev KeyEvent, pick func(*handlers) func(*Panel, KeyEvent)) {
	for _, id := range p.children {
		if c := g.panels[id]; c != nil {
			g.broadcastKeyTo(c, ev, pick)
		}
	}
	ev.Hover = p == g.hover
	ev.Focus = p == g.focus
	if fn := pick(&p.handlers); fn != nil {
		fn(p, ev)
	}
}
