package desky

import "slices"

// Tick runs one scheduler pass for a window of the given size and then
// renders the tree onto screen. A non-nil error means layout did not
// converge; the tree is left as it was when the ceiling was hit.
func (g *Gui) Tick(width, height int, screen Surface) error {
	if err := g.Update(width, height); err != nil {
		return err
	}
	g.Render(screen)
	return nil
}

// Update is the single synchronization point for structural changes. In
// order it prunes panels marked for deletion, attaches queued children,
// applies front/back moves, performs a requested focus transfer, runs
// pending Setup calls and finally settles layout from the root.
//
// The returned error wraps ErrLayoutDiverged when a panel keeps
// re-requesting layout past the iteration ceiling.
func (g *Gui) Update(width, height int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			le, ok := r.(*LayoutError)
			if !ok {
				panic(r)
			}
			g.log.Error().
				Uint64("panel", uint64(le.Panel)).
				Str("kind", le.Kind).
				Int("iterations", le.Iterations).
				Msg("layout did not converge")
			err = le
		}
	}()

	g.prune(g.root)
	g.drainChildren(g.root)
	g.drainMoves(g.root)

	if g.focusRequest != 0 {
		if target := g.panels[g.focusRequest]; target != nil {
			g.setFocus(target)
		}
		g.focusRequest = 0
	}

	g.runSetup(g.root)

	g.root.SetSize(width, height)
	if g.root.layoutDirty {
		g.settle(g.root)
	}
	return nil
}

// prune drops children marked for deletion. Marked subtrees are freed
// without being walked by the pruning pass itself.
func (g *Gui) prune(p *Panel) {
	kept := p.children[:0]
	for _, id := range p.children {
		c := g.panels[id]
		if c == nil {
			continue
		}
		if c.removed {
			g.log.Debug().Uint64("panel", uint64(c.id)).Str("kind", c.kind).Msg("pruned")
			g.free(c)
			continue
		}
		g.prune(c)
		kept = append(kept, id)
	}
	p.children = kept
}

// drainChildren attaches queued children top-down. Each child leaves its
// previous parent and becomes the new parent's front-most child.
func (g *Gui) drainChildren(p *Panel) {
	if len(p.childQueue) > 0 {
		queue := p.childQueue
		p.childQueue = nil
		p.RequestLayout()

		for _, id := range queue {
			c := g.panels[id]
			if c == nil || c.queuedAt != p.id {
				continue
			}
			c.queuedAt = 0

			if c.removed {
				if !c.attached() {
					g.free(c)
				}
				continue
			}
			if c.IsAncestorOf(p) {
				g.log.Warn().
					Uint64("panel", uint64(c.id)).
					Uint64("parent", uint64(p.id)).
					Msg("ignoring reparent under own descendant")
				continue
			}

			if old := c.Parent(); old != nil && old.removeChild(c.id) {
				old.RequestLayout()
			}
			c.parent = p.id
			p.children = slices.Insert(p.children, 0, c.id)
			c.RequestLayout()
		}
	}

	for _, id := range slices.Clone(p.children) {
		if c := g.panels[id]; c != nil {
			g.drainChildren(c)
		}
	}
}

func (g *Gui) drainMoves(p *Panel) {
	p.applyMoves()
	for _, id := range p.children {
		if c := g.panels[id]; c != nil {
			g.drainMoves(c)
		}
	}
}

// applyMoves relocates children queued by MoveToFront and MoveToBack.
// Moves for children that have since left are dropped.
func (p *Panel) applyMoves() {
	if len(p.moveQueue) == 0 {
		return
	}
	for _, m := range p.moveQueue {
		if !p.removeChild(m.child) {
			continue
		}
		if m.toFront {
			p.children = slices.Insert(p.children, 0, m.child)
		} else {
			p.children = append(p.children, m.child)
		}
	}
	p.moveQueue = nil
}

func (g *Gui) runSetup(p *Panel) {
	if p.setupDirty {
		p.setupDirty = false
		g.style.Setup(p)
	}
	for _, id := range slices.Clone(p.children) {
		if c := g.panels[id]; c != nil {
			g.runSetup(c)
		}
	}
}

// settle runs p's layout until it stops re-dirtying itself. Exceeding the
// ceiling unwinds to Update with a *LayoutError.
func (g *Gui) settle(p *Panel) {
	for i := 0; p.layoutDirty; i++ {
		if i >= g.maxIterations {
			panic(&LayoutError{Panel: p.id, Kind: p.kind, Iterations: i})
		}
		p.layoutDirty = false
		p.applyMoves()
		g.style.Layout(p, p.rect.Width, p.rect.Height)
	}
}

// LayoutChildren settles every layout-dirty child of p, front-most first.
// Style providers call it from Layout.
func (p *Panel) LayoutChildren() {
	for _, id := range p.children {
		if c := p.gui.panels[id]; c != nil {
			p.gui.settle(c)
		}
	}
}

// Render draws the tree onto screen, which becomes the root's surface.
func (g *Gui) Render(screen Surface) {
	g.root.surface = screen
	g.root.renderDirty = false
	w, h := g.root.Size()
	g.style.Render(g.root, screen, w, h)
}

// RenderChildren composes p's children onto surface back to front, so the
// first child ends up on top. A child is redrawn into its cached surface
// only when render-dirty or resized.
func (p *Panel) RenderChildren(surface Surface) {
	style := p.gui.style
	for i := len(p.children) - 1; i >= 0; i-- {
		c := p.gui.panels[p.children[i]]
		if c == nil {
			continue
		}

		w, h := max(c.rect.Width, 0), max(c.rect.Height, 0)
		if c.surface == nil {
			c.surface = style.NewSurface(w, h)
			c.renderDirty = true
		} else if sw, sh := c.surface.Size(); sw != w || sh != h {
			c.surface = style.NewSurface(w, h)
			c.renderDirty = true
		}

		if c.renderDirty {
			c.renderDirty = false
			c.surface.Clear()
			style.Render(c, c.surface, w, h)
		}
		surface.Blit(c.surface, c.rect.X, c.rect.Y)
	}
}
