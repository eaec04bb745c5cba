package desky

import "slices"

// --- Tree structure ---
//
// Structural changes never touch a live children list directly. They are
// queued on the relevant panel and applied by Gui.Update, so event
// dispatch, layout and render can iterate children safely.

// Parent returns the parent panel, or nil for the root and freed panels.
// A newly created panel reports the root until it is reparented.
func (p *Panel) Parent() *Panel {
	if p.parent == 0 {
		return nil
	}
	return p.gui.panels[p.parent]
}

// Children returns the live children, front-most first.
func (p *Panel) Children() []*Panel {
	result := make([]*Panel, 0, len(p.children))
	for _, id := range p.children {
		if c := p.gui.panels[id]; c != nil {
			result = append(result, c)
		}
	}
	return result
}

// ChildCount returns the number of live children.
func (p *Panel) ChildCount() int {
	return len(p.children)
}

// IndexOf returns the position of child in p's live children, or -1.
func (p *Panel) IndexOf(child *Panel) int {
	return slices.Index(p.children, child.id)
}

// IsAncestorOf reports whether p is a strict ancestor of other.
func (p *Panel) IsAncestorOf(other *Panel) bool {
	for q := other.Parent(); q != nil; q = q.Parent() {
		if q == p {
			return true
		}
	}
	return false
}

// SetParent queues p to move under parent at the next Update, where it
// becomes parent's front-most child. If parent redirects its children with
// SetChildHost, the host receives p instead. A pending move to another
// parent is cancelled first.
func (p *Panel) SetParent(parent *Panel) {
	if parent == nil {
		panic("desky: SetParent with nil parent; use Remove to delete a panel")
	}
	if p == p.gui.root {
		panic("desky: the root panel cannot be reparented")
	}
	for parent.childHost != 0 {
		host := p.gui.panels[parent.childHost]
		if host == nil {
			break
		}
		parent = host
	}
	if parent == p {
		panic("desky: panel cannot be its own parent")
	}

	if p.queuedAt == parent.id {
		return
	}
	if p.pendingAncestorOf(parent) {
		p.gui.log.Warn().
			Uint64("panel", uint64(p.id)).
			Uint64("parent", uint64(parent.id)).
			Msg("ignoring reparent under own descendant")
		return
	}
	p.dequeue()
	if p.parent == parent.id && p.attached() {
		return
	}
	parent.enqueueChild(p)
	parent.RequestLayout()
}

// SetChildHost redirects panels later parented to p into host.
// Pass nil to remove the redirect. It panics if host already redirects,
// directly or through other hosts, back into p.
func (p *Panel) SetChildHost(host *Panel) {
	if host == nil {
		p.childHost = 0
		return
	}
	for q := host; q != nil; q = p.gui.panels[q.childHost] {
		if q == p {
			panic("desky: child host chain loops back to the panel")
		}
		if q.childHost == 0 {
			break
		}
	}
	p.childHost = host.id
}

// pendingAncestorOf reports whether p is an ancestor of other once all
// queued reparents are applied.
func (p *Panel) pendingAncestorOf(other *Panel) bool {
	for q, n := other, 0; q != nil && n <= len(p.gui.panels); n++ {
		if q == p {
			return true
		}
		next := q.parent
		if q.queuedAt != 0 {
			next = q.queuedAt
		}
		if next == 0 {
			return false
		}
		q = p.gui.panels[next]
	}
	return false
}

// Remove marks p for deletion. At the next Update p and its whole subtree
// are dropped from the tree and the arena.
func (p *Panel) Remove() {
	if p == p.gui.root {
		panic("desky: the root panel cannot be removed")
	}
	if p.removed {
		return
	}
	p.removed = true
	p.RequestLayout()
}

// Removed reports whether p is marked for deletion.
func (p *Panel) Removed() bool {
	return p.removed
}

// MoveToFront queues p to become its parent's first child. After SetParent
// in the same tick the move applies to the new parent.
func (p *Panel) MoveToFront() {
	p.queueMove(true)
}

// MoveToBack queues p to become its parent's last child.
func (p *Panel) MoveToBack() {
	p.queueMove(false)
}

func (p *Panel) queueMove(toFront bool) {
	parent := p.Parent()
	if p.queuedAt != 0 {
		parent = p.gui.panels[p.queuedAt]
	}
	if parent == nil {
		return
	}
	parent.moveQueue = append(parent.moveQueue, move{child: p.id, toFront: toFront})
	parent.RequestLayout()
}

func (p *Panel) enqueueChild(child *Panel) {
	p.childQueue = append(p.childQueue, child.id)
	child.queuedAt = p.id
}

// dequeue cancels a pending SetParent.
func (p *Panel) dequeue() {
	if p.queuedAt == 0 {
		return
	}
	if host := p.gui.panels[p.queuedAt]; host != nil {
		host.childQueue = slices.DeleteFunc(host.childQueue, func(id PanelID) bool {
			return id == p.id
		})
	}
	p.queuedAt = 0
}

// attached reports whether p is in its parent's live children.
func (p *Panel) attached() bool {
	if p == p.gui.root {
		return true
	}
	parent := p.Parent()
	return parent != nil && slices.Contains(parent.children, p.id)
}

func (p *Panel) removeChild(id PanelID) bool {
	i := slices.Index(p.children, id)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	return true
}
