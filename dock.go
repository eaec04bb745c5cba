package desky

// DockSide selects the edge a docked panel is stacked against.
type DockSide int

const (
	// DockTop stacks against the top edge using the panel's outer height.
	DockTop DockSide = iota
	// DockBottom stacks against the bottom edge using the panel's outer height.
	DockBottom
	// DockLeft stacks against the left edge using the panel's outer width.
	DockLeft
	// DockRight stacks against the right edge using the panel's outer width.
	DockRight
	// DockFill takes whatever area remains.
	DockFill
)

func (s DockSide) String() string {
	switch s {
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockFill:
		return "fill"
	default:
		return "unknown"
	}
}

type dockEntry struct {
	panel *Panel
	side  DockSide
}

// DockLayout stacks panels against successive edges of a shrinking area.
// Entries are processed in insertion order. Docking a Fill panel before
// others leaves the later ones with a zero-area remainder.
type DockLayout struct {
	entries []dockEntry
}

var _ Layouter = (*DockLayout)(nil)

// NewDockLayout creates an empty DockLayout.
func NewDockLayout() *DockLayout {
	return &DockLayout{}
}

// Dock appends p with the given side.
func (d *DockLayout) Dock(p *Panel, side DockSide) {
	d.entries = append(d.entries, dockEntry{panel: p, side: side})
}

// DockTop appends p against the top edge.
func (d *DockLayout) DockTop(p *Panel) { d.Dock(p, DockTop) }

// DockBottom appends p against the bottom edge.
func (d *DockLayout) DockBottom(p *Panel) { d.Dock(p, DockBottom) }

// DockLeft appends p against the left edge.
func (d *DockLayout) DockLeft(p *Panel) { d.Dock(p, DockLeft) }

// DockRight appends p against the right edge.
func (d *DockLayout) DockRight(p *Panel) { d.Dock(p, DockRight) }

// DockFill appends p to take the remaining area.
func (d *DockLayout) DockFill(p *Panel) { d.Dock(p, DockFill) }

// Remove drops every entry for p. The panel itself is untouched.
func (d *DockLayout) Remove(p *Panel) {
	kept := d.entries[:0]
	for _, e := range d.entries {
		if e.panel != p {
			kept = append(kept, e)
		}
	}
	d.entries = kept
}

// Len returns the number of entries.
func (d *DockLayout) Len() int {
	return len(d.entries)
}

// Layout places the docked panels inside container's inner area, in
// container-local coordinates.
func (d *DockLayout) Layout(container *Panel) {
	d.LayoutArea(container.InnerRect().Move(-container.X(), -container.Y()))
}

// LayoutArea places the docked panels inside area.
func (d *DockLayout) LayoutArea(area Rect) {
	for _, e := range d.entries {
		if e.panel.freed {
			continue
		}
		outer := e.panel.OuterRect()
		switch e.side {
		case DockTop:
			e.panel.SetOuterRect(NewRect(area.X, area.Y, area.Width, outer.Height))
			area = area.Shrink(0, outer.Height, 0, 0)
		case DockBottom:
			e.panel.SetOuterRect(NewRect(area.X, area.Bottom()-outer.Height, area.Width, outer.Height))
			area = area.Shrink(0, 0, 0, outer.Height)
		case DockLeft:
			e.panel.SetOuterRect(NewRect(area.X, area.Y, outer.Width, area.Height))
			area = area.Shrink(outer.Width, 0, 0, 0)
		case DockRight:
			e.panel.SetOuterRect(NewRect(area.Right()-outer.Width, area.Y, outer.Width, area.Height))
			area = area.Shrink(0, 0, outer.Width, 0)
		case DockFill:
			e.panel.SetOuterRect(area)
		}
	}
}
