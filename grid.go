package desky

import (
	"fmt"
	"slices"
)

type gridCell struct {
	span  Rect
	panel *Panel
}

// GridLayout arranges panels on a grid of columns and rows. Each track has
// a Sizing; a panel occupies a rectangular span of cells that may not
// overlap another panel's span.
//
// Spans are expressed as a Rect in cell units: X and Y are the column and
// row, Width and Height are the column and row span.
type GridLayout struct {
	columns []Sizing
	rows    []Sizing
	spacing int

	cells []gridCell

	columnWidths []int
	rowHeights   []int
}

var _ Layouter = (*GridLayout)(nil)

// NewGridLayout creates a grid with every track sized Even. spacing is the
// gap between adjacent tracks and is never applied at the outer edges.
func NewGridLayout(columns, rows, spacing int) *GridLayout {
	if columns < 1 || rows < 1 {
		panic(fmt.Sprintf("desky: grid needs at least one column and row, got %dx%d", columns, rows))
	}
	return &GridLayout{
		columns: make([]Sizing, columns),
		rows:    make([]Sizing, rows),
		spacing: max(spacing, 0),
	}
}

// Columns returns the column count.
func (g *GridLayout) Columns() int { return len(g.columns) }

// Rows returns the row count.
func (g *GridLayout) Rows() int { return len(g.rows) }

// Spacing returns the gap between adjacent tracks.
func (g *GridLayout) Spacing() int { return g.spacing }

// SetSpacing changes the gap between adjacent tracks.
func (g *GridLayout) SetSpacing(spacing int) {
	g.spacing = max(spacing, 0)
}

// SetColumnSizing replaces the sizing of a column. Panics if col is out of
// range.
func (g *GridLayout) SetColumnSizing(col int, s Sizing) {
	g.columns[col] = s
}

// SetRowSizing replaces the sizing of a row. Panics if row is out of range.
func (g *GridLayout) SetRowSizing(row int, s Sizing) {
	g.rows[row] = s
}

// ColumnSizing returns the sizing of a column.
func (g *GridLayout) ColumnSizing(col int) Sizing {
	return g.columns[col]
}

// RowSizing returns the sizing of a row.
func (g *GridLayout) RowSizing(row int) Sizing {
	return g.rows[row]
}

// ColumnWidths returns the track widths computed by the last layout.
func (g *GridLayout) ColumnWidths() []int {
	return slices.Clone(g.columnWidths)
}

// RowHeights returns the track heights computed by the last layout.
func (g *GridLayout) RowHeights() []int {
	return slices.Clone(g.rowHeights)
}

// Add assigns p to the single cell at (col, row).
func (g *GridLayout) Add(p *Panel, col, row int) error {
	return g.AddRect(p, NewRect(col, row, 1, 1))
}

// AddSpan assigns p to a span of cells starting at (col, row).
func (g *GridLayout) AddSpan(p *Panel, col, row, colSpan, rowSpan int) error {
	return g.AddRect(p, NewRect(col, row, colSpan, rowSpan))
}

// AddRect assigns p to span. The span must lie within the grid and must
// not overlap an existing assignment.
func (g *GridLayout) AddRect(p *Panel, span Rect) error {
	if span.Width < 1 || span.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSpan, span.Width, span.Height)
	}
	if span.X < 0 || span.Y < 0 || span.Right() > len(g.columns) || span.Bottom() > len(g.rows) {
		return fmt.Errorf("%w: span (%d,%d %dx%d) in %dx%d grid",
			ErrCellOutOfBounds, span.X, span.Y, span.Width, span.Height, len(g.columns), len(g.rows))
	}
	if !g.AreaEmpty(span) {
		return fmt.Errorf("%w: span (%d,%d %dx%d)", ErrCellOverlap, span.X, span.Y, span.Width, span.Height)
	}
	g.cells = append(g.cells, gridCell{span: span, panel: p})
	return nil
}

// AreaEmpty reports whether no assignment intersects span.
func (g *GridLayout) AreaEmpty(span Rect) bool {
	for _, c := range g.cells {
		if c.span.Intersects(span) {
			return false
		}
	}
	return true
}

// PanelAt returns the panel whose span covers (col, row), or nil.
func (g *GridLayout) PanelAt(col, row int) *Panel {
	for _, c := range g.cells {
		if c.span.Contains(col, row) {
			return c.panel
		}
	}
	return nil
}

// Remove drops the assignment of p. Reports whether p was assigned.
func (g *GridLayout) Remove(p *Panel) bool {
	n := len(g.cells)
	g.cells = slices.DeleteFunc(g.cells, func(c gridCell) bool {
		return c.panel == p
	})
	return len(g.cells) != n
}

// Clear drops every assignment. With removePanels the assigned panels are
// also marked for deletion.
func (g *GridLayout) Clear(removePanels bool) {
	if removePanels {
		for _, c := range g.cells {
			if !c.panel.freed {
				c.panel.Remove()
			}
		}
	}
	g.cells = nil
}

// Len returns the number of assignments.
func (g *GridLayout) Len() int {
	return len(g.cells)
}

// WidestChildInColumn returns the largest per-column share of outer width
// among the panels whose span includes col. A panel spanning n columns
// contributes (outer width - (n-1)*spacing) / n.
func (g *GridLayout) WidestChildInColumn(col int) int {
	track := NewRect(col, 0, 1, len(g.rows))
	widest := 0
	for _, c := range g.cells {
		if c.panel.freed || !c.span.Intersects(track) {
			continue
		}
		share := (c.panel.OuterRect().Width - (c.span.Width-1)*g.spacing) / c.span.Width
		widest = max(widest, share)
	}
	return widest
}

// TallestChildInRow returns the largest per-row share of outer height among
// the panels whose span includes row.
func (g *GridLayout) TallestChildInRow(row int) int {
	track := NewRect(0, row, len(g.columns), 1)
	tallest := 0
	for _, c := range g.cells {
		if c.panel.freed || !c.span.Intersects(track) {
			continue
		}
		share := (c.panel.OuterRect().Height - (c.span.Height-1)*g.spacing) / c.span.Height
		tallest = max(tallest, share)
	}
	return tallest
}

// Layout places the assigned panels inside container's inner area, in
// container-local coordinates.
func (g *GridLayout) Layout(container *Panel) {
	g.LayoutArea(container.InnerRect().Move(-container.X(), -container.Y()))
}

// LayoutArea computes track sizes for area and sets every assigned panel's
// outer rect to the union of its spanned cells.
func (g *GridLayout) LayoutArea(area Rect) {
	usable := area.Shrink(0, 0, (len(g.columns)-1)*g.spacing, (len(g.rows)-1)*g.spacing)

	g.columnWidths = computeTracks(g.columns, usable.Width, g.WidestChildInColumn)
	g.rowHeights = computeTracks(g.rows, usable.Height, g.TallestChildInRow)

	for _, c := range g.cells {
		if c.panel.freed {
			continue
		}
		x, w := g.place(area.X, g.columnWidths, c.span.X, c.span.Width)
		y, h := g.place(area.Y, g.rowHeights, c.span.Y, c.span.Height)
		c.panel.SetOuterRect(NewRect(x, y, w, h))
	}
}

// place returns the offset and extent of a span of tracks.
func (g *GridLayout) place(origin int, sizes []int, start, span int) (int, int) {
	pos := origin + start*g.spacing
	for _, s := range sizes[:start] {
		pos += s
	}
	extent := (span - 1) * g.spacing
	for _, s := range sizes[start : start+span] {
		extent += s
	}
	return pos, extent
}
