package desky

import "fmt"

// DefaultDividerSize is the gutter thickness of a new AdjustableDivider.
const DefaultDividerSize = 8

// AdjustableDivider lays out content panels on a grid whose tracks can be
// resized by dragging the gutters between them.
//
// The underlying GridLayout has 2n-1 tracks per axis: content tracks at
// even indexes and gutters at odd ones. Every gutter cell, including each
// column/row intersection, holds a grabber panel.
type AdjustableDivider struct {
	panel   *Panel
	grid    *GridLayout
	columns int
	rows    int

	// DividerSize is the gutter thickness. Changing it requests layout.
	DividerSize Attr[int]

	grabbers []*Grabber

	// Track sizes captured when a drag starts; nil when idle.
	savedColumns []int
	savedRows    []int
}

var _ Layouter = (*AdjustableDivider)(nil)

// NewAdjustableDivider creates a divider panel with columns x rows content
// cells. opts apply to the divider panel.
func NewAdjustableDivider(g *Gui, columns, rows int, opts ...Option) *AdjustableDivider {
	if columns < 1 || rows < 1 {
		panic(fmt.Sprintf("desky: divider needs at least one column and row, got %dx%d", columns, rows))
	}
	d := &AdjustableDivider{
		grid:    NewGridLayout(columns*2-1, rows*2-1, 0),
		columns: columns,
		rows:    rows,
	}
	opts = append([]Option{WithKind("divider")}, opts...)
	opts = append(opts, WithWidget(d), WithLayouter(d))
	d.panel = g.Create(opts...)
	d.DividerSize = LayoutAttr(d.panel, DefaultDividerSize)
	d.createGrabbers()
	return d
}

// Panel returns the divider's own panel.
func (d *AdjustableDivider) Panel() *Panel { return d.panel }

// Grid returns the underlying grid.
func (d *AdjustableDivider) Grid() *GridLayout { return d.grid }

// Columns returns the number of content columns.
func (d *AdjustableDivider) Columns() int { return d.columns }

// Rows returns the number of content rows.
func (d *AdjustableDivider) Rows() int { return d.rows }

// Grabbers returns the grabbers: column gutters, then row gutters, then
// intersections.
func (d *AdjustableDivider) Grabbers() []*Grabber {
	return d.grabbers
}

// Dragging reports whether a drag is in progress.
func (d *AdjustableDivider) Dragging() bool {
	return d.savedColumns != nil
}

// Add parents p to the divider and places it in content cell (col, row).
func (d *AdjustableDivider) Add(p *Panel, col, row int) error {
	if err := d.grid.Add(p, col*2, row*2); err != nil {
		return err
	}
	p.SetParent(d.panel)
	return nil
}

// SetColumnSize pins content column col to a fixed width.
func (d *AdjustableDivider) SetColumnSize(col, size int) {
	d.SetColumnSizing(col, Fixed(size))
}

// SetRowSize pins content row row to a fixed height.
func (d *AdjustableDivider) SetRowSize(row, size int) {
	d.SetRowSizing(row, Fixed(size))
}

// SetColumnSizing sets the sizing of content column col.
func (d *AdjustableDivider) SetColumnSizing(col int, s Sizing) {
	d.grid.SetColumnSizing(col*2, s)
	d.panel.RequestLayout()
}

// SetRowSizing sets the sizing of content row row.
func (d *AdjustableDivider) SetRowSizing(row int, s Sizing) {
	d.grid.SetRowSizing(row*2, s)
	d.panel.RequestLayout()
}

// Layout sizes the gutters and lays out the grid.
func (d *AdjustableDivider) Layout(container *Panel) {
	size := d.DividerSize.Get()
	for c := 0; c < d.columns-1; c++ {
		d.grid.SetColumnSizing(c*2+1, Fixed(size))
	}
	for r := 0; r < d.rows-1; r++ {
		d.grid.SetRowSizing(r*2+1, Fixed(size))
	}
	d.grid.Layout(container)
}

func (d *AdjustableDivider) createGrabbers() {
	g := d.panel.gui
	place := func(col, row int, horizontal, vertical bool) {
		gr := newGrabber(g, d, col, row, horizontal, vertical)
		gr.panel.SetParent(d.panel)
		// Gutter cells are disjoint by construction.
		if err := d.grid.Add(gr.panel, gr.cellColumn(), gr.cellRow()); err != nil {
			panic(err)
		}
		d.grabbers = append(d.grabbers, gr)
	}

	for c := 0; c < d.columns-1; c++ {
		for r := 0; r < d.rows; r++ {
			place(c, r, true, false)
		}
	}
	for r := 0; r < d.rows-1; r++ {
		for c := 0; c < d.columns; c++ {
			place(c, r, false, true)
		}
	}
	for c := 0; c < d.columns-1; c++ {
		for r := 0; r < d.rows-1; r++ {
			place(c, r, true, true)
		}
	}
}

// adjust applies a drag delta to the content tracks before gutter
// (col, row). The first call of a drag snapshots the laid out sizes and
// pins every content track but the last to Fixed; final ends the drag.
func (d *AdjustableDivider) adjust(gr *Grabber, dx, dy int, final bool) {
	if d.savedColumns == nil {
		if d.grid.columnWidths == nil {
			return
		}
		d.savedColumns = d.grid.ColumnWidths()
		d.savedRows = d.grid.RowHeights()
		d.pin()
	}

	if gr.horizontal {
		i := gr.column * 2
		d.grid.SetColumnSizing(i, Fixed(max(d.savedColumns[i]+dx, 0)))
	}
	if gr.vertical {
		i := gr.row * 2
		d.grid.SetRowSizing(i, Fixed(max(d.savedRows[i]+dy, 0)))
	}

	if final {
		d.savedColumns = nil
		d.savedRows = nil
	}
	d.panel.RequestLayout()
}

func (d *AdjustableDivider) pin() {
	for c := 0; c < d.columns-1; c++ {
		d.grid.SetColumnSizing(c*2, Fixed(d.savedColumns[c*2]))
	}
	for r := 0; r < d.rows-1; r++ {
		d.grid.SetRowSizing(r*2, Fixed(d.savedRows[r*2]))
	}
	d.grid.SetColumnSizing(d.grid.Columns()-1, Fill())
	d.grid.SetRowSizing(d.grid.Rows()-1, Fill())
}

// Grabber is the draggable handle in one divider gutter. A column grabber
// resizes the content column to its left, a row grabber the content row
// above it, and an intersection grabber both.
type Grabber struct {
	panel   *Panel
	divider *AdjustableDivider

	column, row          int
	horizontal, vertical bool

	grabbing bool
	origin   Point

	// Hovered and Dragging drive the grabber's visual state.
	Hovered  Attr[bool]
	Dragging Attr[bool]
}

func newGrabber(g *Gui, d *AdjustableDivider, col, row int, horizontal, vertical bool) *Grabber {
	gr := &Grabber{
		divider:    d,
		column:     col,
		row:        row,
		horizontal: horizontal,
		vertical:   vertical,
	}
	gr.panel = g.Create(
		WithKind("divider_grabber"),
		WithWidget(gr),
		WithAcceptMouseInput(true),
		WithOnMousePress(gr.press),
		WithOnMouseMove(gr.move),
		WithOnMouseRelease(gr.release),
	)
	gr.Hovered = RenderAttr(gr.panel, false)
	gr.Dragging = RenderAttr(gr.panel, false)
	return gr
}

// Panel returns the grabber's panel.
func (gr *Grabber) Panel() *Panel { return gr.panel }

// Divider returns the owning divider.
func (gr *Grabber) Divider() *AdjustableDivider { return gr.divider }

// Column returns the content column the grabber follows.
func (gr *Grabber) Column() int { return gr.column }

// Row returns the content row the grabber follows.
func (gr *Grabber) Row() int { return gr.row }

// Horizontal reports whether the grabber resizes a column.
func (gr *Grabber) Horizontal() bool { return gr.horizontal }

// Vertical reports whether the grabber resizes a row.
func (gr *Grabber) Vertical() bool { return gr.vertical }

func (gr *Grabber) cellColumn() int {
	if gr.horizontal {
		return gr.column*2 + 1
	}
	return gr.column * 2
}

func (gr *Grabber) cellRow() int {
	if gr.vertical {
		return gr.row*2 + 1
	}
	return gr.row * 2
}

func (gr *Grabber) press(p *Panel, ev MouseEvent) {
	if !ev.Hover || ev.Button != MouseLeft {
		return
	}
	gr.grabbing = true
	gr.origin = p.ToWorld(ev.Pos())
	gr.Dragging.Set(true)
}

func (gr *Grabber) move(p *Panel, ev MouseEvent) {
	gr.Hovered.Set(ev.Hover)
	if !gr.grabbing {
		return
	}
	pos := p.ToWorld(ev.Pos())
	gr.divider.adjust(gr, pos.X-gr.origin.X, pos.Y-gr.origin.Y, false)
}

func (gr *Grabber) release(p *Panel, ev MouseEvent) {
	if !gr.grabbing {
		return
	}
	pos := p.ToWorld(ev.Pos())
	gr.divider.adjust(gr, pos.X-gr.origin.X, pos.Y-gr.origin.Y, true)
	gr.grabbing = false
	gr.Dragging.Set(false)
}
