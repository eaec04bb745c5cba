package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Move returns a new Rect moved by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Shrink returns a new Rect with each side moved inward by the given amounts.
// Width and height are clamped at zero.
func (r Rect) Shrink(left, top, right, bottom int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(r.Width-left-right, 0),
		Height: max(r.Height-top-bottom, 0),
	}
}

// Expand returns a new Rect with each side moved outward by the given amounts.
// Width and height are clamped at zero.
func (r Rect) Expand(left, top, right, bottom int) Rect {
	return Rect{
		X:      r.X - left,
		Y:      r.Y - top,
		Width:  max(r.Width+left+right, 0),
		Height: max(r.Height+top+bottom, 0),
	}
}

// Inset returns a new Rect shrunk by the given Edges.
func (r Rect) Inset(e Edges) Rect {
	return r.Shrink(e.Left, e.Top, e.Right, e.Bottom)
}

// Outset returns a new Rect expanded by the given Edges.
func (r Rect) Outset(e Edges) Rect {
	return r.Expand(e.Left, e.Top, e.Right, e.Bottom)
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles share a positive area.
// Touching edges do not count as overlapping; identical non-empty rectangles do.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}
