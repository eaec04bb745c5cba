package layout

// Point is a cell position. Whether it is local to a panel or in root
// coordinates depends on where it came from; see Panel.ToWorld.
type Point struct {
	X, Y int
}

// Add offsets p by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the offset from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether p lies in r, using the half-open test of
// Rect.ContainsPoint.
func (p Point) In(r Rect) bool {
	return r.ContainsPoint(p)
}
