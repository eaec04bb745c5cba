// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package desky

import "github.com/grindlemire/go-desky/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Point represents an (X, Y) coordinate.
type Point = layout.Point

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeLTRB creates Edges in left, top, right, bottom order.
func EdgeLTRB(l, t, r, b int) Edges {
	return layout.EdgeLTRB(l, t, r, b)
}
