// Package layout holds the geometry value types shared by panels and layout
// managers: [Rect], [Edges] and [Point].
//
// Rectangles are half-open: a Rect covers x in [X, X+Width) and y in
// [Y, Y+Height). Shrinking and expanding never produce a negative size.
// Types are re-exported through the root desky package for public consumption.
package layout
