package desky

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutDiverged is returned when a panel keeps re-requesting layout
	// past the iteration ceiling.
	ErrLayoutDiverged = errors.New("layout did not converge")

	// ErrCellOutOfBounds is returned when a grid span leaves the declared grid.
	ErrCellOutOfBounds = errors.New("cell span out of grid bounds")

	// ErrCellOverlap is returned when a grid span overlaps an existing assignment.
	ErrCellOverlap = errors.New("cell span overlaps existing assignment")

	// ErrInvalidSpan is returned for spans with a non-positive column or row count.
	ErrInvalidSpan = errors.New("cell span must cover at least one column and row")
)

// LayoutError reports a panel whose layout fixed point hit the iteration ceiling.
type LayoutError struct {
	Panel      PanelID
	Kind       string
	Iterations int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("panel %d (%s): %v after %d iterations", e.Panel, e.Kind, ErrLayoutDiverged, e.Iterations)
}

func (e *LayoutError) Unwrap() error {
	return ErrLayoutDiverged
}
