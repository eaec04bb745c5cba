// Package desky is a retained-mode panel toolkit core.
//
// A [Gui] owns a tree of [Panel] nodes stored in an arena and addressed by
// stable handles. Panels carry a rectangle, margins and padding plus three
// dirty flags (setup, layout, render) that propagate towards the root.
// Structural changes (attach, reparent, remove, move to front or back) are
// queued and applied once per tick so traversal code never sees a half
// mutated tree.
//
// One tick of the embedding application looks like:
//
//	gui.Dispatch(desky.RawMouseMotion{X: x, Y: y})  // zero or more events
//	if err := gui.Tick(width, height, screen); err != nil {
//	    // layout did not converge
//	}
//
// Tick drains the queues, runs the bounded layout fixed point and renders.
// Pixel work and text measurement belong to a [Style] provider; the core only
// decides order, geometry and invalidation.
//
// Two layout managers are provided: [DockLayout] stacks panels against the
// edges of a shrinking area, and [GridLayout] sizes columns and rows with six
// strategies and exact remainder reconciliation. [AdjustableDivider] builds
// draggable gutters on top of a grid.
//
// Children order encodes stacking: index 0 is the front-most child. It is
// rendered last and wins hover resolution.
package desky
