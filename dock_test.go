package desky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockLayout_SingleSide(t *testing.T) {
	type tc struct {
		side   DockSide
		expect Rect
	}

	// Parent 200x300 with padding (2,3,4,5); child 33x44 with margins
	// (11,16,8,2). The inner area is (2,3,194,292).
	tests := map[string]tc{
		"top":    {side: DockTop, expect: NewRect(13, 19, 175, 44)},
		"bottom": {side: DockBottom, expect: NewRect(13, 249, 175, 44)},
		"left":   {side: DockLeft, expect: NewRect(13, 19, 33, 274)},
		"right":  {side: DockRight, expect: NewRect(155, 19, 33, 274)},
		"fill":   {side: DockFill, expect: NewRect(13, 19, 175, 274)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := newTestGui(t)
			parent := g.Create(
				WithSize(200, 300),
				WithPadding(EdgeLTRB(2, 3, 4, 5)),
				WithMargins(EdgeLTRB(20, 30, 40, 50)),
			)
			child := g.Create(
				WithSize(33, 44),
				WithPadding(EdgeLTRB(10, 8, 6, 4)),
				WithMargins(EdgeLTRB(11, 16, 8, 2)),
			)
			child.SetParent(parent)

			d := NewDockLayout()
			d.Dock(child, tt.side)
			d.Layout(parent)
			assert.Equal(t, tt.expect, child.Rect())

			parent.SetLayouter(d)
			require.NoError(t, g.Update(1000, 1000))
			assert.Equal(t, tt.expect, child.Rect())
			assert.False(t, child.LayoutDirty())

			// A repeated layout writes equal values and dirties nothing.
			d.Layout(parent)
			assert.False(t, child.LayoutDirty())
			assert.False(t, parent.LayoutDirty())
			assert.False(t, g.Root().LayoutDirty())
		})
	}
}

func TestDockLayout_TopThenFill(t *testing.T) {
	g := newTestGui(t)
	top := g.Create(WithSize(10, 44))
	fill := g.Create()

	d := NewDockLayout()
	d.DockTop(top)
	d.DockFill(fill)
	d.LayoutArea(NewRect(0, 0, 175, 274))

	assert.Equal(t, NewRect(0, 0, 175, 44), top.Rect())
	assert.Equal(t, NewRect(0, 44, 175, 230), fill.Rect())
}

func TestDockLayout_AllSides(t *testing.T) {
	g := newTestGui(t)
	left := g.Create(WithSize(10, 0))
	right := g.Create(WithSize(20, 0))
	top := g.Create(WithSize(0, 5))
	bottom := g.Create(WithSize(0, 15))
	fill := g.Create()

	d := NewDockLayout()
	d.DockLeft(left)
	d.DockRight(right)
	d.DockTop(top)
	d.DockBottom(bottom)
	d.DockFill(fill)
	require.Equal(t, 5, d.Len())
	d.LayoutArea(NewRect(0, 0, 100, 100))

	assert.Equal(t, NewRect(0, 0, 10, 100), left.Rect())
	assert.Equal(t, NewRect(80, 0, 20, 100), right.Rect())
	assert.Equal(t, NewRect(10, 0, 70, 5), top.Rect())
	assert.Equal(t, NewRect(10, 85, 70, 15), bottom.Rect())
	assert.Equal(t, NewRect(10, 5, 70, 80), fill.Rect())
}

func TestDockLayout_FillFirstStarvesLaterEntries(t *testing.T) {
	g := newTestGui(t)
	fill := g.Create()
	top := g.Create(WithSize(0, 200))
	left := g.Create(WithSize(30, 0))

	d := NewDockLayout()
	d.DockFill(fill)
	d.DockTop(top)
	d.DockLeft(left)
	d.LayoutArea(NewRect(0, 0, 100, 100))

	assert.Equal(t, NewRect(0, 0, 100, 100), fill.Rect())
	assert.Equal(t, NewRect(0, 0, 100, 200), top.Rect())
	assert.Equal(t, NewRect(0, 200, 30, 0), left.Rect())
}

func TestDockLayout_Remove(t *testing.T) {
	g := newTestGui(t)
	a := g.Create(WithSize(0, 10))
	b := g.Create(WithSize(0, 10))

	d := NewDockLayout()
	d.DockTop(a)
	d.DockTop(b)
	d.Remove(a)
	require.Equal(t, 1, d.Len())

	d.LayoutArea(NewRect(0, 0, 50, 50))
	assert.Equal(t, NewRect(0, 0, 50, 10), b.Rect())
	assert.Equal(t, NewRect(0, 0, 0, 10), a.Rect(), "removed entries are not placed")
}
