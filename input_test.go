package desky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHover(t *testing.T) {
	type tc struct {
		x, y   int
		expect string
	}

	// front and back overlap at (0,0)-(10,10); front was created last so
	// it sits at index 0. nested lives inside parent at local (5,5).
	tests := map[string]tc{
		"overlap resolves to first in list": {x: 5, y: 5, expect: "front"},
		"only back covers point":            {x: 12, y: 2, expect: "back"},
		"nested child in local space":       {x: 46, y: 46, expect: "nested"},
		"parent around nested child":        {x: 41, y: 41, expect: "parent"},
		"passive panel falls through":       {x: 75, y: 75, expect: "world"},
		"empty space is root":               {x: 99, y: 5, expect: "world"},
		"right edge is exclusive":           {x: 15, y: 2, expect: "world"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := newTestGui(t)
			g.Create(WithKind("back"), WithRect(NewRect(0, 0, 15, 10)), WithAcceptMouseInput(true))
			g.Create(WithKind("front"), WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true))
			parent := g.Create(WithKind("parent"), WithRect(NewRect(40, 40, 20, 20)), WithAcceptMouseInput(true))
			nested := g.Create(WithKind("nested"), WithRect(NewRect(5, 5, 5, 5)), WithAcceptMouseInput(true))
			nested.SetParent(parent)
			g.Create(WithKind("passive"), WithRect(NewRect(70, 70, 10, 10)))
			require.NoError(t, g.Update(100, 100))

			hover := g.FindHover(tt.x, tt.y)
			assert.Equal(t, tt.expect, hover.Kind())
			assert.Equal(t, hover, g.Hover())
		})
	}
}

func TestFindHover_FollowsMoveToFront(t *testing.T) {
	g := newTestGui(t)
	back := g.Create(WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true))
	front := g.Create(WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true))
	require.NoError(t, g.Update(100, 100))
	require.Equal(t, front, g.FindHover(5, 5))

	back.MoveToFront()
	require.NoError(t, g.Update(100, 100))
	assert.Equal(t, back, g.FindHover(5, 5))
}

func TestFindHover_PanicsWithoutCandidate(t *testing.T) {
	g := newTestGui(t)
	g.Root().SetAcceptMouseInput(false)
	assert.Panics(t, func() { g.FindHover(1, 1) })
}

func TestDispatch_MouseBroadcast(t *testing.T) {
	g := newTestGui(t)
	var order []string
	events := map[string]MouseEvent{}
	record := func(p *Panel, ev MouseEvent) {
		order = append(order, p.Kind())
		events[p.Kind()] = ev
	}

	outer := g.Create(WithKind("outer"), WithRect(NewRect(10, 20, 30, 30)), WithAcceptMouseInput(true), WithOnMouseMove(record))
	inner := g.Create(WithKind("inner"), WithRect(NewRect(20, 20, 4, 4)), WithAcceptMouseInput(true), WithOnMouseMove(record))
	inner.SetParent(outer)
	g.Create(WithKind("away"), WithRect(NewRect(80, 80, 5, 5)), WithOnMouseMove(record))
	g.Root().OnMouseMove(record)
	require.NoError(t, g.Update(100, 100))

	g.Dispatch(RawMouseMotion{X: 15, Y: 25, RelX: 1, RelY: -2})

	// Every panel hears the event, children before parents.
	assert.Equal(t, []string{"away", "inner", "outer", "world"}, order)

	assert.Equal(t, MouseEvent{Gui: g, X: 5, Y: 5, Inside: true, Hover: true, DeltaX: 1, DeltaY: -2}, events["outer"])
	assert.Equal(t, MouseEvent{Gui: g, X: -15, Y: -15, Inside: false, DeltaX: 1, DeltaY: -2}, events["inner"])
	assert.Equal(t, MouseEvent{Gui: g, X: -65, Y: -55, Inside: false, DeltaX: 1, DeltaY: -2}, events["away"])
	assert.Equal(t, MouseEvent{Gui: g, X: 15, Y: 25, Inside: true, DeltaX: 1, DeltaY: -2}, events["world"])
	assert.Equal(t, Point{X: 15, Y: 25}, g.Pointer())
}

func TestDispatch_Click(t *testing.T) {
	type tc struct {
		press, release Point
		pressButton    MouseButton
		releaseButton  MouseButton
		expectClicks   int
	}

	tests := map[string]tc{
		"press and release on target": {
			press: Point{X: 5, Y: 5}, release: Point{X: 6, Y: 6},
			pressButton: MouseLeft, releaseButton: MouseLeft,
			expectClicks: 1,
		},
		"moving off before release cancels": {
			press: Point{X: 5, Y: 5}, release: Point{X: 25, Y: 5},
			pressButton: MouseLeft, releaseButton: MouseLeft,
			expectClicks: 0,
		},
		"buttons track presses independently": {
			press: Point{X: 5, Y: 5}, release: Point{X: 5, Y: 5},
			pressButton: MouseLeft, releaseButton: MouseRight,
			expectClicks: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := newTestGui(t)
			clicks := 0
			releases := 0
			target := g.Create(
				WithRect(NewRect(0, 0, 10, 10)),
				WithAcceptMouseInput(true),
				WithOnMouseClick(func(_ *Panel, ev MouseEvent) {
					clicks++
					assert.True(t, ev.Hover)
				}),
				WithOnMouseRelease(func(*Panel, MouseEvent) { releases++ }),
			)
			g.Create(WithRect(NewRect(20, 0, 10, 10)), WithAcceptMouseInput(true))
			require.NoError(t, g.Update(100, 100))

			g.Dispatch(RawMouseButtonDown{X: tt.press.X, Y: tt.press.Y, Button: tt.pressButton})
			assert.Equal(t, target, g.Focus())
			g.Dispatch(RawMouseButtonUp{X: tt.release.X, Y: tt.release.Y, Button: tt.releaseButton})

			assert.Equal(t, 1, releases)
			assert.Equal(t, tt.expectClicks, clicks)
		})
	}
}

func TestDispatch_ReleaseBeforeClick(t *testing.T) {
	g := newTestGui(t)
	var seen []string
	g.Create(
		WithRect(NewRect(0, 0, 10, 10)),
		WithAcceptMouseInput(true),
		WithOnMouseRelease(func(*Panel, MouseEvent) { seen = append(seen, "release") }),
		WithOnMouseClick(func(*Panel, MouseEvent) { seen = append(seen, "click") }),
	)
	require.NoError(t, g.Update(100, 100))

	g.Dispatch(RawMouseButtonDown{X: 1, Y: 1, Button: MouseLeft})
	g.Dispatch(RawMouseButtonUp{X: 1, Y: 1, Button: MouseLeft})
	assert.Equal(t, []string{"release", "click"}, seen)
}

func TestDispatch_PressReordersAtNextUpdate(t *testing.T) {
	g := newTestGui(t)
	var pressOrder []PanelID
	a := g.Create(WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true))
	b := g.Create(WithRect(NewRect(20, 0, 10, 10)), WithAcceptMouseInput(true))
	g.Root().OnMousePress(func(p *Panel, _ MouseEvent) {
		pressOrder = ids(p.Children())
	})
	require.NoError(t, g.Update(100, 100))

	g.Dispatch(RawMouseButtonDown{X: 1, Y: 1, Button: MouseLeft})
	assert.Equal(t, []PanelID{b.ID(), a.ID()}, pressOrder, "press sees the order before its own reorder")
	assert.Equal(t, a, g.Focus())

	require.NoError(t, g.Update(100, 100))
	assert.Equal(t, []PanelID{a.ID(), b.ID()}, ids(g.Root().Children()))
}

func TestDispatch_KeyFlags(t *testing.T) {
	g := newTestGui(t)
	got := map[PanelID]KeyEvent{}
	record := func(p *Panel, ev KeyEvent) { got[p.ID()] = ev }

	a := g.Create(WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true), WithOnKeyPress(record))
	b := g.Create(WithRect(NewRect(20, 0, 10, 10)), WithAcceptMouseInput(true), WithOnKeyPress(record))
	require.NoError(t, g.Update(100, 100))

	g.Dispatch(RawMouseButtonDown{X: 1, Y: 1, Button: MouseLeft})
	g.Dispatch(RawMouseButtonUp{X: 1, Y: 1, Button: MouseLeft})
	g.Dispatch(RawMouseMotion{X: 21, Y: 1})
	g.Dispatch(RawKeyDown{Key: KeyRune, Rune: 'q', Mod: ModCtrl})

	require.Len(t, got, 2)
	assert.True(t, got[a.ID()].Focus)
	assert.False(t, got[a.ID()].Hover)
	assert.False(t, got[b.ID()].Focus)
	assert.True(t, got[b.ID()].Hover)
	assert.Equal(t, 'q', got[b.ID()].Char())
	assert.True(t, got[b.ID()].Mod.Has(ModCtrl))
}

func TestDispatch_RemovedHoverResetsToRoot(t *testing.T) {
	g := newTestGui(t)
	a := g.Create(WithRect(NewRect(0, 0, 10, 10)), WithAcceptMouseInput(true))
	require.NoError(t, g.Update(100, 100))

	g.Dispatch(RawMouseButtonDown{X: 1, Y: 1, Button: MouseLeft})
	require.Equal(t, a, g.Hover())
	require.Equal(t, a, g.Focus())

	a.Remove()
	require.NoError(t, g.Update(100, 100))
	assert.Equal(t, g.Root(), g.Hover())
	assert.Nil(t, g.Focus())
}
