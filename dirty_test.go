package desky

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// chain builds root -> a -> b -> c and leaves every flag clean.
func chain(t *testing.T) (*Gui, *Panel, *Panel, *Panel) {
	t.Helper()
	g := newTestGui(t)
	a := g.Create(WithSize(50, 50))
	b := g.Create(WithSize(40, 40))
	c := g.Create(WithSize(30, 30))
	b.SetParent(a)
	c.SetParent(b)
	settleGui(t, g, 100, 100)
	return g, a, b, c
}

func TestDirty_CleanAfterTick(t *testing.T) {
	g, a, b, c := chain(t)
	for _, p := range []*Panel{g.Root(), a, b, c} {
		assert.False(t, p.LayoutDirty(), "layout dirty on %s %d", p.Kind(), p.ID())
		assert.False(t, p.RenderDirty(), "render dirty on %s %d", p.Kind(), p.ID())
		assert.False(t, p.SetupDirty(), "setup dirty on %s %d", p.Kind(), p.ID())
	}
}

func TestDirty_RequestPropagation(t *testing.T) {
	type tc struct {
		request      func(c *Panel)
		expectLayout bool
	}

	tests := map[string]tc{
		"render reaches root without layout": {
			request:      (*Panel).RequestRender,
			expectLayout: false,
		},
		"layout reaches root and implies render": {
			request:      (*Panel).RequestLayout,
			expectLayout: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, a, b, c := chain(t)
			tt.request(c)
			for _, p := range []*Panel{c, b, a, g.Root()} {
				assert.True(t, p.RenderDirty())
				assert.Equal(t, tt.expectLayout, p.LayoutDirty())
			}
		})
	}
}

func TestDirty_StopsAtDirtyAncestor(t *testing.T) {
	g, a, b, c := chain(t)

	b.renderDirty = true
	c.RequestRender()
	assert.True(t, c.RenderDirty())
	assert.False(t, a.RenderDirty())
	assert.False(t, g.Root().RenderDirty())

	b.layoutDirty = true
	c.RequestLayout()
	assert.True(t, c.LayoutDirty())
	assert.False(t, a.LayoutDirty())
	assert.False(t, g.Root().LayoutDirty())
}

func TestDirty_GeometryWrites(t *testing.T) {
	type tc struct {
		write       func(p *Panel)
		expectDirty bool
	}

	tests := map[string]tc{
		"equal rect": {
			write:       func(p *Panel) { p.SetRect(p.Rect()) },
			expectDirty: false,
		},
		"equal size": {
			write:       func(p *Panel) { p.SetSize(p.Width(), p.Height()) },
			expectDirty: false,
		},
		"equal margins": {
			write:       func(p *Panel) { p.SetMargins(p.Margins()) },
			expectDirty: false,
		},
		"equal outer rect": {
			write:       func(p *Panel) { p.SetOuterRect(p.OuterRect()) },
			expectDirty: false,
		},
		"new width": {
			write:       func(p *Panel) { p.SetWidth(p.Width() + 1) },
			expectDirty: true,
		},
		"new position": {
			write:       func(p *Panel) { p.SetPos(3, 4) },
			expectDirty: true,
		},
		"new padding": {
			write:       func(p *Panel) { p.SetPadding(EdgeAll(1)) },
			expectDirty: true,
		},
		"new inner rect": {
			write:       func(p *Panel) { p.SetInnerRect(NewRect(1, 1, 5, 5)) },
			expectDirty: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, a, b, c := chain(t)
			tt.write(c)
			for _, p := range []*Panel{c, b, a, g.Root()} {
				assert.Equal(t, tt.expectDirty, p.LayoutDirty())
			}
		})
	}
}

func TestDirty_Attr(t *testing.T) {
	g, a, b, c := chain(t)

	text := LayoutAttr(c, "hello")
	assert.False(t, text.Set("hello"))
	assert.False(t, g.Root().LayoutDirty())

	assert.True(t, text.Set("world"))
	assert.Equal(t, "world", text.Get())
	assert.True(t, a.LayoutDirty())
	assert.True(t, g.Root().LayoutDirty())

	settleGui(t, g, 100, 100)

	pressed := RenderAttr(b, false)
	assert.True(t, pressed.Set(true))
	assert.True(t, b.RenderDirty())
	assert.True(t, g.Root().RenderDirty())
	assert.False(t, b.LayoutDirty())
	assert.False(t, c.RenderDirty())
}

func TestDirty_RequestSetupRunsBeforeLayout(t *testing.T) {
	m := newMockStyle()
	g := newTestGui(t, WithStyle(m))

	p := g.Create()
	m.AssertNumberOfCalls(t, "Setup", 1)
	m.AssertCalled(t, "Setup", p)

	settleGui(t, g, 10, 10)
	// The root is set up on the first pass.
	m.AssertNumberOfCalls(t, "Setup", 2)
	assert.False(t, p.SetupDirty())

	p.RequestSetup()
	assert.True(t, p.SetupDirty())
	assert.True(t, p.LayoutDirty())

	settleGui(t, g, 10, 10)
	m.AssertNumberOfCalls(t, "Setup", 3)
	assert.False(t, p.SetupDirty())
}
