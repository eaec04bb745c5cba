package desky

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGui(t *testing.T, opts ...GuiOption) *Gui {
	t.Helper()
	g, err := New(opts...)
	require.NoError(t, err)
	return g
}

// settleGui runs one scheduler pass and one render pass so every flag ends
// clean.
func settleGui(t *testing.T, g *Gui, width, height int) {
	t.Helper()
	require.NoError(t, g.Update(width, height))
	g.Render(g.Style().NewSurface(width, height))
}

func ids(panels []*Panel) []PanelID {
	out := make([]PanelID, len(panels))
	for i, p := range panels {
		out[i] = p.ID()
	}
	return out
}

// mockStyle records provider calls and delegates to BaseStyle so the core
// recursion still happens.
type mockStyle struct {
	mock.Mock
}

func newMockStyle() *mockStyle {
	m := &mockStyle{}
	m.On("Setup", mock.Anything).Return()
	m.On("Layout", mock.Anything, mock.Anything, mock.Anything).Return()
	m.On("Render", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return m
}

func (m *mockStyle) Setup(p *Panel) {
	m.Called(p)
}

func (m *mockStyle) Layout(p *Panel, width, height int) {
	m.Called(p, width, height)
	BaseStyle{}.Layout(p, width, height)
}

func (m *mockStyle) Render(p *Panel, surface Surface, width, height int) {
	m.Called(p, surface, width, height)
	BaseStyle{}.Render(p, surface, width, height)
}

func (m *mockStyle) NewSurface(width, height int) Surface {
	return BaseStyle{}.NewSurface(width, height)
}

// countingLayouter re-requests layout on its container for the first
// redirty calls.
type countingLayouter struct {
	calls   int
	redirty int
}

func (l *countingLayouter) Layout(container *Panel) {
	l.calls++
	if l.redirty < 0 || l.calls <= l.redirty {
		container.RequestLayout()
	}
}

// recordingSurface remembers blit positions in call order.
type recordingSurface struct {
	width, height int
	blits         []Point
	clears        int
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }
func (s *recordingSurface) Clear()           { s.clears++ }
func (s *recordingSurface) Blit(_ Surface, x, y int) {
	s.blits = append(s.blits, Point{X: x, Y: y})
}
