package termstyle

import (
	"github.com/rs/zerolog"

	"github.com/grindlemire/go-desky"
)

// Provider draws panels into Buffers. It recognises the widgets of this
// package and divider grabbers; other panels draw nothing themselves.
type Provider struct {
	desky.BaseStyle

	theme Theme
	log   zerolog.Logger
}

var _ desky.Style = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(s *Provider) {
		s.theme = t
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Provider) {
		s.log = l
	}
}

// New creates a Provider with the default theme.
func New(opts ...Option) *Provider {
	s := &Provider{
		theme: DefaultTheme(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "termstyle").Logger()
	return s
}

// Theme returns the active theme.
func (s *Provider) Theme() Theme {
	return s.theme
}

// Setup gives frames without padding room for their border.
func (s *Provider) Setup(p *desky.Panel) {
	if _, ok := p.Widget().(*Frame); ok && p.Padding().IsZero() {
		p.SetPadding(desky.EdgeAll(1))
	}
	s.log.Debug().Uint64("panel", uint64(p.ID())).Str("kind", p.Kind()).Msg("setup")
}

// Layout measures auto-width labels, then applies the panel's layouter and
// lays out its children.
func (s *Provider) Layout(p *desky.Panel, width, height int) {
	if l, ok := p.Widget().(*Label); ok && l.AutoWidth() {
		p.SetWidth(TextWidth(l.Text.Get()) + p.Padding().Horizontal())
	}
	s.BaseStyle.Layout(p, width, height)
}

// Render draws p, then composes its children on top. Surfaces that are not
// Buffers are only composed.
func (s *Provider) Render(p *desky.Panel, surface desky.Surface, width, height int) {
	buf, ok := surface.(*Buffer)
	if !ok {
		s.BaseStyle.Render(p, surface, width, height)
		return
	}

	switch w := p.Widget().(type) {
	case *Frame:
		s.renderFrame(p, w, buf, width, height)
	case *Label:
		s.renderLabel(p, w, buf)
	case *Button:
		s.renderButton(w, buf, width, height)
	case *desky.Grabber:
		s.renderGrabber(w, buf, width, height)
	}

	p.RenderChildren(surface)
}

// NewSurface allocates a transparent Buffer.
func (s *Provider) NewSurface(width, height int) desky.Surface {
	return NewBuffer(width, height)
}

func (s *Provider) renderFrame(p *desky.Panel, f *Frame, buf *Buffer, width, height int) {
	depth := 0
	for q := p.Parent(); q != nil; q = q.Parent() {
		depth++
	}
	DrawBoxWithTitle(buf, desky.NewRect(0, 0, width, height), s.theme.Border,
		f.Title.Get(), s.theme.FrameStyle(depth), s.theme.Title)
}

func (s *Provider) renderLabel(p *desky.Panel, l *Label, buf *Buffer) {
	pad := p.Padding()
	inner := p.InnerRect()
	DrawText(buf, pad.Left, pad.Top, inner.Width, l.Text.Get(), s.theme.Text)
}

func (s *Provider) renderButton(b *Button, buf *Buffer, width, height int) {
	style := s.theme.Button
	switch b.State.Get() {
	case ButtonHover:
		style = s.theme.ButtonHover
	case ButtonPressed:
		style = s.theme.ButtonPressed
	}
	buf.Fill(desky.NewRect(0, 0, width, height), ' ', style)

	text := Truncate(b.Text.Get(), width)
	x := (width - TextWidth(text)) / 2
	buf.SetString(x, height/2, text, style)
}

func (s *Provider) renderGrabber(gr *desky.Grabber, buf *Buffer, width, height int) {
	style := s.theme.Grabber
	if gr.Hovered.Get() || gr.Dragging.Get() {
		style = s.theme.GrabberActive
	}
	r := '┼'
	switch {
	case gr.Horizontal() && !gr.Vertical():
		r = '│'
	case gr.Vertical() && !gr.Horizontal():
		r = '─'
	}
	buf.Fill(desky.NewRect(0, 0, width, height), r, style)
}
