package termstyle

import "github.com/charmbracelet/lipgloss"

// Palette is the set of base colours a Theme is built from, as hex strings.
type Palette struct {
	Background string `mapstructure:"background" yaml:"background" json:"background"`
	Surface    string `mapstructure:"surface" yaml:"surface" json:"surface"`
	Text       string `mapstructure:"text" yaml:"text" json:"text"`
	Muted      string `mapstructure:"muted" yaml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" yaml:"accent" json:"accent"`
	Border     string `mapstructure:"border" yaml:"border" json:"border"`
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#555555",
	}
}

// Theme holds the border glyphs and cell styles the provider draws with.
type Theme struct {
	Border lipgloss.Border

	Text  Style
	Muted Style
	Title Style

	// Frames colours frame borders by nesting depth, cycling.
	Frames []Style

	Button        Style
	ButtonHover   Style
	ButtonPressed Style

	Grabber       Style
	GrabberActive Style
}

// NewTheme derives a Theme from a palette.
func NewTheme(p Palette) Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)
	border := lipgloss.Color(p.Border)
	surface := lipgloss.Color(p.Surface)
	background := lipgloss.Color(p.Background)

	return Theme{
		Border: lipgloss.RoundedBorder(),

		Text:  Style{Fg: text},
		Muted: Style{Fg: muted},
		Title: Style{Fg: accent, Bold: true},

		Frames: []Style{
			{Fg: border},
			{Fg: accent},
			{Fg: muted},
		},

		Button:        Style{Fg: text, Bg: surface},
		ButtonHover:   Style{Fg: background, Bg: accent},
		ButtonPressed: Style{Fg: accent, Bg: surface, Bold: true},

		Grabber:       Style{Fg: border},
		GrabberActive: Style{Fg: accent, Bold: true},
	}
}

// DefaultTheme returns the theme of the default palette.
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}

// FrameStyle returns the border style for a frame at the given depth.
func (t Theme) FrameStyle(depth int) Style {
	if len(t.Frames) == 0 {
		return t.Text
	}
	return t.Frames[depth%len(t.Frames)]
}
