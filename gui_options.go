package desky

import (
	"fmt"

	"github.com/rs/zerolog"
)

// GuiOption is a functional option for configuring a Gui.
type GuiOption func(*Gui) error

// WithStyle sets the style provider. Default is BaseStyle.
func WithStyle(s Style) GuiOption {
	return func(g *Gui) error {
		if s == nil {
			return fmt.Errorf("style provider must not be nil")
		}
		g.style = s
		return nil
	}
}

// WithLogger sets the logger. Default is the debug logger, which is
// disabled unless DESKY_DEBUG is set.
func WithLogger(l zerolog.Logger) GuiOption {
	return func(g *Gui) error {
		g.log = l
		return nil
	}
}

// WithMaxLayoutIterations sets the per-panel layout iteration ceiling.
// Default is 100. Must be at least 1.
func WithMaxLayoutIterations(n int) GuiOption {
	return func(g *Gui) error {
		if n < 1 {
			return fmt.Errorf("max layout iterations must be at least 1")
		}
		g.maxIterations = n
		return nil
	}
}
