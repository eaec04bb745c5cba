package termstyle

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// wideTail marks the second cell of a wide rune.
const wideTail rune = -1

// Style holds the visual attributes of a cell.
type Style struct {
	Fg      lipgloss.TerminalColor
	Bg      lipgloss.TerminalColor
	Bold    bool
	Reverse bool
}

// Lipgloss converts the style for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle().Bold(s.Bold).Reverse(s.Reverse)
	if s.Fg != nil {
		ls = ls.Foreground(s.Fg)
	}
	if s.Bg != nil {
		ls = ls.Background(s.Bg)
	}
	return ls
}

// Cell is one character cell of a Buffer. The zero Cell is transparent.
// Wide runes occupy two cells; the second is a continuation.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a cell, measuring the rune's display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsTransparent reports whether the cell lets the surface below show.
func (c Cell) IsTransparent() bool {
	return c.Rune == 0 && c.Width == 0
}

// IsContinuation reports whether the cell is the tail of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Rune == wideTail
}

// RuneWidth returns the number of cells r occupies: 1 or 2.
func RuneWidth(r rune) int {
	return min(max(runewidth.RuneWidth(r), 1), 2)
}

// TextWidth returns the number of cells s occupies.
func TextWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// Truncate shortens s to at most width cells, ending in an ellipsis when
// cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
