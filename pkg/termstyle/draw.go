package termstyle

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-desky"
)

func glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return fallback
	}
	return r
}

// DrawBox draws border around the edge of rect. Rectangles smaller than
// 2x2 are left untouched.
func DrawBox(buf *Buffer, rect desky.Rect, border lipgloss.Border, style Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	left, top := rect.X, rect.Y
	right, bottom := rect.Right()-1, rect.Bottom()-1

	horizontalTop := glyph(border.Top, '─')
	horizontalBottom := glyph(border.Bottom, '─')
	for x := left + 1; x < right; x++ {
		buf.SetRune(x, top, horizontalTop, style)
		buf.SetRune(x, bottom, horizontalBottom, style)
	}
	verticalLeft := glyph(border.Left, '│')
	verticalRight := glyph(border.Right, '│')
	for y := top + 1; y < bottom; y++ {
		buf.SetRune(left, y, verticalLeft, style)
		buf.SetRune(right, y, verticalRight, style)
	}

	buf.SetRune(left, top, glyph(border.TopLeft, '┌'), style)
	buf.SetRune(right, top, glyph(border.TopRight, '┐'), style)
	buf.SetRune(left, bottom, glyph(border.BottomLeft, '└'), style)
	buf.SetRune(right, bottom, glyph(border.BottomRight, '┘'), style)
}

// DrawBoxWithTitle draws a box with title set into the top edge.
func DrawBoxWithTitle(buf *Buffer, rect desky.Rect, border lipgloss.Border, title string, style, titleStyle Style) {
	DrawBox(buf, rect, border, style)
	if title == "" || rect.Width < 5 || rect.Height < 2 {
		return
	}
	title = Truncate(" "+title+" ", rect.Width-4)
	buf.SetString(rect.X+2, rect.Y, title, titleStyle)
}

// DrawText draws s at (x, y), cut to at most width cells.
func DrawText(buf *Buffer, x, y, width int, s string, style Style) int {
	return buf.SetString(x, y, Truncate(s, width), style)
}
