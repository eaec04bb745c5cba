package termstyle

import (
	"strings"

	"github.com/grindlemire/go-desky"
)

// Buffer is a grid of cells and the Surface type of this provider.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

var _ desky.Surface = (*Buffer)(nil)

// NewBuffer creates a transparent buffer.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect at (0, 0).
func (b *Buffer) Rect() desky.Rect {
	return desky.NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or a transparent cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell stores c at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune draws r at (x, y). A wide rune also claims the next cell; one
// that does not fit in the last column is replaced by a space. Wide runes
// partially overwritten are blanked.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	width := RuneWidth(r)

	b.breakWide(x, y)
	if width == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, NewCell(' ', style))
			return
		}
		b.breakWide(x+1, y)
	}

	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Rune: wideTail, Style: style})
	}
}

// breakWide blanks the other half of a wide rune that covers (x, y).
func (b *Buffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation():
		if lead := b.Cell(x-1, y); lead.Width == 2 {
			b.SetCell(x-1, y, NewCell(' ', lead.Style))
		}
	case c.Width == 2:
		if tail := b.Cell(x+1, y); tail.IsContinuation() {
			b.SetCell(x+1, y, NewCell(' ', tail.Style))
		}
	}
}

// SetString draws s from (x, y) without wrapping and returns the number of
// cells drawn.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}
	drawn := 0
	for _, r := range s {
		width := RuneWidth(r)
		if x >= b.width || (width == 2 && x+1 >= b.width) {
			break
		}
		if x >= 0 {
			b.SetRune(x, y, r, style)
			drawn += width
		}
		x += width
	}
	return drawn
}

// Fill paints rect, clipped to the buffer, with r.
func (b *Buffer) Fill(rect desky.Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += width
		}
	}
}

// Clear makes every cell transparent.
func (b *Buffer) Clear() {
	clear(b.cells)
}

// Blit draws the opaque cells of src with its origin at (x, y). Cells that
// fall outside b are clipped. Only *Buffer sources are supported; others
// are ignored.
func (b *Buffer) Blit(src desky.Surface, x, y int) {
	s, ok := src.(*Buffer)
	if !ok {
		return
	}
	for sy := 0; sy < s.height; sy++ {
		ty := y + sy
		if ty < 0 || ty >= b.height {
			continue
		}
		for sx := 0; sx < s.width; sx++ {
			c := s.cells[sy*s.width+sx]
			tx := x + sx
			if c.IsTransparent() || tx < 0 || tx >= b.width {
				continue
			}
			if c.IsContinuation() {
				// The lead was clipped on the left.
				if tx == 0 {
					b.SetRune(tx, ty, ' ', c.Style)
				}
				continue
			}
			b.SetRune(tx, ty, c.Rune, c.Style)
		}
	}
}

// String returns the buffer text, one line per row, with transparent cells
// as spaces.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			switch {
			case c.IsContinuation():
			case c.IsTransparent():
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// StringTrimmed returns String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer as styled terminal text. Runs of cells with the
// same style are rendered together.
func (b *Buffer) Render() string {
	lines := make([]string, b.height)
	for y := range lines {
		var line, run strings.Builder
		var runStyle Style
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(runStyle.Lipgloss().Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			if c.IsTransparent() {
				run.WriteByte(' ')
			} else {
				run.WriteRune(c.Rune)
			}
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
