// Package termstyle is a terminal style provider for desky.
//
// Surfaces are cell buffers: every panel renders into its own Buffer and
// the core composes them back to front. A cleared Buffer is transparent, so
// panels that draw nothing let their parent show through.
//
// Colours and border glyphs come from lipgloss, and text is measured in
// terminal cells with go-runewidth, so wide runes occupy two cells.
//
//	g, _ := desky.New(desky.WithStyle(termstyle.New()))
//	frame := termstyle.NewFrame(g, "files", desky.WithRect(desky.NewRect(0, 0, 40, 10)))
//	label := termstyle.NewLabel(g, "hello", desky.WithRect(desky.NewRect(0, 0, 20, 1)))
//	label.Panel().SetParent(frame.Panel())
//
//	screen := termstyle.NewBuffer(80, 24)
//	_ = g.Tick(80, 24, screen)
//	fmt.Println(screen.Render())
package termstyle
