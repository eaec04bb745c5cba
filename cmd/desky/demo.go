package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/grindlemire/go-desky"
	"github.com/grindlemire/go-desky/internal/config"
	"github.com/grindlemire/go-desky/pkg/termstyle"
)

const headerText = "desky: drag the gutters, click the buttons, ctrl+c to quit"

// pane is one cell of the demo grid: a framed button and click counter.
type pane struct {
	column, row int

	frame  *termstyle.Frame
	button *termstyle.Button
	count  *termstyle.Label
	clicks int
}

// demo is the panel tree hosted by the run command: a header and status line
// docked around an adjustable grid of panes.
type demo struct {
	log zerolog.Logger
	ui  config.UIConfig

	header  *termstyle.Label
	status  *termstyle.Label
	divider *desky.AdjustableDivider
	panes   []*pane

	clicks int
	last   *pane
}

func newDemo(g *desky.Gui, ui config.UIConfig, log zerolog.Logger) (*demo, error) {
	d := &demo{log: log, ui: ui}

	line := []desky.Option{desky.WithSize(0, 1), desky.WithPadding(desky.EdgeLTRB(1, 0, 1, 0))}
	d.header = termstyle.NewLabel(g, headerText, line...)
	d.status = termstyle.NewLabel(g, "", line...)
	d.divider = desky.NewAdjustableDivider(g, ui.Columns, ui.Rows)
	d.divider.DividerSize.Set(ui.DividerSize)

	dock := desky.NewDockLayout()
	dock.DockTop(d.header.Panel())
	dock.DockBottom(d.status.Panel())
	dock.DockFill(d.divider.Panel())
	g.Root().SetLayouter(dock)

	for r := 0; r < ui.Rows; r++ {
		for c := 0; c < ui.Columns; c++ {
			p := d.newPane(g, c, r)
			if err := d.divider.Add(p.frame.Panel(), c, r); err != nil {
				return nil, fmt.Errorf("failed to place pane %d,%d: %w", c, r, err)
			}
			d.panes = append(d.panes, p)
		}
	}

	d.updateStatus()
	return d, nil
}

func (d *demo) newPane(g *desky.Gui, column, row int) *pane {
	p := &pane{column: column, row: row}

	p.frame = termstyle.NewFrame(g, fmt.Sprintf("pane %d,%d", column, row))
	p.button = termstyle.NewButton(g, "click", func(*termstyle.Button) { d.clicked(p) }, desky.WithSize(0, 1))
	p.count = termstyle.NewLabel(g, "no clicks", desky.WithPadding(desky.EdgeLTRB(0, 1, 0, 0)))

	dock := desky.NewDockLayout()
	p.button.Panel().SetParent(p.frame.Panel())
	p.count.Panel().SetParent(p.frame.Panel())
	dock.DockTop(p.button.Panel())
	dock.DockFill(p.count.Panel())
	p.frame.Panel().SetLayouter(dock)
	return p
}

func (d *demo) clicked(p *pane) {
	p.clicks++
	d.clicks++
	d.last = p
	p.count.Text.Set(fmt.Sprintf("%d clicks", p.clicks))
	d.updateStatus()
	d.log.Debug().Int("column", p.column).Int("row", p.row).Int("clicks", p.clicks).Msg("pane clicked")
}

func (d *demo) updateStatus() {
	text := fmt.Sprintf("clicks: %d", d.clicks)
	if d.last != nil {
		text += fmt.Sprintf(" | last: pane %d,%d", d.last.column, d.last.row)
	}
	if d.divider.Dragging() {
		text += " | resizing"
	}
	d.status.Text.Set(text)
}

// apply takes the parts of a reloaded configuration that can change live.
func (d *demo) apply(ui config.UIConfig) {
	d.divider.DividerSize.Set(ui.DividerSize)
	if ui.Columns != d.ui.Columns || ui.Rows != d.ui.Rows {
		d.log.Info().
			Int("columns", ui.Columns).
			Int("rows", ui.Rows).
			Msg("grid shape changes apply on restart")
	}
	d.ui.DividerSize = ui.DividerSize
}
