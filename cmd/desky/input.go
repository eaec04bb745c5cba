package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/go-desky"
)

var mouseButtons = map[tea.MouseButton]desky.MouseButton{
	tea.MouseButtonLeft:      desky.MouseLeft,
	tea.MouseButtonMiddle:    desky.MouseMiddle,
	tea.MouseButtonRight:     desky.MouseRight,
	tea.MouseButtonWheelUp:   desky.MouseWheelUp,
	tea.MouseButtonWheelDown: desky.MouseWheelDown,
}

var keys = map[tea.KeyType]desky.Key{
	tea.KeyEnter:     desky.KeyEnter,
	tea.KeyTab:       desky.KeyTab,
	tea.KeyBackspace: desky.KeyBackspace,
	tea.KeyEscape:    desky.KeyEscape,
	tea.KeyDelete:    desky.KeyDelete,
	tea.KeyInsert:    desky.KeyInsert,
	tea.KeySpace:     desky.KeySpace,
	tea.KeyUp:        desky.KeyUp,
	tea.KeyDown:      desky.KeyDown,
	tea.KeyLeft:      desky.KeyLeft,
	tea.KeyRight:     desky.KeyRight,
	tea.KeyHome:      desky.KeyHome,
	tea.KeyEnd:       desky.KeyEnd,
	tea.KeyPgUp:      desky.KeyPageUp,
	tea.KeyPgDown:    desky.KeyPageDown,
}

// pointer turns terminal mouse reports into raw events. Terminals report
// absolute positions only, so motion deltas and the button of a bare
// release are tracked here.
type pointer struct {
	x, y    int
	seen    bool
	pressed desky.MouseButton
}

func (p *pointer) translate(msg tea.MouseMsg) []desky.RawEvent {
	var events []desky.RawEvent
	if !p.seen || msg.X != p.x || msg.Y != p.y {
		motion := desky.RawMouseMotion{X: msg.X, Y: msg.Y}
		if p.seen {
			motion.RelX, motion.RelY = msg.X-p.x, msg.Y-p.y
		}
		events = append(events, motion)
		p.x, p.y, p.seen = msg.X, msg.Y, true
	}

	button := mouseButtons[msg.Button]
	switch msg.Action {
	case tea.MouseActionPress:
		if button == desky.MouseNone {
			break
		}
		events = append(events, desky.RawMouseButtonDown{X: msg.X, Y: msg.Y, Button: button})
		if button == desky.MouseWheelUp || button == desky.MouseWheelDown {
			// Wheel notches have no release.
			events = append(events, desky.RawMouseButtonUp{X: msg.X, Y: msg.Y, Button: button})
			break
		}
		p.pressed = button

	case tea.MouseActionRelease:
		if button == desky.MouseNone {
			button = p.pressed
		}
		if button == desky.MouseNone {
			break
		}
		p.pressed = desky.MouseNone
		events = append(events, desky.RawMouseButtonUp{X: msg.X, Y: msg.Y, Button: button})
	}
	return events
}

// translateKey maps a terminal key report to a press and release pair per
// key. Pasted text yields one pair per rune.
func translateKey(msg tea.KeyMsg) []desky.RawEvent {
	var mod desky.Modifier
	if msg.Alt {
		mod |= desky.ModAlt
	}

	pair := func(k desky.Key, r rune, mod desky.Modifier) []desky.RawEvent {
		return []desky.RawEvent{
			desky.RawKeyDown{Key: k, Rune: r, Mod: mod},
			desky.RawKeyUp{Key: k, Mod: mod},
		}
	}

	if k, ok := keys[msg.Type]; ok {
		return pair(k, 0, mod)
	}

	switch {
	case msg.Type == tea.KeyRunes:
		var events []desky.RawEvent
		for _, r := range msg.Runes {
			events = append(events, pair(desky.KeyRune, r, mod)...)
		}
		return events
	case msg.Type == tea.KeyShiftTab:
		return pair(desky.KeyTab, 0, mod|desky.ModShift)
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		return pair(desky.KeyRune, 'a'+rune(msg.Type-tea.KeyCtrlA), mod|desky.ModCtrl)
	}
	return nil
}
