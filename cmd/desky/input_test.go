package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-desky"
)

func TestPointer_Translate(t *testing.T) {
	type tc struct {
		msgs   []tea.MouseMsg
		expect []desky.RawEvent
	}

	tests := map[string]tc{
		"first motion has no delta": {
			msgs:   []tea.MouseMsg{{X: 3, Y: 4, Action: tea.MouseActionMotion}},
			expect: []desky.RawEvent{desky.RawMouseMotion{X: 3, Y: 4}},
		},
		"motion delta": {
			msgs: []tea.MouseMsg{
				{X: 3, Y: 4, Action: tea.MouseActionMotion},
				{X: 5, Y: 2, Action: tea.MouseActionMotion},
			},
			expect: []desky.RawEvent{
				desky.RawMouseMotion{X: 3, Y: 4},
				desky.RawMouseMotion{X: 5, Y: 2, RelX: 2, RelY: -2},
			},
		},
		"press in place": {
			msgs: []tea.MouseMsg{
				{X: 1, Y: 1, Action: tea.MouseActionMotion},
				{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			},
			expect: []desky.RawEvent{
				desky.RawMouseMotion{X: 1, Y: 1},
				desky.RawMouseButtonDown{X: 1, Y: 1, Button: desky.MouseLeft},
			},
		},
		"bare release uses pressed button": {
			msgs: []tea.MouseMsg{
				{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
				{X: 2, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			},
			expect: []desky.RawEvent{
				desky.RawMouseMotion{X: 1, Y: 1},
				desky.RawMouseButtonDown{X: 1, Y: 1, Button: desky.MouseRight},
				desky.RawMouseMotion{X: 2, Y: 1, RelX: 1},
				desky.RawMouseButtonUp{X: 2, Y: 1, Button: desky.MouseRight},
			},
		},
		"release without press": {
			msgs: []tea.MouseMsg{
				{X: 0, Y: 0, Action: tea.MouseActionMotion},
				{X: 0, Y: 0, Action: tea.MouseActionRelease},
			},
			expect: []desky.RawEvent{desky.RawMouseMotion{}},
		},
		"wheel presses and releases": {
			msgs: []tea.MouseMsg{
				{X: 0, Y: 0, Action: tea.MouseActionMotion},
				{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			},
			expect: []desky.RawEvent{
				desky.RawMouseMotion{},
				desky.RawMouseButtonDown{Button: desky.MouseWheelDown},
				desky.RawMouseButtonUp{Button: desky.MouseWheelDown},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var p pointer
			var got []desky.RawEvent
			for _, msg := range tt.msgs {
				got = append(got, p.translate(msg)...)
			}
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestTranslateKey(t *testing.T) {
	type tc struct {
		msg    tea.KeyMsg
		expect []desky.RawEvent
	}

	down := func(k desky.Key, r rune, mod desky.Modifier) desky.RawEvent {
		return desky.RawKeyDown{Key: k, Rune: r, Mod: mod}
	}
	up := func(k desky.Key, mod desky.Modifier) desky.RawEvent {
		return desky.RawKeyUp{Key: k, Mod: mod}
	}

	tests := map[string]tc{
		"enter": {
			msg:    tea.KeyMsg{Type: tea.KeyEnter},
			expect: []desky.RawEvent{down(desky.KeyEnter, 0, 0), up(desky.KeyEnter, 0)},
		},
		"alt arrow": {
			msg:    tea.KeyMsg{Type: tea.KeyLeft, Alt: true},
			expect: []desky.RawEvent{down(desky.KeyLeft, 0, desky.ModAlt), up(desky.KeyLeft, desky.ModAlt)},
		},
		"runes": {
			msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")},
			expect: []desky.RawEvent{
				down(desky.KeyRune, 'h', 0), up(desky.KeyRune, 0),
				down(desky.KeyRune, 'é', 0), up(desky.KeyRune, 0),
			},
		},
		"shift tab": {
			msg:    tea.KeyMsg{Type: tea.KeyShiftTab},
			expect: []desky.RawEvent{down(desky.KeyTab, 0, desky.ModShift), up(desky.KeyTab, desky.ModShift)},
		},
		"ctrl letter": {
			msg:    tea.KeyMsg{Type: tea.KeyCtrlW},
			expect: []desky.RawEvent{down(desky.KeyRune, 'w', desky.ModCtrl), up(desky.KeyRune, desky.ModCtrl)},
		},
		"unmapped": {
			msg: tea.KeyMsg{Type: tea.KeyF5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expect, translateKey(tt.msg))
		})
	}
}
