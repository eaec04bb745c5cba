package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/grindlemire/go-desky"
	"github.com/grindlemire/go-desky/internal/config"
	"github.com/grindlemire/go-desky/pkg/termstyle"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// configChangedMsg carries a reloaded configuration into the event loop.
type configChangedMsg struct {
	cfg *config.Config
}

// model drives a Gui from bubbletea messages. Every message is followed by
// one scheduler tick rendered into the screen buffer that View returns.
type model struct {
	gui    *desky.Gui
	demo   *demo
	screen *termstyle.Buffer
	mouse  pointer
	keys   keyMap
	log    zerolog.Logger

	// err is the layout failure that ended the program, if any.
	err error
}

var _ tea.Model = (*model)(nil)

// newModel builds the Gui and demo tree for cfg.
func newModel(cfg *config.Config, log zerolog.Logger) (*model, error) {
	style := termstyle.New(
		termstyle.WithTheme(termstyle.NewTheme(cfg.Theme)),
		termstyle.WithLogger(log),
	)
	g, err := desky.New(
		desky.WithStyle(style),
		desky.WithLogger(log),
		desky.WithMaxLayoutIterations(cfg.UI.MaxLayoutIterations),
	)
	if err != nil {
		return nil, err
	}

	d, err := newDemo(g, cfg.UI, log)
	if err != nil {
		return nil, err
	}

	return &model{
		gui:  g,
		demo: d,
		keys: defaultKeyMap(),
		log:  log,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen = termstyle.NewBuffer(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		for _, ev := range translateKey(msg) {
			m.gui.Dispatch(ev)
		}
	case tea.MouseMsg:
		for _, ev := range m.mouse.translate(msg) {
			m.gui.Dispatch(ev)
		}
	case configChangedMsg:
		m.demo.apply(msg.cfg.UI)
	}

	if m.screen == nil {
		return m, nil
	}
	if err := m.tick(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) tick() error {
	m.demo.updateStatus()
	m.screen.Clear()
	w, h := m.screen.Size()
	return m.gui.Tick(w, h, m.screen)
}

func (m *model) View() string {
	if m.screen == nil {
		return ""
	}
	return m.screen.Render()
}
