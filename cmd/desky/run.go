package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-desky/internal/config"
	"github.com/grindlemire/go-desky/internal/logging"
)

// errNoTerminal is returned by run when stdout is redirected.
var errNoTerminal = errors.New("desky run needs a terminal on stdout")

type runner struct {
	app        *app
	isTerminal func(fd int) bool
}

func newRunCmd(a *app) *cobra.Command {
	r := &runner{app: a, isTerminal: term.IsTerminal}
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo",
		Long: `Start the interactive demo. Drag the gutters between panes to resize
them, click buttons or focus one and press enter. Set logging.file to keep
a log; the terminal is owned by the demo while it runs.`,
		RunE: r.run,
	}
}

func (r *runner) run(cmd *cobra.Command, _ []string) error {
	if !r.isTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	log, closer, err := r.app.logger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx := logging.WithComponent(logging.WithContext(cmd.Context(), log), "run")
	log = *logging.FromContext(ctx)

	m, err := newModel(r.app.cfg, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	r.app.manager.OnConfigChange(func(c *config.Config) {
		p.Send(configChangedMsg{cfg: c})
	})
	if err := r.app.manager.Watch(); err != nil {
		log.Debug().Err(err).Msg("config reload disabled")
	}

	log.Info().Str("config", r.app.manager.ConfigFileUsed()).Msg("starting")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return m.err
}
