package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-desky/internal/config"
	"github.com/grindlemire/go-desky/internal/logging"
)

// app is the state shared by the subcommands.
type app struct {
	configPath string
	logLevel   string

	manager *config.Manager
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "desky",
		Short: "Retained-mode panel toolkit demo host",
		Long: `desky hosts a tree of panels in the terminal: docked header and status
lines around an adjustable grid of frames that can be resized by dragging
the gutters with the mouse.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: desky.yaml in the user config dir or .)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")

	root.AddCommand(newRunCmd(a), newConfigCmd(a), newVersionCmd())
	return root
}

// load reads the configuration before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	m, err := config.NewManager(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		m.Set("logging.level", a.logLevel)
	}
	if err := m.Load(); err != nil {
		return err
	}
	a.manager = m
	a.cfg = m.Get()
	return nil
}

// logger builds the configured logger writing to out when no log file is
// set.
func (a *app) logger(out io.Writer) (zerolog.Logger, io.Closer, error) {
	log, closer, err := logging.New(a.cfg.Logging, out)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, closer, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version needs no configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "desky %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		},
	}
}
