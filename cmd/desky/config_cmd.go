package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-desky/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect desky configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the effective configuration as YAML",
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := a.cfg.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the configuration JSON schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := config.Schema()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file in use",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if used := a.manager.ConfigFileUsed(); used != "" {
					fmt.Fprintln(cmd.OutOrStdout(), used)
					return nil
				}
				dir, err := config.ConfigDir()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (not present, using defaults)\n",
					filepath.Join(dir, config.AppName+".yaml"))
				return nil
			},
		},
	)
	return cmd
}
