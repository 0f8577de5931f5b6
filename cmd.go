package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	var debug bool

	// root command prints the report, there are no subcommands
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Print the current moment in several date and time formats",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				a.EnableDebug()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Print(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")

	return rootCmd
}
