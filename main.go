package main

import (
	"io"
	"os"
)

const appName = "combodate"

// set via ldflags: -ldflags="-X main.version=v1.0.0"
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], RealClock{}, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, clock Clock, stdout, stderr io.Writer) int {
	log := newLogger(stderr)
	a := NewApp(clock, log)

	rootCmd := SetupCommands(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return 1
	}

	return 0
}
