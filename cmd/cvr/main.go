package main

import (
	"fmt"
	"os"

	"cvr/internal/cli"
	"cvr/internal/cli/commands"
	"cvr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cvr",
		Short:   "Compliance verification runner",
		Long:    `Runs compliance test suites against provisioned instances over SSH, WinRM or Docker and reports the results.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
