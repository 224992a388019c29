package commands

import (
	"cvr/internal/cli"
	"cvr/internal/config"
	"cvr/internal/discovery"
	"cvr/internal/parser"
	"cvr/internal/storage"
	"cvr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Verify   *VerifyCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	controlScanner := discovery.NewControlScanner()
	inspecParser := parser.NewInSpecParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, controlScanner)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Verify:   NewVerifyCommand(cfg, filter, inspecParser, jsonStorage, formatter, failureViewer),
		List:     NewListCommand(cfg, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Verify command
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Run compliance suites against the configured target",
		Long:  "Discover suite and helper files, map the configured transport to runner options and execute the compliance runner for each suite",
		RunE:  c.Verify.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			if err := cfg.LoadProject(); err != nil {
				return err
			}
			// An explicit -w beats the project file
			if cmd.Flags().Changed("workers") {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	verifyCmd.Flags().IntVarP(&flags.Workers, "workers", "w", config.DefaultWorkers, "Number of parallel suite workers")
	verifyCmd.Flags().StringVarP(&flags.SuiteFilter, "suite", "s", "", "Verify only suites matching this pattern (supports wildcards, e.g. 'os-*')")
	verifyCmd.Flags().StringVarP(&flags.TestBasePath, "test-base-path", "t", "", "Base directory the suites live under")
	verifyCmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Reporter format passed to the runner (e.g. 'json')")
	verifyCmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	verifyCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop after the first failed suite")
	verifyCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(verifyCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered suite files",
		Long:  "Discover and list suite files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return cfg.LoadProject()
		},
	}
	listCmd.Flags().StringVarP(&flags.SuiteFilter, "suite", "s", "", "List only suites matching this pattern")
	listCmd.Flags().StringVarP(&flags.TestBasePath, "test-base-path", "t", "", "Base directory the suites live under")
	listCmd.Flags().BoolVar(&flags.ShowHelpers, "helpers", false, "Include helper files in the listing")
	listCmd.Flags().BoolVarP(&flags.ShowControls, "controls", "c", false, "List the control IDs declared in each file")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View control failures interactively",
		Long:  "Display control failures from the last verification run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
