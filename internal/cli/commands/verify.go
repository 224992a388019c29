package commands

import (
	"fmt"
	"os"

	"cvr/internal/config"
	"cvr/internal/discovery"
	"cvr/internal/domain"
	"cvr/internal/execution"
	"cvr/internal/logger"
	"cvr/internal/parser"
	"cvr/internal/storage"
	"cvr/internal/transport"
	"cvr/internal/ui"
	"cvr/internal/verifier"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VerifyCommand handles the verify command
type VerifyCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	parser    *parser.InSpecParser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewVerifyCommand creates a new VerifyCommand
func NewVerifyCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	inspecParser *parser.InSpecParser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *VerifyCommand {
	return &VerifyCommand{
		config:    cfg,
		filter:    filter,
		parser:    inspecParser,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (vc *VerifyCommand) Execute(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stderr, vc.config.Flags.LogLevel)

	suites := vc.filter.FilterByName(vc.config.Suites, vc.config.Flags.SuiteFilter)
	if len(suites) == 0 {
		color.Yellow("No suites to verify")
		return nil
	}

	t, err := transport.New(vc.config.Transport, verifier.Name)
	if err != nil {
		return err
	}

	basePath := vc.config.GetTestBasePath()
	passes := make([]execution.Pass, 0, len(suites))
	for _, suite := range suites {
		passes = append(passes, execution.Pass{
			Suite:     domain.Suite{Name: suite, BasePath: basePath},
			Transport: t,
		})
	}

	pool := execution.NewWorkerPool(vc.config, execution.NewVerifierPasser(vc.config, log), vc.parser)
	pool.SetProgress(ui.NewProgressBar(len(passes)))

	results, duration, err := pool.ExecuteWithOptions(cmd.Context(), passes, vc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Parse control failures out of the failed passes
	var failures []domain.ControlFailure
	for _, result := range results {
		if result.Error != nil {
			log.Error("suite %s: %v", result.Suite, result.Error)
		}
		if !result.Success {
			failures = append(failures, vc.parser.ParseFailures(result)...)
		}
	}

	if err := vc.storage.Save(results, failures, duration, vc.config.Workers); err != nil {
		return fmt.Errorf("failed to save verification results: %w", err)
	}

	output, err := vc.storage.Load()
	if err != nil {
		return err
	}
	if err := vc.formatter.PrintMetaStats(output); err != nil {
		return err
	}

	if output.Meta.FailedSuites > 0 {
		if vc.config.Flags.OpenFailures {
			if err := vc.viewer.View(output); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d suite(s) failed", output.Meta.FailedSuites)
	}
	return nil
}
