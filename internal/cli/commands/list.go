package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cvr/internal/config"
	"cvr/internal/discovery"
	"cvr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites := lc.filter.FilterByName(lc.config.Suites, lc.config.Flags.SuiteFilter)
	if len(suites) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	walker := discovery.NewWalker(lc.config.ReservedDirs)
	basePath := lc.config.GetTestBasePath()

	for _, suite := range suites {
		files := walker.SuiteFiles(basePath, suite)
		if lc.config.Flags.ShowHelpers {
			files = append(files, walker.Helpers(basePath)...)
		}
		if err := lc.formatter.PrintSuiteFiles(suite, files, lc.config.Flags.ShowControls); err != nil {
			return err
		}
	}
	return nil
}
