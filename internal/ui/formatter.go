package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"cvr/internal/config"
	"cvr/internal/discovery"
	"cvr/internal/domain"
)

// Formatter formats and displays verification output
type Formatter struct {
	config   *config.Config
	controls *discovery.ControlScanner
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, controls *discovery.ControlScanner) *Formatter {
	return &Formatter{
		config:   cfg,
		controls: controls,
	}
}

// PrintMetaStats displays the statistics of a verification run
func (f *Formatter) PrintMetaStats(output *domain.VerifyResultsOutput) error {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                 Compliance Verification Summary                ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Suites")
	color.White("%-27d │\n", meta.TotalSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Suites")
	color.Green("%-27d │\n", meta.PassedSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Suites")
	color.Red("%-27d │\n", meta.FailedSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Controls")
	color.Red("%-27d │\n", meta.FailedControls)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedSuites == 0 {
		color.Green("✓ All suites passed!")
	} else {
		color.Red("✗ %d suite(s) failed with %d control failure(s)", meta.FailedSuites, meta.FailedControls)
		fmt.Println()
		f.printFailedControlTree(output.Details)
	}

	return nil
}

// printFailedControlTree prints failed controls grouped by suite
func (f *Formatter) printFailedControlTree(failures []domain.ControlFailure) {
	suiteMap := make(map[string][]domain.ControlFailure)
	for _, failure := range failures {
		suiteMap[failure.Suite] = append(suiteMap[failure.Suite], failure)
	}

	var suites []string
	for suite := range suiteMap {
		suites = append(suites, suite)
	}
	sort.Strings(suites)

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", suite)
		} else {
			color.Cyan("├── %s", suite)
		}

		suiteFailures := suiteMap[suite]
		for j, failure := range suiteFailures {
			branch := "│   "
			if isLastSuite {
				branch = "    "
			}
			connector := "├── "
			if j == len(suiteFailures)-1 {
				connector = "└── "
			}
			color.Red("%s%s%s: %s", branch, connector, failure.ControlID, failure.Title)
		}
	}
}

// PrintSuiteFiles prints discovered files per suite, optionally resolving
// the control IDs declared in each file.
func (f *Formatter) PrintSuiteFiles(suite string, files []string, showControls bool) error {
	color.Green("Suite %s: %d file(s)", suite, len(files))

	for i, file := range files {
		relPath, err := filepath.Rel(f.config.ProjectPath, file)
		if err != nil {
			relPath = file
		}

		isLast := i == len(files)-1
		if isLast {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		if !showControls {
			continue
		}

		controls, err := f.controls.FindControls(file)
		if err != nil {
			color.Red("    error reading %s: %v", relPath, err)
			continue
		}

		prefix := "│   "
		if isLast {
			prefix = "    "
		}
		if len(controls) == 0 {
			fmt.Printf("%s└── (no named controls)\n", prefix)
			continue
		}
		for j, control := range controls {
			connector := "├── "
			if j == len(controls)-1 {
				connector = "└── "
			}
			color.Yellow("%s%s%s", prefix, connector, control)
		}
	}

	fmt.Println()
	return nil
}
