package parser

import (
	"regexp"
	"strconv"
	"strings"

	"cvr/internal/domain"
)

// InSpecParser parses the compliance runner's text output
type InSpecParser struct{}

// NewInSpecParser creates a new InSpecParser
func NewInSpecParser() *InSpecParser {
	return &InSpecParser{}
}

var (
	// Test Summary: 12 successful, 3 failures, 1 skipped
	testSummaryPattern = regexp.MustCompile(`Test Summary:\s*(\d+) successful, (\d+) failures?`)

	// ×  ssh-01: Set sshd Protocol to 2 (2 failed)
	controlFailurePattern = regexp.MustCompile(`^\s{0,4}[×x]\s+(\S+?):\s+(.*?)\s+\((\d+) failed\)\s*$`)

	// ✔  tmp-01: Create /tmp directory
	controlPassPattern = regexp.MustCompile(`^\s{0,4}[✔√]\s+\S+?:`)

	expectedPattern = regexp.MustCompile(`^\s*expected:?\s+(.*)$`)
	actualPattern   = regexp.MustCompile(`^\s*got:?\s+(.*)$`)
)

// ParseControlCounts extracts passed and failed test counts from the runner
// output. Returns (passed, failed). If the summary line is missing, falls
// back to (1,0) for a successful pass and (0,1) for a failed one.
func (p *InSpecParser) ParseControlCounts(result domain.VerifyResult) (passed, failed int) {
	if match := testSummaryPattern.FindStringSubmatch(result.Output); len(match) >= 3 {
		passed, _ = strconv.Atoi(match[1])
		failed, _ = strconv.Atoi(match[2])
		return passed, failed
	}

	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures extracts per-control failure details from the runner output.
// A failed control is reported as a "× id: title (N failed)" header followed
// by indented expectation lines; everything up to the next control or the
// summary belongs to the failure.
func (p *InSpecParser) ParseFailures(result domain.VerifyResult) []domain.ControlFailure {
	var failures []domain.ControlFailure
	lines := strings.Split(result.Output, "\n")

	for i := 0; i < len(lines); i++ {
		match := controlFailurePattern.FindStringSubmatch(lines[i])
		if match == nil {
			continue
		}

		failure := domain.ControlFailure{
			ControlID: match[1],
			Suite:     result.Suite,
			Title:     match[2],
		}

		var messages []string
		for j := i + 1; j < len(lines); j++ {
			line := lines[j]
			if controlFailurePattern.MatchString(line) ||
				controlPassPattern.MatchString(line) ||
				strings.Contains(line, "Summary:") {
				i = j - 1
				break
			}

			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}

			if m := expectedPattern.FindStringSubmatch(line); m != nil && failure.Expected == "" {
				failure.Expected = m[1]
			} else if m := actualPattern.FindStringSubmatch(line); m != nil && failure.Actual == "" {
				failure.Actual = m[1]
			}

			messages = append(messages, trimmed)
			failure.Details = append(failure.Details, line)
		}

		failure.Message = strings.Join(messages, "\n")
		failures = append(failures, failure)
	}

	return failures
}
