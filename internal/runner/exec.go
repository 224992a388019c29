package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"cvr/internal/logger"
)

// optionFlags maps runner option keys to their CLI flag. Keys missing here
// are passed through generically with underscores turned into dashes.
var optionFlags = map[string]string{
	"backend":  "--backend",
	"host":     "--host",
	"port":     "--port",
	"user":     "--user",
	"password": "--password",
	"format":   "--reporter",
}

// fixedKeyOrder keeps the leading arguments stable for logging and tests.
var fixedKeyOrder = []string{"backend", "host", "port", "user", "password", "key_files", "sudo", "format"}

// ExecRunner invokes the compliance runner binary for a single pass.
type ExecRunner struct {
	binary string
	opts   Options
	log    *logger.Logger
	files  []string
	output bytes.Buffer
}

// NewExecRunner creates an ExecRunner for the given binary and options.
func NewExecRunner(binary string, opts Options, log *logger.Logger) *ExecRunner {
	return &ExecRunner{binary: binary, opts: opts, log: log}
}

// AddTests registers suite and helper files to execute.
func (r *ExecRunner) AddTests(files []string) {
	r.files = append(r.files, files...)
}

// Output returns the combined stdout/stderr captured by the last Run.
func (r *ExecRunner) Output() string {
	return r.output.String()
}

// Run executes the runner binary and returns its exit code. Errors other
// than a nonzero exit (binary missing, context cancelled) are returned as-is.
func (r *ExecRunner) Run(ctx context.Context) (int, error) {
	args := r.buildArgs()

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = &r.output
	cmd.Stderr = &r.output

	r.log.Debug("running: %s %s", r.binary, strings.Join(args, " "))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// buildArgs translates the options mapping into CLI arguments. Well-known
// keys come first in a fixed order; the rest follow sorted for stable output.
func (r *ExecRunner) buildArgs() []string {
	args := []string{"exec"}
	args = append(args, r.files...)

	emitted := make(map[string]bool)
	for _, key := range fixedKeyOrder {
		if value, ok := r.opts[key]; ok {
			args = appendOption(args, key, value)
			emitted[key] = true
		}
	}

	var rest []string
	for key := range r.opts {
		if !emitted[key] && key != "logger" {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		args = appendOption(args, key, r.opts[key])
	}

	return args
}

func appendOption(args []string, key string, value any) []string {
	switch key {
	case "key_files":
		for _, file := range toStrings(value) {
			args = append(args, "-i", file)
		}
		return args
	case "sudo":
		if b, ok := value.(bool); ok && b {
			return append(args, "--sudo")
		}
		return args
	}

	flag, ok := optionFlags[key]
	if !ok {
		flag = "--" + strings.ReplaceAll(key, "_", "-")
	}

	if b, isBool := value.(bool); isBool {
		if b {
			return append(args, flag)
		}
		return args
	}
	return append(args, flag, fmt.Sprint(value))
}

func toStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
