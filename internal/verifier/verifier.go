// Package verifier adapts suite configuration and an active transport into
// an invocation of the external compliance runner.
package verifier

import (
	"context"
	"fmt"
	"strings"

	"cvr/internal/config"
	"cvr/internal/discovery"
	"cvr/internal/domain"
	"cvr/internal/logger"
	"cvr/internal/runner"
	"cvr/internal/transport"
)

// Name identifies this verifier in error messages.
const Name = "cvr"

// ActionFailedError reports a verification pass that finished with a
// nonzero runner exit code.
type ActionFailedError struct {
	ExitCode int
}

func (e *ActionFailedError) Error() string {
	return fmt.Sprintf("compliance tests failed (exit code %d)", e.ExitCode)
}

// Verifier runs one suite's compliance tests over a transport. Every Call
// is independent: files are re-discovered and options rebuilt each pass.
type Verifier struct {
	cfg       *config.Config
	suite     domain.Suite
	transport transport.Transport
	factory   runner.Factory
	walker    *discovery.Walker
	log       *logger.Logger
}

// New creates a Verifier for a single suite.
func New(cfg *config.Config, suite domain.Suite, t transport.Transport, factory runner.Factory, log *logger.Logger) *Verifier {
	return &Verifier{
		cfg:       cfg,
		suite:     suite,
		transport: t,
		factory:   factory,
		walker:    discovery.NewWalker(cfg.ReservedDirs),
		log:       log,
	}
}

// Call runs one verification pass: discover helper and suite files, build
// backend options from the transport and per-invocation state, execute the
// runner and translate its exit code. A nonzero exit code is returned as
// *ActionFailedError; every other failure surfaces synchronously unwrapped.
func (v *Verifier) Call(ctx context.Context, state map[string]any) error {
	files := v.walker.Helpers(v.suite.BasePath)
	files = append(files, v.walker.SuiteFiles(v.suite.BasePath, v.suite.Name)...)

	opts, err := transport.BuildRunnerOptions(v.transport, state, transport.Settings{
		Verifier: Name,
		Sudo:     v.cfg.Sudo,
		Format:   v.cfg.GetFormat(),
		Logger:   v.log,
	})
	if err != nil {
		return err
	}

	r := v.factory(opts, v.log)
	r.AddTests(files)

	v.log.Debug("suite %s: executing %d file(s): %s", v.suite.Name, len(files), strings.Join(files, ", "))

	exitCode, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &ActionFailedError{ExitCode: exitCode}
	}
	return nil
}
