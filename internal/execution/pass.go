package execution

import (
	"context"
	"errors"
	"time"

	"cvr/internal/config"
	"cvr/internal/domain"
	"cvr/internal/logger"
	"cvr/internal/runner"
	"cvr/internal/transport"
	"cvr/internal/verifier"
)

// Pass is a single suite verification job.
type Pass struct {
	Suite     domain.Suite
	Transport transport.Transport
	State     map[string]any
}

// Passer executes one verification pass and reports its result.
type Passer interface {
	Run(ctx context.Context, pass Pass) domain.VerifyResult
}

// VerifierPasser runs passes through the verifier with the exec runner.
type VerifierPasser struct {
	cfg *config.Config
	log *logger.Logger
}

// NewVerifierPasser creates a VerifierPasser.
func NewVerifierPasser(cfg *config.Config, log *logger.Logger) *VerifierPasser {
	return &VerifierPasser{cfg: cfg, log: log}
}

// Run executes a single verification pass and translates the verifier's
// outcome into a VerifyResult. A nonzero runner exit becomes a failed result
// carrying the exit code; any other error marks the pass as not runnable.
func (vp *VerifierPasser) Run(ctx context.Context, pass Pass) domain.VerifyResult {
	start := time.Now()

	// The factory records the concrete runner so the pass can report its
	// captured output after Call returns.
	var execRunner *runner.ExecRunner
	factory := func(opts runner.Options, log *logger.Logger) runner.Runner {
		execRunner = runner.NewExecRunner(vp.cfg.RunnerBinary, opts, log)
		return execRunner
	}

	v := verifier.New(vp.cfg, pass.Suite, pass.Transport, factory, vp.log)
	err := v.Call(ctx, pass.State)

	result := domain.VerifyResult{
		Suite:    pass.Suite.Name,
		Success:  err == nil,
		Duration: time.Since(start),
	}
	if execRunner != nil {
		result.Output = execRunner.Output()
	}

	var actionFailed *verifier.ActionFailedError
	switch {
	case err == nil:
	case errors.As(err, &actionFailed):
		result.ExitCode = actionFailed.ExitCode
	default:
		result.ExitCode = -1
		result.Error = err
	}
	return result
}
