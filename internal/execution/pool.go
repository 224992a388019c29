package execution

import (
	"context"
	"sync"
	"time"

	"cvr/internal/config"
	"cvr/internal/domain"
	"cvr/internal/parser"
	"cvr/internal/ui"
)

// WorkerPool verifies multiple suites in parallel. Every pass is independent
// (own runner invocation, read-only transport diagnosis); the same suite is
// never scheduled twice within one run.
type WorkerPool struct {
	config   *config.Config
	passer   Passer
	parser   *parser.InSpecParser
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, passer Passer, inspecParser *parser.InSpecParser) *WorkerPool {
	return &WorkerPool{
		config: cfg,
		passer: passer,
		parser: inspecParser,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute verifies all passes (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, passes []Pass) ([]domain.VerifyResult, time.Duration, error) {
	return wp.ExecuteWithOptions(ctx, passes, false)
}

// ExecuteWithOptions verifies passes with optional fail-fast (stop scheduling
// after the first failed suite).
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, passes []Pass, failFast bool) ([]domain.VerifyResult, time.Duration, error) {
	if len(passes) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(ctx, passes)
	}
	return wp.executeFailFast(ctx, passes)
}

// executeAll runs every pass regardless of failures.
func (wp *WorkerPool) executeAll(ctx context.Context, passes []Pass) ([]domain.VerifyResult, time.Duration, error) {
	passQueue := make(chan Pass, len(passes))
	results := make(chan domain.VerifyResult, len(passes))
	for _, pass := range passes {
		passQueue <- pass
	}
	close(passQueue)

	var mu sync.Mutex
	var completed, passedControls, failedControls int
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < wp.workerCount(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pass := range passQueue {
				result := wp.passer.Run(ctx, pass)
				results <- result

				mu.Lock()
				completed++
				wp.countControls(result, &passedControls, &failedControls)
				if wp.progress != nil {
					wp.progress.Update(completed, passedControls, failedControls)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.VerifyResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast runs passes and stops scheduling after the first failure.
func (wp *WorkerPool) executeFailFast(ctx context.Context, passes []Pass) ([]domain.VerifyResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	passQueue := make(chan Pass, 1)
	results := make(chan domain.VerifyResult, len(passes))

	go func() {
		defer close(passQueue)
		for _, pass := range passes {
			select {
			case <-ctx.Done():
				return
			case passQueue <- pass:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passedControls, failedControls int
	var seenFailure bool
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < wp.workerCount(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pass := range passQueue {
				result := wp.passer.Run(ctx, pass)

				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}

				results <- result

				mu.Lock()
				completed++
				wp.countControls(result, &passedControls, &failedControls)
				if wp.progress != nil {
					wp.progress.Update(completed, passedControls, failedControls)
				}
				if !result.Success {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.VerifyResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) workerCount() int {
	if wp.config.Workers <= 0 {
		return 1
	}
	return wp.config.Workers
}

// countControls accumulates per-control counts, falling back to suite-level
// counting when the parser cannot find a summary.
func (wp *WorkerPool) countControls(result domain.VerifyResult, passed, failed *int) {
	if wp.parser != nil {
		p, f := wp.parser.ParseControlCounts(result)
		*passed += p
		*failed += f
		return
	}
	if result.Success {
		*passed++
	} else {
		*failed++
	}
}
