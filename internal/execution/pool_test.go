package execution

import (
	"context"
	"sync"
	"testing"

	"cvr/internal/config"
	"cvr/internal/domain"
	"cvr/internal/parser"
)

// fakePasser fails every suite whose name is listed in failing.
type fakePasser struct {
	mu      sync.Mutex
	ran     []string
	failing map[string]bool
}

func (f *fakePasser) Run(ctx context.Context, pass Pass) domain.VerifyResult {
	f.mu.Lock()
	f.ran = append(f.ran, pass.Suite.Name)
	f.mu.Unlock()

	if f.failing[pass.Suite.Name] {
		return domain.VerifyResult{Suite: pass.Suite.Name, Success: false, ExitCode: 100}
	}
	return domain.VerifyResult{Suite: pass.Suite.Name, Success: true}
}

func passesFor(names ...string) []Pass {
	passes := make([]Pass, 0, len(names))
	for _, name := range names {
		passes = append(passes, Pass{Suite: domain.Suite{Name: name, BasePath: "test"}})
	}
	return passes
}

func TestWorkerPool_Execute(t *testing.T) {
	cfg := config.New()
	cfg.Workers = 2

	t.Run("runs every pass and collects all results", func(t *testing.T) {
		passer := &fakePasser{failing: map[string]bool{"b": true}}
		pool := NewWorkerPool(cfg, passer, parser.NewInSpecParser())

		results, duration, err := pool.Execute(context.Background(), passesFor("a", "b", "c"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		if duration <= 0 {
			t.Error("expected a positive duration")
		}

		failed := 0
		for _, r := range results {
			if !r.Success {
				failed++
				if r.ExitCode != 100 {
					t.Errorf("expected exit code 100 on failed pass, got %d", r.ExitCode)
				}
			}
		}
		if failed != 1 {
			t.Errorf("expected 1 failed result, got %d", failed)
		}
	})

	t.Run("empty pass list is a no-op", func(t *testing.T) {
		pool := NewWorkerPool(cfg, &fakePasser{}, nil)
		results, _, err := pool.Execute(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("fail-fast stops scheduling after the first failure", func(t *testing.T) {
		serialCfg := config.New()
		serialCfg.Workers = 1

		passer := &fakePasser{failing: map[string]bool{"a": true}}
		pool := NewWorkerPool(serialCfg, passer, nil)

		results, _, err := pool.ExecuteWithOptions(context.Background(), passesFor("a", "b", "c"), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected only the failing result, got %d: %v", len(results), results)
		}
		if results[0].Suite != "a" || results[0].Success {
			t.Errorf("expected failed result for suite a, got %+v", results[0])
		}
	})
}
