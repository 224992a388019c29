package storage

import (
	"testing"
	"time"

	"cvr/internal/config"
	"cvr/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	st := NewJSONStorage(cfg)

	results := []domain.VerifyResult{
		{Suite: "default", Success: true},
		{Suite: "os-hardening", Success: false, ExitCode: 100},
	}
	failures := []domain.ControlFailure{
		{ControlID: "ssh-01", Suite: "os-hardening", Message: "Protocol is expected to eq \"2\""},
	}

	if err := st.Save(results, failures, 3*time.Second, 2); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if output.Meta.TotalSuites != 2 || output.Meta.PassedSuites != 1 || output.Meta.FailedSuites != 1 {
		t.Errorf("unexpected suite counts: %+v", output.Meta)
	}
	if output.Meta.FailedControls != 1 {
		t.Errorf("expected 1 failed control, got %d", output.Meta.FailedControls)
	}
	if len(output.Details) != 1 || output.Details[0].ControlID != "ssh-01" {
		t.Errorf("unexpected details: %+v", output.Details)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}

func TestJSONStorage_SaveOutputPersistsResolved(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	output := &domain.VerifyResultsOutput{
		Meta:    domain.VerifyResultsMeta{TotalSuites: 1, FailedSuites: 1, FailedControls: 1},
		Details: []domain.ControlFailure{{ControlID: "ssh-01", Suite: "default", Resolved: true}},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded.Details[0].Resolved {
		t.Error("resolved flag should survive a save/load cycle")
	}
}
