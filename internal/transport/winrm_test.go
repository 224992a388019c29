package transport

import (
	"testing"

	"cvr/internal/logger"
)

func TestWinRMBuilder_RunnerOptions(t *testing.T) {
	settings := Settings{Verifier: "cvr", Logger: logger.New(nil, "info")}

	t.Run("parses host and port from endpoint", func(t *testing.T) {
		tr := &WinRM{
			Endpoint:          "https://winhost:5985",
			User:              "administrator",
			Password:          "pass",
			ConnectionRetries: 5,
		}

		opts, err := BuildRunnerOptions(tr, nil, settings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if opts["backend"] != "winrm" {
			t.Errorf("expected backend winrm, got %v", opts["backend"])
		}
		if opts["host"] != "winhost" {
			t.Errorf("expected host winhost, got %v", opts["host"])
		}
		if opts["port"] != 5985 {
			t.Errorf("expected port 5985, got %v", opts["port"])
		}
		if opts["user"] != "administrator" {
			t.Errorf("expected user administrator, got %v", opts["user"])
		}
		if opts["password"] != "pass" {
			t.Errorf("expected password in options, got %v", opts["password"])
		}
	})

	t.Run("defaults port by scheme when endpoint omits it", func(t *testing.T) {
		tests := []struct {
			endpoint string
			port     int
		}{
			{"http://winhost", 5985},
			{"https://winhost", 5986},
		}

		for _, tt := range tests {
			opts, err := BuildRunnerOptions(&WinRM{Endpoint: tt.endpoint}, nil, settings)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", tt.endpoint, err)
			}
			if opts["port"] != tt.port {
				t.Errorf("endpoint %s: expected port %d, got %v", tt.endpoint, tt.port, opts["port"])
			}
		}
	})

	t.Run("malformed endpoint propagates the parse error", func(t *testing.T) {
		tr := &WinRM{Endpoint: "://not a uri"}
		_, err := BuildRunnerOptions(tr, nil, settings)
		if err == nil {
			t.Fatal("expected URI parse error")
		}
	})

	t.Run("endpoint from state overrides diagnosed endpoint", func(t *testing.T) {
		tr := &WinRM{Endpoint: "http://old:5985"}
		state := map[string]any{"endpoint": "http://new:9999"}

		opts, err := BuildRunnerOptions(tr, state, settings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts["host"] != "new" || opts["port"] != 9999 {
			t.Errorf("expected state endpoint to win, got host=%v port=%v", opts["host"], opts["port"])
		}
	})
}
