// Package transport maps remote-connection descriptors to runner options.
//
// Each backend (ssh, winrm, docker) contributes a Builder through the
// registry at init time; dispatch fails closed for any kind without a
// registered builder.
package transport

import (
	"fmt"

	"cvr/internal/logger"
	"cvr/internal/runner"
)

// Kind tags for the built-in backends.
const (
	KindSSH    = "ssh"
	KindWinRM  = "winrm"
	KindDocker = "docker"
)

// Transport describes an active remote connection to a target instance.
// Implementations are descriptors: they expose connection data but do not
// own the connection itself.
type Transport interface {
	// Kind returns the backend tag used for builder dispatch.
	Kind() string
	// Name returns the transport's display name for error messages.
	Name() string
	// Diagnose returns the transport's connection data.
	Diagnose() map[string]any
}

// Settings carries verifier-level options that feed into runner options but
// do not come from the transport itself.
type Settings struct {
	Verifier string
	Sudo     bool
	Format   string
	Logger   *logger.Logger
}

// Builder turns a merged connection descriptor into runner options.
type Builder interface {
	RunnerOptions(data map[string]any, settings Settings) (runner.Options, error)
}

// UnsupportedTransportError reports a transport whose backend kind has no
// registered options builder.
type UnsupportedTransportError struct {
	Verifier  string
	Transport string
}

func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("%s does not support the %s transport", e.Verifier, e.Transport)
}

// MergeState overlays per-invocation state (container id, negotiated port)
// onto the transport's diagnosed data. State entries win on key collision.
// Neither input is modified.
func MergeState(diagnosed, state map[string]any) map[string]any {
	merged := make(map[string]any, len(diagnosed)+len(state))
	for key, value := range diagnosed {
		merged[key] = value
	}
	for key, value := range state {
		merged[key] = value
	}
	return merged
}

// BuildRunnerOptions merges per-invocation state into the transport's
// diagnosed data and dispatches to the registered builder for its kind.
// A non-empty format setting is injected into the result for every backend.
func BuildRunnerOptions(t Transport, state map[string]any, settings Settings) (runner.Options, error) {
	builder, ok := Lookup(t.Kind())
	if !ok {
		return nil, &UnsupportedTransportError{Verifier: settings.Verifier, Transport: t.Name()}
	}

	data := MergeState(t.Diagnose(), state)
	opts, err := builder.RunnerOptions(data, settings)
	if err != nil {
		return nil, err
	}

	if settings.Format != "" {
		opts["format"] = settings.Format
	}
	return opts, nil
}
