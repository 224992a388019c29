package transport

import "cvr/internal/runner"

// The docker backend is optional: it participates in dispatch only because
// this file is compiled in and registers itself. Builds that leave it out
// make docker-kinded transports fail closed as unsupported.
func init() {
	Register(KindDocker, dockerBuilder{})
}

// Docker describes a connection into a running test container.
type Docker struct {
	ContainerID          string
	Timeout              int
	ConnectionRetries    int
	ConnectionRetrySleep int
	MaxWaitUntilReady    int
}

// Kind returns the backend tag for dispatch.
func (t *Docker) Kind() string { return KindDocker }

// Name returns the transport's display name.
func (t *Docker) Name() string { return "Docker" }

// Diagnose returns the connection data the options builder consumes. The
// container id sits nested under the data-container entry, matching the
// shape the container driver leaves in per-invocation state.
func (t *Docker) Diagnose() map[string]any {
	return map[string]any{
		"data_container":         map[string]any{"id": t.ContainerID},
		"timeout":                t.Timeout,
		"connection_retries":     t.ConnectionRetries,
		"connection_retry_sleep": t.ConnectionRetrySleep,
		"max_wait_until_ready":   t.MaxWaitUntilReady,
	}
}

type dockerBuilder struct{}

// RunnerOptions maps a merged container descriptor to runner options. The
// runner addresses the container by id through the host option.
func (dockerBuilder) RunnerOptions(data map[string]any, settings Settings) (runner.Options, error) {
	var containerID any
	if container, ok := data["data_container"].(map[string]any); ok {
		containerID = container["id"]
	}

	return runner.Options{
		"backend":                "docker",
		"logger":                 settings.Logger,
		"host":                   containerID,
		"connection_timeout":     data["timeout"],
		"connection_retries":     data["connection_retries"],
		"connection_retry_sleep": data["connection_retry_sleep"],
		"max_wait_until_ready":   data["max_wait_until_ready"],
	}, nil
}
