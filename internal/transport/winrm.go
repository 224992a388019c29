package transport

import (
	"net/url"
	"strconv"

	"cvr/internal/runner"
)

func init() {
	Register(KindWinRM, winrmBuilder{})
}

// WinRM describes a remote-management connection to a Windows target.
// The connection is addressed by a single endpoint URI rather than separate
// host/port fields.
type WinRM struct {
	Endpoint             string
	User                 string
	Password             string
	ConnectionRetries    int
	ConnectionRetrySleep int
	MaxWaitUntilReady    int
}

// Kind returns the backend tag for dispatch.
func (t *WinRM) Kind() string { return KindWinRM }

// Name returns the transport's display name.
func (t *WinRM) Name() string { return "WinRM" }

// Diagnose returns the connection data the options builder consumes.
func (t *WinRM) Diagnose() map[string]any {
	return map[string]any{
		"endpoint":               t.Endpoint,
		"username":               t.User,
		"password":               t.Password,
		"connection_retries":     t.ConnectionRetries,
		"connection_retry_sleep": t.ConnectionRetrySleep,
		"max_wait_until_ready":   t.MaxWaitUntilReady,
	}
}

type winrmBuilder struct{}

// RunnerOptions maps a merged WinRM descriptor to runner options. Host and
// port are parsed out of the endpoint URI; a malformed endpoint is a
// configuration defect and the parse error propagates as-is.
func (winrmBuilder) RunnerOptions(data map[string]any, settings Settings) (runner.Options, error) {
	endpoint, _ := data["endpoint"].(string)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	port := 5985
	if parsed.Port() != "" {
		port, err = strconv.Atoi(parsed.Port())
		if err != nil {
			return nil, err
		}
	} else if parsed.Scheme == "https" {
		port = 5986
	}

	return runner.Options{
		"backend":                "winrm",
		"logger":                 settings.Logger,
		"host":                   parsed.Hostname(),
		"port":                   port,
		"user":                   data["username"],
		"password":               data["password"],
		"connection_retries":     data["connection_retries"],
		"connection_retry_sleep": data["connection_retry_sleep"],
		"max_wait_until_ready":   data["max_wait_until_ready"],
	}, nil
}
