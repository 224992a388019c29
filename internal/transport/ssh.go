package transport

import "cvr/internal/runner"

func init() {
	Register(KindSSH, sshBuilder{})
}

// SSH describes a secure-shell connection to a target instance.
type SSH struct {
	Host                 string
	Port                 int
	User                 string
	Password             string
	KeyFiles             []string
	Timeout              int
	ConnectionRetries    int
	ConnectionRetrySleep int
	MaxWaitUntilReady    int
	KeepAlive            bool
	KeepAliveInterval    int
	Compression          bool
	CompressionLevel     int
}

// Kind returns the backend tag for dispatch.
func (t *SSH) Kind() string { return KindSSH }

// Name returns the transport's display name.
func (t *SSH) Name() string { return "SSH" }

// Diagnose returns the connection data the options builder consumes.
// Key material and password are only present when actually configured.
func (t *SSH) Diagnose() map[string]any {
	data := map[string]any{
		"hostname":               t.Host,
		"port":                   t.Port,
		"username":               t.User,
		"keepalive":              t.KeepAlive,
		"keepalive_interval":     t.KeepAliveInterval,
		"timeout":                t.Timeout,
		"connection_retries":     t.ConnectionRetries,
		"connection_retry_sleep": t.ConnectionRetrySleep,
		"max_wait_until_ready":   t.MaxWaitUntilReady,
		"compression":            t.Compression,
		"compression_level":      t.CompressionLevel,
	}
	if len(t.KeyFiles) > 0 {
		data["keys"] = t.KeyFiles
	}
	if t.Password != "" {
		data["password"] = t.Password
	}
	return data
}

type sshBuilder struct{}

// RunnerOptions maps a merged SSH descriptor to runner options. key_files
// and password are omitted entirely when absent from the descriptor; sudo
// comes from the verifier settings, not the transport.
func (sshBuilder) RunnerOptions(data map[string]any, settings Settings) (runner.Options, error) {
	opts := runner.Options{
		"backend":                "ssh",
		"logger":                 settings.Logger,
		"sudo":                   settings.Sudo,
		"host":                   data["hostname"],
		"port":                   data["port"],
		"user":                   data["username"],
		"keepalive":              data["keepalive"],
		"keepalive_interval":     data["keepalive_interval"],
		"connection_timeout":     data["timeout"],
		"connection_retries":     data["connection_retries"],
		"connection_retry_sleep": data["connection_retry_sleep"],
		"max_wait_until_ready":   data["max_wait_until_ready"],
		"compression":            data["compression"],
		"compression_level":      data["compression_level"],
	}

	if keys, ok := data["keys"]; ok {
		opts["key_files"] = keys
	}
	if password, ok := data["password"]; ok {
		opts["password"] = password
	}

	return opts, nil
}
