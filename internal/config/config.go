package config

import "path/filepath"

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string
	TestBasePath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers      int
	RunnerBinary string

	// Verifier settings passed through to the runner
	Sudo   bool
	Format string

	// Suites declared for this project
	Suites []string

	// Transport settings for the target instance
	Transport TransportSettings

	// ReservedDirs are suite subdirectories excluded from discovery
	ReservedDirs []string

	// Command flags
	Flags Flags
}

// TransportSettings describes the remote connection to the target instance.
// Which fields apply depends on Kind (ssh, winrm or docker).
type TransportSettings struct {
	Kind string `yaml:"kind"`

	// SSH
	Host              string   `yaml:"host"`
	Port              int      `yaml:"port"`
	User              string   `yaml:"user"`
	Password          string   `yaml:"password"`
	KeyFiles          []string `yaml:"key_files"`
	KeepAlive         bool     `yaml:"keepalive"`
	KeepAliveInterval int      `yaml:"keepalive_interval"`
	Compression       bool     `yaml:"compression"`
	CompressionLevel  int      `yaml:"compression_level"`

	// WinRM
	Endpoint string `yaml:"endpoint"`

	// Docker
	ContainerID string `yaml:"container_id"`

	// Shared connection tuning
	Timeout              int `yaml:"timeout"`
	ConnectionRetries    int `yaml:"connection_retries"`
	ConnectionRetrySleep int `yaml:"connection_retry_sleep"`
	MaxWaitUntilReady    int `yaml:"max_wait_until_ready"`
}

// Flags holds command-line flags
type Flags struct {
	Workers      int
	SuiteFilter  string
	TestBasePath string
	Format       string
	LogLevel     string
	FailFast     bool
	OpenFailures bool
	ShowHelpers  bool
	ShowControls bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestBasePath:   DefaultTestBasePath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		RunnerBinary:   DefaultRunnerBinary,
		Suites:         []string{DefaultSuiteName},
		Transport:      TransportSettings{Kind: "ssh"},
		Flags:          Flags{Workers: DefaultWorkers},
	}
	// Copy default reserved dirs so callers can mutate their own slice
	cfg.ReservedDirs = make([]string, len(DefaultReservedDirs))
	copy(cfg.ReservedDirs, DefaultReservedDirs)
	return cfg
}

// GetTestBasePath returns the suite base path, using the flag if provided
func (c *Config) GetTestBasePath() string {
	base := c.TestBasePath
	if c.Flags.TestBasePath != "" {
		base = c.Flags.TestBasePath
	}
	if filepath.IsAbs(base) {
		return base
	}
	return filepath.Join(c.ProjectPath, base)
}

// GetOutputPath returns the full path to the output JSON file (under the
// project so verify and failures always read/write the same file).
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetFormat returns the reporter format, using the flag if provided
func (c *Config) GetFormat() string {
	if c.Flags.Format != "" {
		return c.Flags.Format
	}
	return c.Format
}
