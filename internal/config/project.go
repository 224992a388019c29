package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Project is the cvr.yaml file schema.
type Project struct {
	TestBasePath string            `yaml:"test_base_path"`
	Sudo         bool              `yaml:"sudo"`
	Format       string            `yaml:"format"`
	Workers      int               `yaml:"workers"`
	RunnerBinary string            `yaml:"runner_binary"`
	ReservedDirs []string          `yaml:"reserved_dirs"`
	Suites       []string          `yaml:"suites"`
	Transport    TransportSettings `yaml:"transport"`
}

// LoadProject reads the project file and .env and applies both to the config.
// A missing project file leaves the defaults untouched; a malformed one is an
// error. Credentials from the environment override the project file.
func (c *Config) LoadProject() error {
	path := filepath.Join(c.ProjectPath, DefaultProjectFile)

	data, err := os.ReadFile(path)
	if err == nil {
		var project Project
		if err := yaml.Unmarshal(data, &project); err != nil {
			return fmt.Errorf("parse %s: %w", DefaultProjectFile, err)
		}
		c.apply(&project)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", DefaultProjectFile, err)
	}

	c.loadEnv()
	return nil
}

// apply overlays non-zero project file values onto the config.
func (c *Config) apply(p *Project) {
	if p.TestBasePath != "" {
		c.TestBasePath = p.TestBasePath
	}
	if p.Format != "" {
		c.Format = p.Format
	}
	if p.Workers > 0 {
		c.Workers = p.Workers
	}
	if p.RunnerBinary != "" {
		c.RunnerBinary = p.RunnerBinary
	}
	if len(p.ReservedDirs) > 0 {
		c.ReservedDirs = p.ReservedDirs
	}
	if len(p.Suites) > 0 {
		c.Suites = p.Suites
	}
	if p.Transport.Kind != "" {
		c.Transport = p.Transport
	}
	c.Sudo = p.Sudo
}

// loadEnv loads the project .env (if present) and picks up credential
// overrides, so passwords and key paths stay out of cvr.yaml.
func (c *Config) loadEnv() {
	envPath := filepath.Join(c.ProjectPath, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		// Ignore load errors: a broken .env should not block verification
		_ = godotenv.Load(envPath)
	}

	if v := os.Getenv("CVR_PASSWORD"); v != "" {
		c.Transport.Password = v
	}
	if v := os.Getenv("CVR_KEY_FILE"); v != "" {
		c.Transport.KeyFiles = append(c.Transport.KeyFiles, v)
	}
	if v := os.Getenv("CVR_USER"); v != "" {
		c.Transport.User = v
	}
}
