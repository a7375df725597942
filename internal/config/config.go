package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the serve-mode configuration.
type Config struct {
	Port          int    `yaml:"port"`
	DatabasePath  string `yaml:"database_path"`
	DataDir       string `yaml:"data_dir"`       // optional minecraft-data checkout for display names
	DefaultRadius int    `yaml:"default_radius"` // search radius when a job omits one
	JobQueueSize  int    `yaml:"job_queue_size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          8000,
		DatabasePath:  "bedrockmate.db",
		DefaultRadius: 5000,
		JobQueueSize:  64,
	}
}

// Load reads a YAML config file into a fresh Config on top of defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.DefaultRadius <= 0 {
		return fmt.Errorf("default_radius %d must be positive", c.DefaultRadius)
	}
	if c.JobQueueSize <= 0 {
		return fmt.Errorf("job_queue_size %d must be positive", c.JobQueueSize)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["db"] {
		cfg.DatabasePath = fromFile.DatabasePath
	}
	if !explicitFlags["data"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["default-radius"] {
		cfg.DefaultRadius = fromFile.DefaultRadius
	}
	if !explicitFlags["job-queue"] {
		cfg.JobQueueSize = fromFile.JobQueueSize
	}
}
