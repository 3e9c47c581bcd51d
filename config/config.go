// Package config provides configuration loading for rowreduce.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowreduce/gauss"
)

// Config contains all rowreduce configuration settings.
type Config struct {
	// Solver contains settings for the elimination engines.
	Solver SolverConfig `yaml:"solver"`

	// Output contains settings for report rendering.
	Output OutputConfig `yaml:"output"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig configures the elimination engines.
type SolverConfig struct {
	// Method is the default engine: "ref" / "gaussian" or "rref" / "gauss-jordan".
	Method string `yaml:"method"`

	// Epsilon is the zero threshold. Zero means gauss.DefaultEpsilon.
	Epsilon float64 `yaml:"epsilon,omitempty"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is "text" (narration) or "yaml" (structured trace).
	Format string `yaml:"format"`
}

// LoggingConfig configures logging verbosity.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `yaml:"level"`
}

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "yaml"}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Method: "rref",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from path (or, when path is empty, from
// ~/.rowreduce/config.yaml if it exists) and applies environment overrides.
// Order: defaults -> config file -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".rowreduce", "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := gauss.ParseMethod(c.Solver.Method); err != nil {
		return fmt.Errorf("invalid solver method: %w", err)
	}

	if c.Solver.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative, got %g", c.Solver.Epsilon)
	}

	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("invalid output format %q: must be one of %v", c.Output.Format, ValidFormats)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// Method returns the parsed default method.
func (c *Config) Method() (gauss.Method, error) {
	return gauss.ParseMethod(c.Solver.Method)
}

// SolverOptions returns the engine options implied by the configuration.
// Call Validate first; a negative epsilon would panic in gauss.WithEpsilon.
func (c *Config) SolverOptions() []gauss.Option {
	if c.Solver.Epsilon == 0 {
		return nil
	}

	return []gauss.Option{gauss.WithEpsilon(c.Solver.Epsilon)}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROWREDUCE_METHOD"); v != "" {
		cfg.Solver.Method = v
	}

	if v := os.Getenv("ROWREDUCE_EPSILON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Solver.Epsilon = f
		}
	}

	if v := os.Getenv("ROWREDUCE_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	if v := os.Getenv("ROWREDUCE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
