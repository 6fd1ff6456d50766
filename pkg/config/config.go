package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/srodi/sysreport/pkg/types"
)

// DefaultOutputPath is where report files land unless overridden.
const DefaultOutputPath = "./Logs"

// Config is the full option surface recognized by the reporter. File values
// start from Default and CLI flags may override them afterwards.
type Config struct {
	OutputPath       string   `yaml:"output_path" validate:"required"`
	TopN             int      `yaml:"top_n" validate:"gt=0"`
	ExcludeSystem    bool     `yaml:"exclude_system"`
	ExcludeProcesses []string `yaml:"exclude_processes" validate:"dive,required"`
}

var validate = validator.New()

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		TopN:       types.DefaultTopN,
	}
}

// Load reads a YAML config file on top of the defaults and validates the
// result. Any parse or validation failure aborts the run before output.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config YAML %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct constraints (non-empty output path, positive
// top_n, no blank exclusion entries).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
