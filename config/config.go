// Package config loads pathprobe's YAML configuration.
//
// A file only needs the keys it wants to change: Load starts from Default
// and unmarshals the file over it, then validates the result. CLI flags are
// applied by the caller after Load.
//
//	log:
//	  level: debug
//	  json: true
//	metrics:
//	  addr: ":9090"
//	trace:
//	  enabled: true
//	shell:
//	  prompt: "pathprobe> "
//	generator:
//	  seed: 42
//	  min_weight: 1
//	  max_weight: 5
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathprobe/logging"
)

// ErrInvalidConfig indicates a configuration that parsed but failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Trace     TraceConfig     `yaml:"trace"`
	Shell     ShellConfig     `yaml:"shell"`
	Generator GeneratorConfig `yaml:"generator"`
}

// LogConfig maps onto logging.Config.
type LogConfig struct {
	Level string `yaml:"level" validate:"loglevel"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// TraceConfig controls span export. When enabled, finished query spans are
// written to stderr.
type TraceConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ShellConfig controls the interactive command loop.
type ShellConfig struct {
	Prompt string `yaml:"prompt"`
}

// GeneratorConfig holds defaults for `pathprobe gen`. Seed 0 means "seed
// from the clock".
type GeneratorConfig struct {
	Seed      int64 `yaml:"seed"`
	MinWeight int64 `yaml:"min_weight" validate:"gte=1"`
	MaxWeight int64 `yaml:"max_weight" validate:"gtefield=MinWeight"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("loglevel", validateLogLevel)
}

// validateLogLevel accepts anything logging.ParseLevel accepts.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// Default returns the built-in configuration: warn-level text logs, no
// metrics endpoint, prompt "> ", weights 1..5.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "warn"},
		Shell: ShellConfig{Prompt: "> "},
		Generator: GeneratorConfig{
			MinWeight: 1,
			MaxWeight: 5,
		},
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints; failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Logging converts the log section into a logging.Config. The level has
// already been validated, so a parse failure falls back to Info.
func (c Config) Logging() logging.Config {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{Level: lvl, JSON: c.Log.JSON, Service: "pathprobe"}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
