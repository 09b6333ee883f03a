// Package config loads and validates the application configuration.
// Values come from environment variables (PARKPULSE_ prefix) merged
// over an optional YAML file; the score-card source list has built-in
// defaults so the server runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Server     Server     `yaml:"server" envconfig:"SERVER"`
	Security   Security   `yaml:"security" envconfig:"SECURITY"`
	Logging    Logging    `yaml:"logging" envconfig:"LOGGING"`
	Scorecards Scorecards `yaml:"scorecards" validate:"required,min=1,dive"`
}

// Server holds HTTP server settings.
type Server struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

// Security holds CORS and rate-limit settings.
type Security struct {
	AllowedOrigins []string  `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080" validate:"min=1"`
	RateLimit      RateLimit `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimit holds token-bucket rate limiting settings.
type RateLimit struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100" validate:"gt=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50" validate:"gt=0"`
}

// Logging holds slog settings.
type Logging struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/parkpulse.log"`
}

// ScorecardFile maps one score-card file to its venue alias.
type ScorecardFile struct {
	Path  string `yaml:"path" validate:"required"`
	Venue string `yaml:"venue" validate:"required"`
}

// Scorecards is the ordered list of configured score cards. Order
// matters: parsed records keep file-then-row order.
type Scorecards []ScorecardFile

// Load builds the configuration from environment variables and, when
// present, the YAML file named by PARKPULSE_CONFIG (or ./config.yaml).
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PARKPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path := configFilePath(); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if len(cfg.Scorecards) == 0 {
		cfg.Scorecards = append(Scorecards(nil), defaultScorecards...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// mergeFile overlays YAML values onto cfg. The file's scorecard list
// replaces the defaults wholesale; scalar sections only override when
// the file actually sets them.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return err
	}

	if len(fileCfg.Scorecards) > 0 {
		cfg.Scorecards = fileCfg.Scorecards
	}
	if fileCfg.Server.Port != 0 {
		cfg.Server.Port = fileCfg.Server.Port
	}
	if fileCfg.Logging.Level != "" {
		cfg.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Output != "" {
		cfg.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != "" {
		cfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if len(fileCfg.Security.AllowedOrigins) > 0 {
		cfg.Security.AllowedOrigins = fileCfg.Security.AllowedOrigins
	}
	return nil
}

func configFilePath() string {
	if path := os.Getenv("PARKPULSE_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

// Default returns the built-in configuration, used by tests and the
// CLI when the environment is empty.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: Security{
			AllowedOrigins: []string{"http://localhost:8080"},
			RateLimit:      RateLimit{Enabled: true, RPS: 100, Burst: 50},
		},
		Logging: Logging{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/parkpulse.log",
		},
		Scorecards: append(Scorecards(nil), defaultScorecards...),
	}
}
