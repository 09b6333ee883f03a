package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Security.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.Len(t, cfg.Scorecards, 4)
	assert.Equal(t, "양천생태", cfg.Scorecards[0].Venue)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("PARKPULSE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Len(t, cfg.Scorecards, 4, "built-in score cards when nothing is configured")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PARKPULSE_SERVER_PORT", "9000")
	t.Setenv("PARKPULSE_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9999
logging:
  level: warn
scorecards:
  - path: cards/spring.csv
    venue: 양천생태
  - path: cards/summer.xlsx
    venue: 소양강
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PARKPULSE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	require.Len(t, cfg.Scorecards, 2, "file list replaces the defaults wholesale")
	assert.Equal(t, ScorecardFile{Path: "cards/summer.xlsx", Venue: "소양강"}, cfg.Scorecards[1])
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))
	t.Setenv("PARKPULSE_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid default", mutate: func(*Config) {}, wantErr: false},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "empty scorecard list", mutate: func(c *Config) { c.Scorecards = nil }, wantErr: true},
		{name: "scorecard missing venue", mutate: func(c *Config) {
			c.Scorecards = Scorecards{{Path: "a.csv"}}
		}, wantErr: true},
		{name: "zero rate limit rps", mutate: func(c *Config) { c.Security.RateLimit.RPS = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
