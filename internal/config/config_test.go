package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, 300*time.Millisecond, cfg.Store.QueryLatency)
	assert.Equal(t, 800*time.Millisecond, cfg.Store.SaveLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.Vendor.FetchDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Vendor.CategoryDelay)
	assert.Equal(t, 8, cfg.Vendor.MaxItems)
	assert.Equal(t, 140, cfg.Loyalty.StartingBalance)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_FileAndDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 1.2.0
server:
  addr: "127.0.0.1:9000"
store:
  seed: false
  query_latency: 50ms
vendor:
  max_items: 4
  fetch_delay: 2s
`), 0600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.Store.QueryLatency)
	assert.Equal(t, 2*time.Second, cfg.Vendor.FetchDelay)
	assert.Equal(t, 4, cfg.Vendor.MaxItems)
	// Untouched fields keep their defaults.
	assert.Equal(t, 800*time.Millisecond, cfg.Store.SaveLatency)
}

func TestLoad_RejectsUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2.0.0\n"), 0600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Loyalty.StartingBalance = 10

	require.NoError(t, cfg.Save(path))
	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, loaded.Loyalty.StartingBalance)
	assert.Equal(t, cfg.Vendor, loaded.Vendor)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvAddr:           ":7000",
		config.EnvLogLevel:       "debug",
		config.EnvStartingPoints: "not-a-number",
		config.EnvNoLatency:      "true",
	}
	cfg := config.New()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 140, cfg.Loyalty.StartingBalance, "bad numbers are ignored")
	assert.Zero(t, cfg.Store.QueryLatency)
	assert.Zero(t, cfg.Vendor.FetchDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "bad version", mutate: func(c *config.Config) { c.Version = "one" }},
		{name: "empty addr", mutate: func(c *config.Config) { c.Server.Addr = "" }},
		{name: "zero max items", mutate: func(c *config.Config) { c.Vendor.MaxItems = 0 }},
		{name: "negative jitter", mutate: func(c *config.Config) { c.Vendor.PriceJitter = -1 }},
		{name: "negative balance", mutate: func(c *config.Config) { c.Loyalty.StartingBalance = -1 }},
		{name: "negative latency", mutate: func(c *config.Config) { c.Store.SaveLatency = -time.Second }},
		{name: "unknown format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	assert.NotNil(t, config.GetGlobalConfig())

	custom := config.New()
	custom.Output.DefaultFormat = config.FormatJSON
	config.SetGlobalConfig(custom)
	assert.Equal(t, config.FormatJSON, config.GetDefaultOutputFormat())
}

func TestGetConfigDir_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)

	got, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig().Output)

	lc.File = "/tmp/greencart.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/greencart.log", got.File)
	assert.Equal(t, "warn", got.Level)
}
