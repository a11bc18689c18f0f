package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lazygrid/internal/config"
	"github.com/rshade/lazygrid/internal/logging"
	"github.com/rshade/lazygrid/internal/window"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestNew_DefaultsAreValid(t *testing.T) {
	cfg := config.New()

	require.NoError(t, cfg.Validate())
	s, err := cfg.Sizing()
	require.NoError(t, err)
	assert.InDelta(t, 72.0, s.ViewportWidth, 1e-9)
	assert.InDelta(t, 18.0, s.ViewportHeight, 1e-9)
	assert.Equal(t, config.CurrentSchemaVersion, cfg.SchemaVersion)
}

func TestMergeYAML_OverridesPresentKeys(t *testing.T) {
	path := writeFile(t, `
schema_version: "1.0.0"
grid:
  width: 120px
  buffer: 4
  transpose: true
unknown_section:
  anything: 1
`)
	cfg := config.New()

	require.NoError(t, config.MergeYAML(cfg, path))

	assert.Equal(t, "1.0.0", cfg.SchemaVersion)
	assert.Equal(t, "120px", cfg.Grid.Width)
	assert.Equal(t, 4, cfg.Grid.Buffer)
	assert.True(t, cfg.Grid.Transpose)
	assert.Equal(t, "18", cfg.Grid.Height, "absent keys keep their value")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.MergeYAML(nil, "whatever"))
	require.Error(t, config.MergeYAML(config.New(), filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeFile(t, "grid: [1, 2")
	require.Error(t, config.MergeYAML(config.New(), bad))

	wrongType := writeFile(t, "grid:\n  buffer: lots\n")
	cfg := config.New()
	require.Error(t, config.MergeYAML(cfg, wrongType))
	assert.Equal(t, 1, cfg.Grid.Buffer, "failed section must not be applied")
}

func TestMergeYAML_EmptyFile(t *testing.T) {
	path := writeFile(t, "# nothing here\n")
	cfg := config.New()

	require.NoError(t, config.MergeYAML(cfg, path))
	assert.Equal(t, config.New(), cfg)
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New().Grid, cfg.Grid)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "72", cfg.Grid.Width)
	})

	t.Run("invalid sizing is a configuration error", func(t *testing.T) {
		path := writeFile(t, "grid:\n  height: tall\n")
		_, err := config.Load(path)
		require.ErrorIs(t, err, window.ErrInvalidLength)
	})

	t.Run("unsupported schema", func(t *testing.T) {
		path := writeFile(t, "schema_version: \"2.3.0\"\n")
		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})

	t.Run("malformed schema", func(t *testing.T) {
		path := writeFile(t, "schema_version: banana\n")
		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeFile(t, "grid:\n  width: \"40\"\n")
		t.Setenv(config.EnvWidth, "64px")
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "64px", cfg.Grid.Width)
	})
}

func TestApplyEnv(t *testing.T) {
	cfg := config.New()

	err := cfg.ApplyEnv(env(map[string]string{
		config.EnvHeight:     "30",
		config.EnvItemWidth:  "8",
		config.EnvItemHeight: "2.5",
		config.EnvBuffer:     "3",
		config.EnvTranspose:  "true",
		config.EnvLogLevel:   "debug",
		config.EnvLogFormat:  "json",
		config.EnvLogFile:    "/tmp/lazygrid.log",
	}))
	require.NoError(t, err)

	assert.Equal(t, "30", cfg.Grid.Height)
	assert.InDelta(t, 8.0, cfg.Grid.ItemWidth, 1e-9)
	assert.InDelta(t, 2.5, cfg.Grid.ItemHeight, 1e-9)
	assert.Equal(t, 3, cfg.Grid.Buffer)
	assert.True(t, cfg.Grid.Transpose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/lazygrid.log", cfg.Logging.File)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	for _, key := range []string{config.EnvItemWidth, config.EnvItemHeight, config.EnvBuffer, config.EnvTranspose} {
		t.Run(key, func(t *testing.T) {
			err := config.New().ApplyEnv(env(map[string]string{key: "not-a-value"}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Grid.Buffer = 6
	cfg.Logging.File = "/var/log/lazygrid.log"

	require.NoError(t, cfg.Save(path))

	loaded := config.New()
	require.NoError(t, config.MergeYAML(loaded, path))
	assert.Equal(t, cfg, loaded)
}

func TestToLoggingConfig(t *testing.T) {
	console := config.LoggingConfig{Level: "warn", Format: "console"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, console.Output)
	assert.Equal(t, "warn", console.Level)

	file := config.LoggingConfig{Level: "info", Format: "json", File: "/tmp/x.log"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, file.Output)
	assert.Equal(t, "/tmp/x.log", file.File)
}
