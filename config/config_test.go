package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathprobe/config"
	"github.com/katalvlaran/pathprobe/logging"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Equal(t, "> ", cfg.Shell.Prompt)
	assert.Equal(t, int64(1), cfg.Generator.MinWeight)
	assert.Equal(t, int64(5), cfg.Generator.MaxWeight)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "log:\n  level: debug\nmetrics:\n  addr: \":9090\"\ngenerator:\n  seed: 42\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, "> ", cfg.Shell.Prompt)
	assert.Equal(t, int64(5), cfg.Generator.MaxWeight)

	lc := cfg.Logging()
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, "pathprobe", lc.Service)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"unknown level", "log:\n  level: chatty\n"},
		{"zero min weight", "generator:\n  min_weight: 0\n"},
		{"max below min", "generator:\n  min_weight: 4\n  max_weight: 2\n"},
		{"bad metrics addr", "metrics:\n  addr: \"no-port\"\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(writeFile(t, tc.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = config.Load(writeFile(t, "log: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()
	want := config.Default()
	want.Generator.Seed = 7

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := config.Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
