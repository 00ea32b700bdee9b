package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitializeFlags(flags, DefaultConfig())
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(viper.New(), newFlags(t,
		"--tests-dir", "/data/tests",
		"--concurrency", "10,20",
		"--languages", "go,rust",
		"--log-level", "DEBUG",
	), "")
	require.NoError(t, err)
	assert.Equal(t, "/data/tests", cfg.TestsDir)
	assert.Equal(t, []int{10, 20}, cfg.Concurrency)
	assert.Equal(t, []string{"go", "rust"}, cfg.Languages)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BENCHTOOLS_RESULTS_DIR", "/tmp/results")
	t.Setenv("BENCHTOOLS_CONCURRENCY", "100, 200")

	cfg, err := Load(viper.New(), newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/results", cfg.ResultsDir)
	assert.Equal(t, []int{100, 200}, cfg.Concurrency)

	// explicitly set flags win over the environment
	cfg, err = Load(viper.New(), newFlags(t, "--results-dir", "out"), "")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.ResultsDir)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "benchtools.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tests-dir: /srv/tests\nlanguages: [c, zig]\nconcurrency: [1, 2, 3]\n"), 0644))

		cfg, err := Load(viper.New(), newFlags(t), path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/tests", cfg.TestsDir)
		assert.Equal(t, []string{"c", "zig"}, cfg.Languages)
		assert.Equal(t, []int{1, 2, 3}, cfg.Concurrency)
		assert.Equal(t, "../data/results", cfg.ResultsDir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(viper.New(), newFlags(t), filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TestsDir = ""
		cfg.Concurrency = []int{250, -1, 0}
		cfg.LogLevel = "loud"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tests-dir must not be empty")
		assert.Contains(t, err.Error(), "invalid concurrency level -1")
		assert.Contains(t, err.Error(), "invalid concurrency level 0")
		assert.Contains(t, err.Error(), `invalid log-level "loud"`)
	})

	t.Run("no concurrency level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Concurrency = nil
		require.ErrorContains(t, cfg.Validate(), "at least one concurrency level is required")
	})

	t.Run("empty language name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Languages = []string{"rust", ""}
		require.ErrorContains(t, cfg.Validate(), "languages must not contain empty names")
	})
}

func TestLoad_BracketedList(t *testing.T) {
	t.Setenv("BENCHTOOLS_CONCURRENCY", "[5,6]")

	cfg, err := Load(viper.New(), newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, cfg.Concurrency)
}
