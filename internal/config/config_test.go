package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(parse(t))
	require.NoError(t, err)

	assert.Equal(t, DefaultCount, cfg.Count)
	assert.False(t, cfg.Replacement)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "unique", cfg.Strategy())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(parse(t, "-c", "3", "-r", "--seed", "12", "-n", "-v"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Count)
	assert.True(t, cfg.Replacement)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(12), *cfg.Seed)
	assert.True(t, cfg.LineNumbers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "replacement", cfg.Strategy())
}

func TestLoad_ZeroSeedIsStillASeed(t *testing.T) {
	cfg, err := Load(parse(t, "--seed", "0"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(0), *cfg.Seed)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("QUICKLINES_SEED", "42")
	t.Setenv("QUICKLINES_LINE_NUMBERS", "true")
	t.Setenv("QUICKLINES_COUNT", "7")

	cfg, err := Load(parse(t, "--count", "5"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.True(t, cfg.LineNumbers)
	assert.Equal(t, 5, cfg.Count, "flags win over the environment")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quicklines.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 25\nexact: true\nlog-format: json\n"), 0o644))

	cfg, err := Load(parse(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Count)
	assert.True(t, cfg.Exact)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "exact-unique", cfg.Strategy())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(parse(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Count: 1, BufferSize: 1, LogLevel: "info", LogFormat: "console"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Count = -1 }},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }},
		{"stride with replacement", func(c *Config) { c.Stride, c.Replacement = true, true }},
		{"stride with exact", func(c *Config) { c.Stride, c.Exact = true, true }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "stride", Config{Stride: true}.Strategy())
	assert.Equal(t, "exact-replacement", Config{Exact: true, Replacement: true}.Strategy())
}
