// Package config resolves sampling options from command-line flags,
// QUICKLINES_* environment variables and an optional config file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"quicklines/internal/logging"
)

const (
	CountKey       = "count"
	ReplacementKey = "replacement"
	SeedKey        = "seed"
	ExactKey       = "exact"
	StrideKey      = "stride"
	LineNumbersKey = "line-numbers"
	BufferSizeKey  = "buffer-size"
	LogLevelKey    = "log-level"
	LogFormatKey   = "log-format"
	VerboseKey     = "verbose"
	ConfigFileKey  = "config"

	EnvPrefix = "QUICKLINES"

	DefaultCount      = 10
	DefaultBufferSize = 64 * 1024
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the options for one sampling run.
type Config struct {
	Count       int
	Replacement bool
	// Seed is nil when no seed was configured.
	Seed        *int64
	Exact       bool
	Stride      bool
	LineNumbers bool
	BufferSize  int
	LogLevel    string
	LogFormat   string
}

// AddFlags registers the sampling flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.IntP(CountKey, "c", DefaultCount, "Number of lines to sample")
	fs.BoolP(ReplacementKey, "r", false, "Sample with replacement; the same line may be emitted more than once")
	fs.Int64P(SeedKey, "s", 0, "Seed for reproducible output; a time-based seed is used when unset")
	fs.Bool(ExactKey, false, "Index every line first and sample uniformly over lines instead of bytes")
	fs.Bool(StrideKey, false, "Emit lines at evenly spaced offsets, in file order, instead of random ones")
	fs.BoolP(LineNumbersKey, "n", false, "Prefix each line with its 1-based line number and a tab")
	fs.Int(BufferSizeKey, DefaultBufferSize, "Size in bytes of the output buffer")
	fs.String(LogLevelKey, "warn", "Log level for diagnostics on stderr (debug, info, warn, error)")
	fs.String(LogFormatKey, logging.FormatConsole, "Log format (console, json)")
	fs.BoolP(VerboseKey, "v", false, "Shorthand for --log-level=debug")
	fs.String(ConfigFileKey, "", "Optional config file (yaml, toml or json) supplying flag defaults")
}

// BuildViper layers fs over the environment and the config file named by
// the config flag, if any.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return v, nil
}

// Load resolves and validates a Config from fs.
func Load(fs *pflag.FlagSet) (Config, error) {
	v, err := BuildViper(fs)
	if err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

// FromViper reads a Config out of v and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Count:       v.GetInt(CountKey),
		Replacement: v.GetBool(ReplacementKey),
		Exact:       v.GetBool(ExactKey),
		Stride:      v.GetBool(StrideKey),
		LineNumbers: v.GetBool(LineNumbersKey),
		BufferSize:  v.GetInt(BufferSizeKey),
		LogLevel:    v.GetString(LogLevelKey),
		LogFormat:   v.GetString(LogFormatKey),
	}
	if v.IsSet(SeedKey) {
		seed := v.GetInt64(SeedKey)
		cfg.Seed = &seed
	}
	if v.GetBool(VerboseKey) && !v.IsSet(LogLevelKey) {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// Validate reports the first inconsistent option.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalid, c.Count)
	case c.BufferSize <= 0:
		return fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalid, c.BufferSize)
	case c.Stride && (c.Replacement || c.Exact):
		return fmt.Errorf("%w: --stride cannot be combined with --replacement or --exact", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Strategy names the sampler the options select.
func (c Config) Strategy() string {
	switch {
	case c.Stride:
		return "stride"
	case c.Exact && c.Replacement:
		return "exact-replacement"
	case c.Exact:
		return "exact-unique"
	case c.Replacement:
		return "replacement"
	default:
		return "unique"
	}
}
