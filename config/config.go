package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/http-server-bench/benchtools/model/benchmark"
)

// EnvPrefix is the prefix of environment variables overriding configuration values,
// e.g. BENCHTOOLS_TESTS_DIR.
const EnvPrefix = "BENCHTOOLS"

const (
	// All constant strings are used for CLI flag names and corresponding keys for config values.
	testsDir    = "tests-dir"
	resultsDir  = "results-dir"
	concurrency = "concurrency"
	languages   = "languages"
	logLevel    = "log-level"
)

// Config is the configuration shared by all benchtools commands.
type Config struct {
	// TestsDir holds one directory per endpoint with the benchmark logs.
	TestsDir string `mapstructure:"tests-dir"`
	// ResultsDir receives the rendered charts.
	ResultsDir string `mapstructure:"results-dir"`
	// Concurrency lists the concurrency levels to collect, in output order.
	Concurrency []int `mapstructure:"concurrency"`
	// Languages are the server implementations compared against each other.
	Languages []string `mapstructure:"languages"`
	LogLevel  string   `mapstructure:"log-level"`
}

// DefaultConfig returns the layout used by the benchmark scripts, relative to the scripts directory.
func DefaultConfig() *Config {
	return &Config{
		TestsDir:    "../data/tests",
		ResultsDir:  "../data/results",
		Concurrency: append([]int(nil), benchmark.DefaultConcurrencyLevels...),
		Languages:   []string{"rust", "c"},
		LogLevel:    zerolog.InfoLevel.String(),
	}
}

// InitializeFlags registers the configuration flags on the provided flag set,
// using the values of defaults as flag defaults.
func InitializeFlags(flags *pflag.FlagSet, defaults *Config) {
	flags.String(testsDir, defaults.TestsDir, "directory with one sub directory of benchmark logs per endpoint")
	flags.String(resultsDir, defaults.ResultsDir, "directory the comparison charts are written to")
	flags.IntSlice(concurrency, defaults.Concurrency, "concurrency levels to collect")
	flags.StringSlice(languages, defaults.Languages, "languages to compare")
	flags.String(logLevel, defaults.LogLevel, "log level (trace, debug, info, warn, error)")
}

// Load resolves the configuration from flags, environment and the optional config file,
// in that order of precedence, and validates it.
func Load(conf *viper.Viper, flags *pflag.FlagSet, configFile string) (*Config, error) {
	if err := conf.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("could not bind flags: %w", err)
	}

	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if configFile != "" {
		conf.SetConfigFile(configFile)
		if err := conf.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	err := conf.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimBracketsHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		trimSpaceHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns all problems of the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.TestsDir == "" {
		result = multierror.Append(result, fmt.Errorf("%s must not be empty", testsDir))
	}
	if c.ResultsDir == "" {
		result = multierror.Append(result, fmt.Errorf("%s must not be empty", resultsDir))
	}
	if len(c.Concurrency) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one %s level is required", concurrency))
	}
	for _, level := range c.Concurrency {
		if level <= 0 {
			result = multierror.Append(result, fmt.Errorf("invalid %s level %d must be greater than 0", concurrency, level))
		}
	}
	for _, language := range c.Languages {
		if language == "" {
			result = multierror.Append(result, fmt.Errorf("%s must not contain empty names", languages))
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid %s %q: %w", logLevel, c.LogLevel, err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Level returns the parsed log level. The configuration must have been validated.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// trimSpaceHookFunc trims the strings produced from comma separated values, so that
// "250, 500" decodes like "250,500".
func trimSpaceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || f.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(s), nil
	}
}

// trimBracketsHookFunc accepts list values written as "[250,500]".
func trimBracketsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		return strings.Trim(strings.TrimSpace(s), "[]"), nil
	}
}
