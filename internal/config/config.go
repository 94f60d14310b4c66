// Package config loads lvnum settings from defaults, an optional YAML file,
// LVNUM_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvnum/matrix"
)

// EnvPrefix prefixes every environment variable, e.g. LVNUM_BERNOULLI_P.
const EnvPrefix = "LVNUM"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the complete lvnum configuration.
type Config struct {
	Output    string          `mapstructure:"output"    yaml:"output"`
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level"`
	Bernoulli BernoulliConfig `mapstructure:"bernoulli" yaml:"bernoulli"`
	Zip       ZipConfig       `mapstructure:"zip"       yaml:"zip"`
	Transpose TransposeConfig `mapstructure:"transpose" yaml:"transpose"`
}

// BernoulliConfig selects the distribution parameter and the evaluation point.
type BernoulliConfig struct {
	P  float64 `mapstructure:"p"  yaml:"p"`
	At float64 `mapstructure:"at" yaml:"at"`
}

// ZipConfig holds the two operands of the element-wise sum.
type ZipConfig struct {
	A []float64 `mapstructure:"a" yaml:"a"`
	B []float64 `mapstructure:"b" yaml:"b"`
}

// TransposeConfig describes the matrix built from a flat buffer.
type TransposeConfig struct {
	Data   []float64 `mapstructure:"data"   yaml:"data"`
	Rows   int       `mapstructure:"rows"   yaml:"rows"`
	Cols   int       `mapstructure:"cols"   yaml:"cols"`
	Layout string    `mapstructure:"layout" yaml:"layout"`
}

// Default returns the built-in configuration: the canonical demonstration
// inputs, text output and info logging.
func Default() *Config {
	return &Config{
		Output:   OutputText,
		LogLevel: zerolog.InfoLevel.String(),
		Bernoulli: BernoulliConfig{
			P:  0.1,
			At: 0,
		},
		Zip: ZipConfig{
			A: []float64{1, 2, 3, 4},
			B: []float64{5, 6, 7, 8},
		},
		Transpose: TransposeConfig{
			Data:   []float64{1, 2, 3, 4},
			Rows:   4,
			Cols:   1,
			Layout: "col",
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"output":    "output",
	"log-level": "log_level",
	"p":         "bernoulli.p",
	"at":        "bernoulli.at",
	"a":         "zip.a",
	"b":         "zip.b",
	"data":      "transpose.data",
	"rows":      "transpose.rows",
	"cols":      "transpose.cols",
	"layout":    "transpose.layout",
}

// Load builds a Config. configFile may be empty; flags may be nil. Only
// flags named in flagKeys are bound, and only explicitly set flags win over
// the file and environment.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if err := bindEnvs(v); err != nil {
		return nil, fmt.Errorf("config: failed to bind env vars: %w", err)
	}
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok {
				if err := v.BindPFlag(key, f); err != nil {
					bindErr = multierror.Append(bindErr, err)
				}
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("config: failed to bind flags: %w", bindErr)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %q: %w", configFile, err)
		}
	}

	cfg := &Config{}
	var metadata mapstructure.Metadata
	if err := v.Unmarshal(cfg, func(c *mapstructure.DecoderConfig) { c.Metadata = &metadata }); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if len(metadata.Unused) > 0 {
		slices.Sort(metadata.Unused)
		return nil, fmt.Errorf("config: unknown keys in %q: %s", configFile, strings.Join(metadata.Unused, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every leaf of d so env vars and flags can override
// keys that no file mentions.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("bernoulli.p", d.Bernoulli.P)
	v.SetDefault("bernoulli.at", d.Bernoulli.At)
	v.SetDefault("zip.a", d.Zip.A)
	v.SetDefault("zip.b", d.Zip.B)
	v.SetDefault("transpose.data", d.Transpose.Data)
	v.SetDefault("transpose.rows", d.Transpose.Rows)
	v.SetDefault("transpose.cols", d.Transpose.Cols)
	v.SetDefault("transpose.layout", d.Transpose.Layout)
}

// bindEnvs binds every field with a mapstructure tag to LVNUM_<PATH>,
// nested keys joined by underscores.
func bindEnvs(v *viper.Viper) error {
	return bindEnvsRecursive(reflect.TypeOf(Config{}), v, "", EnvPrefix+"_")
}

func bindEnvsRecursive(t reflect.Type, v *viper.Viper, keyPrefix, envPrefix string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, hasTag := field.Tag.Lookup("mapstructure")
		if !hasTag || tag == "-" {
			continue
		}

		key, _, _ := strings.Cut(tag, ",")
		keyPath := keyPrefix + key
		envName := envPrefix + strings.ToUpper(key)

		if field.Type.Kind() == reflect.Struct {
			if err := bindEnvsRecursive(field.Type, v, keyPath+".", envName+"_"); err != nil {
				return err
			}
			continue
		}

		if err := v.BindEnv(keyPath, envName); err != nil {
			return fmt.Errorf("failed to bind field '%s' to env var '%s': %w",
				field.Name, envName, err)
		}
	}
	return nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs *multierror.Error

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = multierror.Append(errs, fmt.Errorf("config: output %q is not one of text, json, yaml", c.Output))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err))
	}
	if math.IsNaN(c.Bernoulli.P) || c.Bernoulli.P < 0 || c.Bernoulli.P > 1 {
		errs = multierror.Append(errs, fmt.Errorf("config: bernoulli.p %g is outside [0, 1]", c.Bernoulli.P))
	}
	if c.Transpose.Rows <= 0 || c.Transpose.Cols <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("config: transpose dims %dx%d must be positive",
			c.Transpose.Rows, c.Transpose.Cols))
	}
	if _, err := ParseLayout(c.Transpose.Layout); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs.ErrorOrNil()
}

// ParseLayout accepts "row"/"col" in any case, plus "r", "c" and "column".
func ParseLayout(s string) (matrix.Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "r":
		return matrix.Row, nil
	case "col", "c", "column":
		return matrix.Col, nil
	}

	return 0, fmt.Errorf("config: layout %q: %w", s, matrix.ErrUnknownLayout)
}
