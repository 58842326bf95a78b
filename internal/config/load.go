package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
)

// Overrides holds values supplied by CLI flags. Empty strings and a nil
// Cadence are ignored so callers can override a subset of settings.
type Overrides struct {
	LocalZone string
	Language  string
	Cadence   *cadence.Cadence
}

// newViperInstance creates a new Viper instance with standard worldclock configuration.
// This includes environment variable prefix (WORLDCLOCK_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("local_zone", cfg.LocalZone).
		Int("zones", len(cfg.Zones)).
		Str("cadence", cfg.Cadence.Value()).
		Str("language", cfg.Language).
		Str("file", v.ConfigFileUsed()).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (WORLDCLOCK_* prefix)
//  2. Global config (~/.worldclock/config.yaml)
//  3. Built-in defaults
//
// A missing global config file is not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if path, err := GlobalConfigPath(); err == nil && fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read global config file")
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadFromPath loads configuration from an explicit file path. Unlike Load,
// a missing file is reported as ErrConfigNotFound because the user asked for it.
func LoadFromPath(ctx context.Context, path string) (*Config, error) {
	if !fileExists(path) {
		return nil, errors.Wrapf(errors.ErrConfigNotFound, "%s", path)
	}

	v := newViperInstance()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config: %s", path)
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadWithOverrides loads configuration from path (or the global location
// when path is empty) and applies CLI flag overrides on top.
func LoadWithOverrides(ctx context.Context, path string, overrides *Overrides) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFromPath(ctx, path)
	} else {
		cfg, err = Load(ctx)
	}
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// applyOverrides copies non-zero override values into cfg.
func applyOverrides(cfg *Config, overrides *Overrides) {
	if overrides.LocalZone != "" {
		cfg.LocalZone = overrides.LocalZone
	}
	if overrides.Language != "" {
		cfg.Language = overrides.Language
	}
	if overrides.Cadence != nil {
		cfg.Cadence = *overrides.Cadence
	}
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decode hooks used for every Unmarshal.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			cadenceHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// cadenceHookFunc decodes selector values ("", "500", 1000, "1s") into a
// cadence.Cadence. Values outside the selector decode to Disabled.
func cadenceHookFunc() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(cadence.Disabled)
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != target {
			return data, nil
		}
		switch v := data.(type) {
		case nil:
			return cadence.Disabled, nil
		case string:
			return cadence.Parse(v), nil
		case int:
			return cadence.Parse(strconv.Itoa(v)), nil
		case int64:
			return cadence.Parse(strconv.FormatInt(v, 10)), nil
		case uint64:
			return cadence.Parse(strconv.FormatUint(v, 10)), nil
		case float64:
			return cadence.Parse(strconv.FormatFloat(v, 'f', -1, 64)), nil
		default:
			return data, nil
		}
	}
}
