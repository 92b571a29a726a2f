package config

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/locust-compare/internal/compare"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const EnvPrefix = "LOCUST_COMPARE"

type CompareConfig struct {
	Prefix string  `mapstructure:"prefix"`
	Dir    string  `mapstructure:"dir"`
	Option string  `mapstructure:"option"`
	Column string  `mapstructure:"columnname"`
	Factor float64 `mapstructure:"factor"`
}

// NeedsThreshold reports whether Option compares results.
func (c CompareConfig) NeedsThreshold() bool {
	op, err := compare.ParseOperation(c.Option)
	return err == nil && op.NeedsThreshold()
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Environment string `mapstructure:"environment"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type Config struct {
	Compare CompareConfig `mapstructure:"compare"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// Load reads configuration into v. configFile, when set, replaces the
// default search for locust-compare.yaml in ./config and the working
// directory.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	v.SetDefault("compare.prefix", "")
	v.SetDefault("compare.dir", "")
	v.SetDefault("compare.option", "")
	v.SetDefault("compare.columnname", "")
	v.SetDefault("compare.factor", 0.0)
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.environment", EnvDev)
	v.SetDefault("output.format", FormatText)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("locust-compare")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using flags, defaults and environment variables")
	} else {
		slog.Debug("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Compare,
			validation.By(func(value interface{}) error {
				cc, ok := value.(CompareConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a CompareConfig")
				}
				threshold := cc.NeedsThreshold()
				return validation.ValidateStruct(&cc,
					validation.Field(&cc.Prefix, validation.Required),
					validation.Field(&cc.Option, validation.Required),
					validation.Field(&cc.Column,
						validation.When(threshold, validation.Required.Error("is required for this option")),
					),
					validation.Field(&cc.Factor,
						validation.When(threshold,
							validation.Required.Error("is required for this option"),
							validation.Min(0.0).Exclusive(),
							validation.By(validateFinite),
						),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
					validation.Field(&lc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
				)
			}),
		),
		validation.Field(&c.Output,
			validation.Required,
			validation.By(func(value interface{}) error {
				oc, ok := value.(OutputConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an OutputConfig")
				}
				return validation.ValidateStruct(&oc,
					validation.Field(&oc.Format,
						validation.Required,
						validation.In(FormatText, FormatJSON),
					),
				)
			}),
		),
	)
}

func validateFinite(value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a number")
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return validation.NewError("validation_not_finite", "must be a finite number")
	}

	return nil
}
