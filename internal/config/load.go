package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds quizkit settings loaded from quizkit.yml and QUIZKIT_* variables.
type Config struct {
	Env          string `mapstructure:"env" validate:"oneof=local dev production"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	OutputFormat string `mapstructure:"output_format" validate:"oneof=yaml json"`
	UIMode       string `mapstructure:"ui_mode" validate:"oneof=auto live plain"`
	NoColor      bool   `mapstructure:"no_color"`
	ReportTitle  string `mapstructure:"report_title" validate:"required"`
}

// Load reads configuration from path (or the default search paths when empty)
// and environment variables. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = ExplicitPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		for _, dir := range SearchPaths("") {
			v.AddConfigPath(dir)
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("output_format", "yaml")
	v.SetDefault("ui_mode", "auto")
	v.SetDefault("no_color", false)
	v.SetDefault("report_title", "Questions")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	normalize(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Env:          "local",
		LogLevel:     "warn",
		OutputFormat: "yaml",
		UIMode:       "auto",
		ReportTitle:  "Questions",
	}
}

func normalize(cfg *Config) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	cfg.UIMode = strings.ToLower(strings.TrimSpace(cfg.UIMode))
	cfg.ReportTitle = strings.TrimSpace(cfg.ReportTitle)
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
}

func validate(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if fieldErr.Tag() == "oneof" {
			parts = append(parts, fmt.Sprintf("%s: invalid value %q (expected one of: %s)", fieldErr.Field(), fmt.Sprint(fieldErr.Value()), fieldErr.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(parts, "; "))
}
