package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ACCOUNTFORM_LOG_LEVEL.
const EnvPrefix = "ACCOUNTFORM"

// Config represents the runtime configuration of the account form CLI.
type Config struct {
	Log     LogConfig         `mapstructure:"log"`
	Output  OutputConfig      `mapstructure:"output"`
	Schema  SchemaConfig      `mapstructure:"schema"`
	Form    FormConfig        `mapstructure:"form"`
	Theme   ThemeConfig       `mapstructure:"theme"`
	Prefill map[string]string `mapstructure:"prefill"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig selects how submitted values are written.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// SchemaConfig points at an optional YAML schema replacing the built-in one.
type SchemaConfig struct {
	Path string `mapstructure:"path"`
}

// FormConfig tunes session behaviour.
type FormConfig struct {
	ScrubHidden bool `mapstructure:"scrub_hidden"`
	MaxAttempts int  `mapstructure:"max_attempts"`
}

// ThemeConfig carries message prefixes for the terminal renderer.
type ThemeConfig struct {
	PromptPrefix string `mapstructure:"prompt_prefix"`
	InfoPrefix   string `mapstructure:"info_prefix"`
	ErrorPrefix  string `mapstructure:"error_prefix"`
}

// LoadConfig reads configuration using Viper. An explicit file must exist;
// otherwise config.yaml is looked up in ./config and the given paths, and a
// missing file falls back to defaults.
func LoadConfig(file string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("output.format", "json")
	v.SetDefault("output.path", "")

	v.SetDefault("schema.path", "")

	v.SetDefault("form.scrub_hidden", true)
	v.SetDefault("form.max_attempts", 0)

	v.SetDefault("theme.prompt_prefix", "")
	v.SetDefault("theme.info_prefix", "")
	v.SetDefault("theme.error_prefix", "! ")
}
