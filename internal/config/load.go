package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SEIMEI"

// ConfigFileEnv names an explicit config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithViper(viper.New())
}

// LoadWithViper loads configuration through a caller-supplied viper
// instance. The CLI uses this to bind command-line flags before loading;
// bound flags take precedence over environment variables.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	explicitFile := v.ConfigFileUsed() != ""
	if !explicitFile {
		if path := os.Getenv(ConfigFileEnv); path != "" {
			v.SetConfigFile(path)
			explicitFile = true
		}
	}
	if !explicitFile {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags and cross-field constraints.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Scoring.Weights.Sum() <= 0 {
		return fmt.Errorf("config validation failed: scoring weights must have a positive sum")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("dictionary.driver", "memory")
	v.SetDefault("dictionary.dsn", "")
	v.SetDefault("dictionary.seed_file", "")

	v.SetDefault("scoring.weights.polarity", 0.20)
	v.SetDefault("scoring.weights.element", 0.25)
	v.SetDefault("scoring.weights.fortune", 0.30)
	v.SetDefault("scoring.weights.special", 0.15)
	v.SetDefault("scoring.weights.taboo", 0.10)
	v.SetDefault("scoring.min_score", 5)
	v.SetDefault("scoring.max_score", 100)
	v.SetDefault("scoring.taboo_fair_threshold", 50)
}
