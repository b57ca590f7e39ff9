package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Dictionary DictionaryConfig `mapstructure:"dictionary" validate:"required"`
	Scoring    ScoringConfig    `mapstructure:"scoring" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// DictionaryConfig selects and configures the character dictionary.
type DictionaryConfig struct {
	// Driver is one of memory, sqlite or pgx.
	Driver string `mapstructure:"driver" validate:"required,oneof=memory sqlite pgx"`
	// DSN is the database source name; unused by the memory driver.
	DSN string `mapstructure:"dsn" validate:"required_unless=Driver memory"`
	// SeedFile is an optional YAML dictionary loaded on top of the embedded seed.
	SeedFile string `mapstructure:"seed_file"`
}

// ScoringConfig contains the aggregator defaults.
type ScoringConfig struct {
	Weights            WeightsConfig `mapstructure:"weights" validate:"required"`
	MinScore           int           `mapstructure:"min_score" validate:"gte=0,lte=100"`
	MaxScore           int           `mapstructure:"max_score" validate:"gte=1,lte=100,gtefield=MinScore"`
	TabooFairThreshold int           `mapstructure:"taboo_fair_threshold" validate:"gte=1,lte=100"`
}

// WeightsConfig holds the per-category weights.
type WeightsConfig struct {
	Polarity float64 `mapstructure:"polarity" validate:"gte=0"`
	Element  float64 `mapstructure:"element" validate:"gte=0"`
	Fortune  float64 `mapstructure:"fortune" validate:"gte=0"`
	Special  float64 `mapstructure:"special" validate:"gte=0"`
	Taboo    float64 `mapstructure:"taboo" validate:"gte=0"`
}

// Sum returns the total of all weights.
func (w WeightsConfig) Sum() float64 {
	return w.Polarity + w.Element + w.Fortune + w.Special + w.Taboo
}
