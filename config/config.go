package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxIterations of 0 leaves the search unbounded.
	DefaultMaxIterations = 0

	// DefaultCheckInterval is the number of attempts between two checks of the search context.
	DefaultCheckInterval = 1 << 12

	// DefaultLogRate is the number of attempts between two progress log entries.
	DefaultLogRate = 1 << 24
)

// Config tunes a proof-of-work search. None of the values affect the validity of a proof.
type Config struct {
	MaxIterations uint64 `mapstructure:"pow-max-iterations"`
	CheckInterval uint64 `mapstructure:"pow-check-interval"`
	LogRate       uint64 `mapstructure:"pow-log-rate"`
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		CheckInterval: DefaultCheckInterval,
		LogRate:       DefaultLogRate,
	}
}

func Validate(cfg Config) error {
	if cfg.CheckInterval == 0 {
		return errors.New("invalid `CheckInterval`; expected: > 0, given: 0")
	}

	return nil
}

// Load reads the config from v on top of DefaultConfig and validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
