package proving

import (
	"crypto/rand"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/pow/config"
)

type option struct {
	logger  *zap.Logger
	entropy io.Reader

	// 0 - unbounded.
	maxIterations uint64
	// How many attempts to make between two checks of the context.
	checkInterval uint64
	// How many attempts to make between two progress log entries.
	// 0 - disabled.
	logRate uint64
}

func defaultOptions() *option {
	cfg := config.DefaultConfig()
	return &option{
		logger:        zap.NewNop(),
		entropy:       rand.Reader,
		maxIterations: cfg.MaxIterations,
		checkInterval: cfg.CheckInterval,
		logRate:       cfg.LogRate,
	}
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	if o.entropy == nil {
		return errors.New("`entropy` is required")
	}
	if o.checkInterval == 0 {
		return errors.New("`checkInterval` must be greater than 0")
	}
	return nil
}

// OptionFunc is a function that sets an option for a search.
type OptionFunc func(*option) error

func newOptions(opts ...OptionFunc) (*option, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// WithLogger sets the logger used by the search. Nothing is logged by default.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` is required")
		}
		o.logger = logger
		return nil
	}
}

// WithEntropySource sets the source the initial seed and any later reseeds are read from.
// It defaults to crypto/rand.Reader. The source must be unpredictable: a deterministic source allows precomputing
// proofs.
func WithEntropySource(r io.Reader) OptionFunc {
	return func(o *option) error {
		if r == nil {
			return errors.New("`entropy` is required")
		}
		o.entropy = r
		return nil
	}
}

// WithMaxIterations bounds the number of attempts. Once reached the search fails with ErrMaxIterations.
// 0 leaves the search unbounded.
func WithMaxIterations(n uint64) OptionFunc {
	return func(o *option) error {
		o.maxIterations = n
		return nil
	}
}

// WithCheckInterval sets how many attempts are made between two checks for cancellation of the context.
func WithCheckInterval(n uint64) OptionFunc {
	return func(o *option) error {
		if n == 0 {
			return errors.New("`checkInterval` must be greater than 0")
		}
		o.checkInterval = n
		return nil
	}
}

// WithLogRate sets how many attempts are made between two progress log entries. 0 disables progress logging.
func WithLogRate(n uint64) OptionFunc {
	return func(o *option) error {
		o.logRate = n
		return nil
	}
}

// WithConfig applies the values of cfg.
func WithConfig(cfg config.Config) OptionFunc {
	return func(o *option) error {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		o.maxIterations = cfg.MaxIterations
		o.checkInterval = cfg.CheckInterval
		o.logRate = cfg.LogRate
		return nil
	}
}
