// Package pool serves random primes from precalculated pools, falling back
// to live generation when a pool cannot deliver.
package pool

import (
	"context"

	"github.com/caarlos0/env/v8"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

type PrimePool interface {
	Fetch(bits, certainty int) (*big.Int, error)
	StatsJSON() ([]byte, error)
}

// Config describes a pool of primes of one shape.
type Config struct {
	File      string `env:"BIGPRIME_POOL_FILE" envDefault:"primes.db"`
	Size      int    `env:"BIGPRIME_POOL_SIZE" envDefault:"16"`
	Bits      int    `env:"BIGPRIME_POOL_BITS" envDefault:"1024"`
	Certainty int    `env:"BIGPRIME_POOL_CERTAINTY" envDefault:"80"`
	Workers   int    `env:"BIGPRIME_POOL_WORKERS" envDefault:"4"`
}

// ConfigFromEnv reads a Config from BIGPRIME_POOL_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.WrapPrefix(err, "pool: reading environment", 0)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Bits < 2:
		return errors.WrapPrefix(big.ErrInvalidArgument, "pool: bits must be at least 2", 1)
	case c.Certainty < 1:
		return errors.WrapPrefix(big.ErrInvalidArgument, "pool: certainty must be at least 1", 1)
	case c.Size < 1:
		return errors.WrapPrefix(big.ErrInvalidArgument, "pool: size must be at least 1", 1)
	case c.Workers < 1:
		return errors.WrapPrefix(big.ErrInvalidArgument, "pool: workers must be at least 1", 1)
	}
	return nil
}

// RandomPrimeFromPool returns a precalculated prime from pool, or a freshly
// generated one if the pool fails or is empty.
func RandomPrimeFromPool(ctx context.Context, pool PrimePool, bits, certainty int, src *random.Secure) (p *big.Int, err error) {
	if bits < 2 {
		err = errors.WrapPrefix(big.ErrInvalidArgument, "randomPrimeFromPool: prime size must be at least 2-bit", 0)
		return
	}

	p, err = pool.Fetch(bits, certainty)
	if err != nil {
		common.Logger.WithError(err).WithFields(logrus.Fields{
			"bits":      bits,
			"certainty": certainty,
		}).Warn("pool: falling back to live prime generation")
		return prime.RandomPrime(ctx, bits, certainty, src)
	}

	return p, err
}
