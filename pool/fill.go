package pool

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

// Fill generates cfg.Size primes of shape cfg.Bits/cfg.Certainty into pool,
// running cfg.Workers searches in parallel. It stops at the first error.
func Fill(ctx context.Context, pool *BoltPool, cfg Config, src *random.Secure) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Size; i++ {
		g.Go(func() error {
			p, err := prime.RandomPrime(gctx, cfg.Bits, cfg.Certainty, src)
			if err != nil {
				return err
			}
			return pool.Store(cfg.Bits, cfg.Certainty, p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	n, err := pool.Count(cfg.Bits, cfg.Certainty)
	if err != nil {
		return err
	}
	common.Logger.WithFields(logrus.Fields{
		"bits":      cfg.Bits,
		"certainty": cfg.Certainty,
		"available": n,
	}).Info("pool: filled")
	return nil
}
