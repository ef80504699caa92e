// Package prime generates random integers and random probable primes.
package prime

import (
	"context"
	"fmt"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/random"
)

// ErrCancelled is returned when the context of a prime search ends before a
// prime is found.
var ErrCancelled = errors.Errorf("prime: search cancelled")

// SmallPrimes is a list of small prime numbers that allows us to rapidly
// exclude some fraction of composite candidates when searching for a random
// prime. This list is truncated at the point where SmallPrimesProduct exceeds
// a uint64. It does not include two because we ensure that the candidates are
// odd by construction.
var SmallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// SmallPrimesProduct is the product of the values in SmallPrimes.
const SmallPrimesProduct = 16294579238595022365

// RandomPrime returns a random probable prime with exactly bitLength bits.
// The probability that the result is composite is at most 2^-certainty.
//
// The search retries until it finds a prime; for realistic sizes that is
// quick, but it is unbounded, so callers that need a deadline should pass a
// context that carries one. When the context ends first the error is
// ErrCancelled, prefixed with the text of ctx.Err(); use ctx.Err() itself to
// tell a deadline from a cancellation. Only a Secure source is accepted.
func RandomPrime(ctx context.Context, bitLength, certainty int, src *random.Secure) (*big.Int, error) {
	return search(ctx, bitLength, certainty, src)
}

// RandomPrimeSeeded is RandomPrime driven by a reproducible Seeded source.
// The same seed always yields the same prime, which also means the result is
// predictable and must not be used as key material.
func RandomPrimeSeeded(ctx context.Context, bitLength, certainty int, src *random.Seeded) (*big.Int, error) {
	return search(ctx, bitLength, certainty, src)
}

// search is an adaption of Go's own Prime function in crypto/rand/util.go
// with a configurable certainty and witnesses drawn from src.
func search(ctx context.Context, bitLength, certainty int, src random.Source) (*big.Int, error) {
	if bitLength < 2 {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument,
			fmt.Sprintf("prime size must be at least 2-bit, got %d", bitLength), 0)
	}
	if certainty < 1 {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument,
			fmt.Sprintf("certainty must be at least 1, got %d", certainty), 0)
	}

	var drawn, sieved int
	defer func() {
		common.Logger.WithFields(logrus.Fields{
			"bits":      bitLength,
			"certainty": certainty,
			"drawn":     drawn,
			"sieved":    sieved,
		}).Debug("prime: search finished")
	}()

NextCandidate:
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapPrefix(ErrCancelled, err.Error(), 0)
		}

		p, err := RandomInt(bitLength, src)
		if err != nil {
			return nil, err
		}
		drawn++

		// Make the value odd since an even number this large certainly isn't prime.
		p = p.SetBit(0, 1)

		// Reject multiples of the small primes. This is much cheaper than
		// Miller-Rabin below. Small bit lengths can hit a small prime itself.
		mod := p.ModUint64(SmallPrimesProduct)
		for _, prime := range SmallPrimes {
			if mod%uint64(prime) == 0 && (bitLength > 6 || p.Uint64() != uint64(prime)) {
				sieved++
				continue NextCandidate
			}
		}

		ok, err := ProbablyPrime(p, certainty, src)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}
