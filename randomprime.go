package bigprime

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

// NewSecureRandomSource returns a cryptographically secure source keyed from
// the operating system's entropy.
func NewSecureRandomSource() *random.Secure {
	return random.NewSecure()
}

// RandomBigInt returns a random integer with exactly bitLength significant
// bits.
func RandomBigInt(bitLength int, src random.Source) (*big.Int, error) {
	return prime.RandomInt(bitLength, src)
}

// RandomPrime returns a random prime of exactly bitLength bits that is
// composite with probability at most 2^-certainty.
func RandomPrime(bitLength, certainty int, src *random.Secure) (*big.Int, error) {
	return prime.RandomPrime(context.Background(), bitLength, certainty, src)
}

// RandomPrimeContext is RandomPrime with a context bounding the search.
func RandomPrimeContext(ctx context.Context, bitLength, certainty int, src *random.Secure) (*big.Int, error) {
	return prime.RandomPrime(ctx, bitLength, certainty, src)
}

// SetLogger replaces the logger used by all packages of this module.
func SetLogger(l *logrus.Logger) {
	common.Logger = l
}
