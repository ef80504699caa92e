package prime

import (
	"github.com/go-errors/errors"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/random"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// trialPrimes are the primes below 100, used to settle small inputs and to
// discard most composites before any modular exponentiation.
var trialPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Rounds returns the number of Miller-Rabin rounds needed for a false
// positive probability of at most 2^-certainty. A composite passes one round
// with a random witness with probability at most 1/4.
func Rounds(certainty int) int {
	if certainty < 1 {
		return 1
	}
	return (certainty + 1) / 2
}

// ProbablyPrime reports whether n is prime. If n is prime it returns true.
// If n is composite it returns false except with probability at most
// 2^-certainty. Witnesses are drawn from src.
func ProbablyPrime(n *big.Int, certainty int, src random.Source) (bool, error) {
	if certainty < 1 {
		return false, errors.WrapPrefix(big.ErrInvalidArgument, "certainty must be at least 1", 0)
	}
	if n.Sign() <= 0 {
		return false, nil
	}
	if n.IsUint64() && n.Uint64() < 100*100 {
		return smallPrime(n.Uint64()), nil
	}
	for _, p := range trialPrimes {
		if n.ModUint64(p) == 0 {
			return false, nil
		}
	}
	return millerRabin(n, Rounds(certainty), src)
}

// smallPrime decides primality of n < 10^4 by trial division.
func smallPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range trialPrimes {
		if p*p > n {
			return true
		}
		if n%p == 0 {
			return n == p
		}
	}
	return true
}

// millerRabin runs rounds iterations with random witnesses in [2, n-2].
// n must be odd and greater than 3.
func millerRabin(n *big.Int, rounds int, src random.Source) (bool, error) {
	nm1 := n.Sub(one)
	// n-1 = 2^k * q with q odd
	k := nm1.TrailingZeroBits()
	q := nm1.Rsh(k)
	nm3 := n.Sub(big.NewInt(3))

NextRandom:
	for i := 0; i < rounds; i++ {
		a, err := RandomBelow(nm3, src)
		if err != nil {
			return false, err
		}
		a = a.Add(two)

		y, err := a.ModPow(q, n)
		if err != nil {
			return false, err
		}
		if y.Cmp(one) == 0 || y.Cmp(nm1) == 0 {
			continue
		}
		for j := uint(1); j < k; j++ {
			y, err = y.Mul(y).Rem(n)
			if err != nil {
				return false, err
			}
			if y.Cmp(nm1) == 0 {
				continue NextRandom
			}
			if y.Cmp(one) == 0 {
				return false, nil
			}
		}
		return false, nil
	}
	return true, nil
}
