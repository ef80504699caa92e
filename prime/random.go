package prime

import (
	"fmt"

	"github.com/go-errors/errors"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/random"
)

// RandomInt returns a random integer with exactly bitLength significant bits,
// i.e. uniformly distributed in [2^(bitLength-1), 2^bitLength - 1].
func RandomInt(bitLength int, src random.Source) (*big.Int, error) {
	if bitLength <= 0 {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument,
			fmt.Sprintf("bit length must be positive, got %d", bitLength), 0)
	}
	bytes, err := randomBits(bitLength, src)
	if err != nil {
		return nil, err
	}

	// Force the top bit so the value has the exact requested length.
	b := uint(bitLength % 8)
	if b == 0 {
		b = 8
	}
	bytes[0] |= 1 << (b - 1)
	return big.FromBytes(bytes), nil
}

// RandomBelow returns a uniformly distributed integer in [0, bound).
func RandomBelow(bound *big.Int, src random.Source) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument, "upper bound must be positive", 0)
	}
	// Rejection sampling on bound.BitLen() bits; each draw is accepted with
	// probability above one half.
	bitLength := bound.BitLen()
	for {
		bytes, err := randomBits(bitLength, src)
		if err != nil {
			return nil, err
		}
		n := big.FromBytes(bytes)
		if n.Cmp(bound) < 0 {
			return n, nil
		}
	}
}

// randomBits reads ceil(bitLength/8) bytes and clears the excess high bits
// of the first one.
func randomBits(bitLength int, src random.Source) ([]byte, error) {
	bytes, err := src.NextBytes((bitLength + 7) / 8)
	if err != nil {
		return nil, err
	}
	b := uint(bitLength % 8)
	if b == 0 {
		b = 8
	}
	bytes[0] &= uint8(int(1<<b) - 1)
	return bytes, nil
}
