// Package bigprime is an arbitrary-precision integer engine with secure
// random generation and probabilistic prime search.
//
// The functions in this package are the flat entry points; the types live in
// the big, random and prime subpackages.
package bigprime

import (
	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

var (
	ErrParse              = big.ErrParse
	ErrDivisionByZero     = big.ErrDivisionByZero
	ErrInvalidArgument    = big.ErrInvalidArgument
	ErrEntropyUnavailable = random.ErrEntropyUnavailable
	ErrCancelled          = prime.ErrCancelled
)

// ParseBigInt parses text in the given radix (2 to 36) with an optional sign.
func ParseBigInt(text string, radix int) (*big.Int, error) {
	return big.Parse(text, radix)
}

// FormatBigInt renders v in the given radix (2 to 36).
func FormatBigInt(v *big.Int, radix int) (string, error) {
	if err := big.ValidateRadix(radix); err != nil {
		return "", err
	}
	return v.Text(radix), nil
}

func Add(a, b *big.Int) *big.Int { return a.Add(b) }
func Sub(a, b *big.Int) *big.Int { return a.Sub(b) }
func Mul(a, b *big.Int) *big.Int { return a.Mul(b) }

// Div returns a/b truncated toward zero.
func Div(a, b *big.Int) (*big.Int, error) { return a.Quo(b) }

// Mod returns the remainder of truncated division; it has the sign of a.
func Mod(a, b *big.Int) (*big.Int, error) { return a.Rem(b) }

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int { return a.GCD(b) }

// ModPow returns base**exp mod |mod| in [0, |mod|).
func ModPow(base, exp, mod *big.Int) (*big.Int, error) {
	return base.ModPow(exp, mod)
}
