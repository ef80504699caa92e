package big

import (
	"github.com/go-errors/errors"
)

var (
	// ErrParse is returned for numeral text that is empty or contains a
	// character outside the radix's digit set.
	ErrParse = errors.Errorf("big: malformed numeral")

	// ErrDivisionByZero is returned when a divisor or modulus is zero.
	ErrDivisionByZero = errors.Errorf("big: division by zero")

	// ErrInvalidArgument is returned for out-of-range radices, exponents,
	// bit lengths and certainties.
	ErrInvalidArgument = errors.Errorf("big: invalid argument")
)

// ValidateRadix returns ErrInvalidArgument unless radix is in [2, 36].
func ValidateRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return errors.WrapPrefix(ErrInvalidArgument, "radix must be in [2, 36]", 1)
	}
	return nil
}
