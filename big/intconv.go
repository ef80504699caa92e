package big

import (
	"fmt"

	"github.com/go-errors/errors"
)

// Parse converts text in the given radix (2 to 36) to an *Int. An optional
// leading '+' or '-' is accepted; digits above 9 are the letters a-z in
// either case.
func Parse(text string, radix int) (*Int, error) {
	if err := ValidateRadix(radix); err != nil {
		return nil, err
	}

	s := text
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, errors.WrapPrefix(ErrParse, fmt.Sprintf("no digits in %q", text), 0)
	}

	abs, bad := scanDigits(s, radix)
	if bad >= 0 {
		pos := bad + len(text) - len(s)
		return nil, errors.WrapPrefix(ErrParse,
			fmt.Sprintf("invalid base-%d digit %q at offset %d in %q", radix, text[pos], pos, text), 0)
	}
	return newInt(neg, abs), nil
}

// Text returns x in the given radix using lower-case letters for digits
// above 9. It panics if radix is outside [2, 36].
func (x *Int) Text(radix int) string {
	if radix < MinRadix || radix > MaxRadix {
		panic(fmt.Sprintf("big: invalid radix %d", radix))
	}
	if x == nil {
		return "<nil>"
	}
	s := x.abs.text(radix)
	if x.neg {
		return "-" + s
	}
	return s
}

func (x *Int) String() string {
	return x.Text(10)
}
