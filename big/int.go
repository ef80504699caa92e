// Package big implements immutable arbitrary-precision signed integers.
//
// Unlike "math/big", every operation returns a new *Int and leaves its
// operands untouched, so values can be shared between goroutines without
// synchronization.
package big

import (
	"github.com/go-errors/errors"
)

// Int is a signed arbitrary-precision integer. The zero value is 0.
type Int struct {
	neg bool // never set for zero
	abs nat
}

var (
	zero = &Int{}
	one  = &Int{abs: natOne}
)

func newInt(neg bool, abs nat) *Int {
	abs = abs.norm()
	if len(abs) == 0 {
		return &Int{}
	}
	return &Int{neg: neg, abs: abs}
}

// NewInt returns x as an *Int.
func NewInt(x int64) *Int {
	if x < 0 {
		return newInt(true, natFromUint64(uint64(-(x+1))+1))
	}
	return newInt(false, natFromUint64(uint64(x)))
}

// NewUint64 returns x as an *Int.
func NewUint64(x uint64) *Int {
	return newInt(false, natFromUint64(x))
}

// FromBytes interprets buf as a big-endian unsigned integer.
func FromBytes(buf []byte) *Int {
	return newInt(false, natFromBytes(buf))
}

// Bytes returns the absolute value of x as big-endian bytes.
func (x *Int) Bytes() []byte {
	return x.abs.bytes()
}

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg == y.neg:
		r := x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

func (x *Int) Abs() *Int {
	return newInt(false, x.abs)
}

func (x *Int) Neg() *Int {
	return newInt(!x.neg, x.abs)
}

func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return newInt(x.neg, x.abs.add(y.abs))
	}
	// Different signs: subtract the smaller magnitude from the larger one.
	if x.abs.cmp(y.abs) >= 0 {
		return newInt(x.neg, x.abs.sub(y.abs))
	}
	return newInt(y.neg, y.abs.sub(x.abs))
}

func (x *Int) Sub(y *Int) *Int {
	return x.Add(&Int{neg: !y.neg && len(y.abs) > 0, abs: y.abs})
}

func (x *Int) Mul(y *Int) *Int {
	return newInt(x.neg != y.neg, x.abs.mul(y.abs))
}

// QuoRem implements truncated division: q = x/y rounded toward zero and
// r = x - y*q, so r has the sign of x and |r| < |y|.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if len(y.abs) == 0 {
		return nil, nil, errors.WrapPrefix(ErrDivisionByZero, "quorem", 0)
	}
	qa, ra := x.abs.divmod(y.abs)
	return newInt(x.neg != y.neg, qa), newInt(x.neg, ra), nil
}

// Quo returns x/y truncated toward zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x - y*(x/y), which has the sign of x.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Pow returns x**e.
func (x *Int) Pow(e uint) *Int {
	return newInt(x.neg && e&1 == 1, x.abs.pow(e))
}

// ModPow returns x**e mod |m| in the range [0, |m|). The exponent must be
// non-negative and m must be non-zero.
func (x *Int) ModPow(e, m *Int) (*Int, error) {
	if e.neg {
		return nil, errors.WrapPrefix(ErrInvalidArgument, "modpow: negative exponent", 0)
	}
	if len(m.abs) == 0 {
		return nil, errors.WrapPrefix(ErrDivisionByZero, "modpow: zero modulus", 0)
	}
	return newInt(false, x.modAbs(m.abs).expMod(e.abs, m.abs)), nil
}

// modAbs returns x mod m in [0, m).
func (x *Int) modAbs(m nat) nat {
	_, r := x.abs.divmod(m)
	if x.neg && len(r) > 0 {
		r = m.sub(r)
	}
	return r
}

// expMod computes x**e mod m for x < m with left-to-right binary
// exponentiation, reducing after every square and every multiply so that no
// intermediate exceeds m^2.
func (x nat) expMod(e, m nat) nat {
	if m.cmp(natOne) == 0 {
		return nil
	}
	z := natOne
	for i := e.bitLen() - 1; i >= 0; i-- {
		_, z = z.mul(z).divmod(m)
		if e.bit(uint(i)) == 1 {
			_, z = z.mul(x).divmod(m)
		}
	}
	return z
}

// GCD returns the greatest common divisor of |x| and |y|. GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int {
	a, b := x.abs, y.abs
	for len(b) > 0 {
		_, r := a.divmod(b)
		a, b = b, r
	}
	return newInt(false, a)
}

// ModInverse returns the y in [0, |m|) with x*y = 1 mod |m|.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if len(m.abs) == 0 {
		return nil, errors.WrapPrefix(ErrDivisionByZero, "modinverse: zero modulus", 0)
	}
	mod := newInt(false, m.abs)

	// Extended Euclid on (x mod m, m), tracking only the coefficient of x.
	a, b := newInt(false, x.modAbs(m.abs)), mod
	s0, s1 := one, zero
	for b.Sign() != 0 {
		q, r, _ := a.QuoRem(b)
		a, b = b, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}
	if a.abs.cmp(natOne) != 0 {
		return nil, errors.WrapPrefix(ErrInvalidArgument, "modinverse: not invertible", 0)
	}
	return newInt(false, s0.modAbs(m.abs)), nil
}

// BitLen returns the length of |x| in bits. BitLen(0) is 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// Bit returns bit i of |x|.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		panic("big: negative bit index")
	}
	return x.abs.bit(uint(i))
}

// SetBit returns x with bit i of its magnitude set to b (0 or 1). The sign
// is kept.
func (x *Int) SetBit(i int, b uint) *Int {
	if i < 0 {
		panic("big: negative bit index")
	}
	return newInt(x.neg, x.abs.setBit(uint(i), b))
}

// TrailingZeroBits returns the number of consecutive zero bits at the low end
// of |x|.
func (x *Int) TrailingZeroBits() uint {
	return x.abs.trailingZeroBits()
}

func (x *Int) Lsh(n uint) *Int {
	return newInt(x.neg, x.abs.shl(n))
}

// Rsh implements an arithmetic shift: negative values round toward negative
// infinity, as for two's complement.
func (x *Int) Rsh(n uint) *Int {
	if !x.neg {
		return newInt(false, x.abs.shr(n))
	}
	// -x >> n == -(((x-1) >> n) + 1)
	t := x.abs.sub(natOne).shr(n)
	return newInt(true, t.add(natOne))
}

// ModUint64 returns |x| mod d. d must be non-zero.
func (x *Int) ModUint64(d uint64) uint64 {
	if d == 0 {
		panic("big: division by zero")
	}
	return x.abs.modWord(d)
}

// IsUint64 reports whether x is non-negative and fits in a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 1
}

// Uint64 returns the low 64 bits of |x|.
func (x *Int) Uint64() uint64 {
	if len(x.abs) == 0 {
		return 0
	}
	return x.abs[0]
}

// Int64 returns x as an int64. The result is undefined if x does not fit.
func (x *Int) Int64() int64 {
	v := int64(x.Uint64())
	if x.neg {
		v = -v
	}
	return v
}
