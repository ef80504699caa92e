package big

import (
	"math/bits"
)

// A nat is an unsigned magnitude stored as 64-bit limbs, least significant
// limb first:
//
//	x = x[n-1]*2^(64*(n-1)) + ... + x[1]*2^64 + x[0]
//
// A nat is canonical when it has no high zero limbs. Zero is the empty slice.
// Every function in this file returns a freshly allocated canonical nat and
// never writes to its operands.
type nat []uint64

const (
	_W = 64 // bits per limb

	// karatsubaThreshold is the operand length (in limbs) at which mul
	// switches from schoolbook to Karatsuba multiplication.
	karatsubaThreshold = 40
)

var natOne = nat{1}

func natFromUint64(x uint64) nat {
	if x == 0 {
		return nil
	}
	return nat{x}
}

func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool {
	return len(x) == 0
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return -1
	case m > n:
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x.clone()
	}

	z := make(nat, len(x)+1)
	var c uint64
	for i := range y {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = bits.Add64(x[i], 0, c)
	}
	z[len(x)] = c
	return z.norm()
}

// sub returns x - y. It panics if y > x; the signed layer orders its operands
// before calling it.
func (x nat) sub(y nat) nat {
	if len(x) < len(y) {
		panic("big: magnitude underflow")
	}
	if len(y) == 0 {
		return x.clone()
	}

	z := make(nat, len(x))
	var b uint64
	for i := range y {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = bits.Sub64(x[i], 0, b)
	}
	if b != 0 {
		panic("big: magnitude underflow")
	}
	return z.norm()
}

func (x nat) shl(s uint) nat {
	if len(x) == 0 {
		return nil
	}
	n := int(s / _W)
	b := s % _W

	z := make(nat, len(x)+n+1)
	if b == 0 {
		copy(z[n:], x)
		return z.norm()
	}
	var carry uint64
	for i, w := range x {
		z[n+i] = w<<b | carry
		carry = w >> (_W - b)
	}
	z[n+len(x)] = carry
	return z.norm()
}

func (x nat) shr(s uint) nat {
	n := int(s / _W)
	if n >= len(x) {
		return nil
	}
	b := s % _W

	z := make(nat, len(x)-n)
	if b == 0 {
		copy(z, x[n:])
		return z.norm()
	}
	for i := range z {
		w := x[n+i] >> b
		if n+i+1 < len(x) {
			w |= x[n+i+1] << (_W - b)
		}
		z[i] = w
	}
	return z.norm()
}

// shlWords shifts x left by n whole limbs.
func (x nat) shlWords(n int) nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+n)
	copy(z[n:], x)
	return z
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len64(x[len(x)-1])
}

func (x nat) bit(i uint) uint {
	j := int(i / _W)
	if j >= len(x) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

func (x nat) setBit(i uint, b uint) nat {
	j := int(i / _W)
	n := len(x)
	if j >= n {
		n = j + 1
	}
	z := make(nat, n)
	copy(z, x)
	m := uint64(1) << (i % _W)
	if b == 0 {
		z[j] &^= m
	} else {
		z[j] |= m
	}
	return z.norm()
}

func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros64(w))
		}
	}
	return 0
}

// mulAddWord returns x*y + r.
func (x nat) mulAddWord(y, r uint64) nat {
	z := make(nat, len(x)+1)
	c := r
	for i, w := range x {
		hi, lo := bits.Mul64(w, y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	z[len(x)] = c
	return z.norm()
}

func (x nat) mul(y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < karatsubaThreshold || len(y) < karatsubaThreshold {
		return mulBasic(x, y)
	}
	return karatsuba(x, y)
}

func mulBasic(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var c uint64
		for j, xj := range x {
			hi, lo := bits.Mul64(xj, yi)
			var cc uint64
			lo, cc = bits.Add64(lo, z[i+j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			z[i+j] = lo
			c = hi
		}
		z[i+len(x)] = c
	}
	return z.norm()
}

// karatsuba splits both operands at half the longer length m:
//
//	x*y = z2*B^(2m) + z1*B^m + z0
//
// with z1 = (x0+x1)(y0+y1) - z2 - z0. Three half-size products instead of
// four gives O(n^1.585).
func karatsuba(x, y nat) nat {
	m := max(len(x), len(y)) / 2
	x0, x1 := x.split(m)
	y0, y1 := y.split(m)

	z0 := x0.mul(y0)
	z2 := x1.mul(y1)
	z1 := x0.add(x1).mul(y0.add(y1)).sub(z0).sub(z2)

	return z2.shlWords(2 * m).add(z1.shlWords(m)).add(z0)
}

// split returns the low m limbs and the remaining high limbs of x.
func (x nat) split(m int) (lo, hi nat) {
	if len(x) <= m {
		return x, nil
	}
	return x[:m].norm(), x[m:]
}

func (x nat) pow(e uint) nat {
	z := natOne
	for i := bits.Len(e) - 1; i >= 0; i-- {
		z = z.mul(z)
		if e>>uint(i)&1 == 1 {
			z = z.mul(x)
		}
	}
	return z
}

// setBytes interprets buf as a big-endian unsigned integer.
func natFromBytes(buf []byte) nat {
	z := make(nat, (len(buf)+7)/8)
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		z[i/8] |= uint64(b) << (8 * uint(i%8))
	}
	return z.norm()
}

// bytes returns x as big-endian bytes without leading zeros.
func (x nat) bytes() []byte {
	n := (x.bitLen() + 7) / 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = byte(x[i/8] >> (8 * uint(i%8)))
	}
	return buf
}
