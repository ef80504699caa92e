package big

import (
	"strings"
)

const (
	digits   = "0123456789abcdefghijklmnopqrstuvwxyz"
	MinRadix = 2
	MaxRadix = len(digits)
)

// radixChunk returns the largest power b^k that fits in a limb and k.
// Conversion works on k digits at a time so that only one multi-limb
// operation is needed per chunk.
func radixChunk(b uint64) (bb uint64, k int) {
	bb, k = b, 1
	for limit := ^uint64(0) / b; bb <= limit; k++ {
		bb *= b
	}
	return bb, k
}

func digitValue(ch byte) uint64 {
	switch {
	case '0' <= ch && ch <= '9':
		return uint64(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return uint64(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return uint64(ch-'A') + 10
	}
	return uint64(MaxRadix) + 1
}

// scanDigits parses s, which must be a non-empty unsigned digit string, in
// the given radix. On failure it returns the index of the first bad digit.
func scanDigits(s string, radix int) (nat, int) {
	b := uint64(radix)
	bb, k := radixChunk(b)

	var z nat
	var acc uint64
	var n int
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= b {
			return nil, i
		}
		acc = acc*b + d
		n++
		if n == k {
			z = z.mulAddWord(bb, acc)
			acc, n = 0, 0
		}
	}
	if n > 0 {
		p := uint64(1)
		for i := 0; i < n; i++ {
			p *= b
		}
		z = z.mulAddWord(p, acc)
	}
	return z, -1
}

// text renders x in the given radix with lower-case digits.
func (x nat) text(radix int) string {
	if len(x) == 0 {
		return "0"
	}
	b := uint64(radix)

	if b&(b-1) == 0 {
		return x.textPow2(b)
	}

	bb, k := radixChunk(b)

	// Chunks come out least significant first.
	var chunks []uint64
	q := x
	for len(q) > 0 {
		var r uint64
		q, r = q.divWord(bb)
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * k)
	buf := make([]byte, k)
	for i := len(chunks) - 1; i >= 0; i-- {
		c := chunks[i]
		for j := k - 1; j >= 0; j-- {
			buf[j] = digits[c%b]
			c /= b
		}
		if i == len(chunks)-1 {
			// The most significant chunk carries no leading zeros.
			j := 0
			for j < k-1 && buf[j] == '0' {
				j++
			}
			sb.Write(buf[j:])
			continue
		}
		sb.Write(buf)
	}
	return sb.String()
}

// textPow2 handles radices 2, 4, 8, 16 and 32 by reading bit groups.
func (x nat) textPow2(b uint64) string {
	shift := uint(0)
	for uint64(1)<<shift < b {
		shift++
	}
	n := (x.bitLen() + int(shift) - 1) / int(shift)
	buf := make([]byte, n)
	mask := b - 1
	for i := 0; i < n; i++ {
		pos := uint(i) * shift
		var d uint64
		for j := uint(0); j < shift; j++ {
			d |= uint64(x.bit(pos+j)) << j
		}
		buf[n-1-i] = digits[d&mask]
	}
	return string(buf)
}
