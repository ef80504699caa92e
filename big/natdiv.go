package big

import (
	"math/bits"
)

// divmod returns q = u / v and r = u % v with r < v. v must not be zero.
func (u nat) divmod(v nat) (q, r nat) {
	if len(v) == 0 {
		panic("big: division by zero magnitude")
	}
	if u.cmp(v) < 0 {
		return nil, u.clone()
	}
	if len(v) == 1 {
		q, rw := u.divWord(v[0])
		return q, natFromUint64(rw)
	}
	return u.divLarge(v)
}

// divWord divides x by the single limb d.
func (x nat) divWord(d uint64) (q nat, r uint64) {
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return q.norm(), r
}

// modWord returns x mod d.
func (x nat) modWord(d uint64) uint64 {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		_, r = bits.Div64(r, x[i], d)
	}
	return r
}

// divLarge implements Knuth, TAOCP vol. 2, 4.3.1, Algorithm D for
// len(v) >= 2 and u >= v.
func (u nat) divLarge(v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so the top limb of the divisor has its high bit set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	vn := v.shl(s)
	un := make(nat, len(u)+1)
	copy(un, u.shl(s))

	vtop, vnext := vn[n-1], vn[n-2]
	q = make(nat, m+1)

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two limbs, then correct it with
		// the next divisor limb so it is at most one too large.
		qhat := ^uint64(0)
		if ujn := un[j+n]; ujn != vtop {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vtop)
			for {
				hi, lo := bits.Mul64(qhat, vnext)
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
			}
		}

		// D4: un[j:j+n+1] -= qhat * vn
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			carry = hi + c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
		}
		un[j+n], borrow = bits.Sub64(un[j+n], carry, borrow)

		// D6: add back on overshoot.
		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				un[j+i], c = bits.Add64(un[j+i], vn[i], c)
			}
			un[j+n] += c
		}
		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	r = un[:n].norm().shr(s)
	return q.norm(), r
}
