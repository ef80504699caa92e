package big

import (
	stdbig "math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randNat(r *rand.Rand, limbs int) nat {
	z := make(nat, limbs)
	for i := range z {
		z[i] = r.Uint64()
	}
	return z.norm()
}

func toStd(x nat) *stdbig.Int {
	return new(stdbig.Int).SetBytes(x.bytes())
}

func requireNatEqual(t *testing.T, want *stdbig.Int, got nat) {
	t.Helper()
	require.Equal(t, want.Text(16), got.text(16))
}

func TestNatNorm(t *testing.T) {
	assert.Len(t, nat{1, 0, 0}.norm(), 1)
	assert.Len(t, nat{0, 0}.norm(), 0)
	assert.True(t, nat(nil).norm().isZero())
}

func TestNatCmp(t *testing.T) {
	assert.Equal(t, 0, nat(nil).cmp(nil))
	assert.Equal(t, -1, nat(nil).cmp(nat{1}))
	assert.Equal(t, 1, nat{0, 1}.cmp(nat{^uint64(0)}))
	assert.Equal(t, -1, nat{5, 1}.cmp(nat{6, 1}))
	assert.Equal(t, 0, nat{5, 1}.cmp(nat{5, 1}))
}

func TestNatAddSubCarry(t *testing.T) {
	top := nat{^uint64(0), ^uint64(0)}
	sum := top.add(natOne)
	assert.Equal(t, nat{0, 0, 1}, sum)
	assert.Equal(t, top, sum.sub(natOne))
	assert.True(t, sum.sub(sum).isZero())

	assert.Panics(t, func() { natOne.sub(nat{2}) })
	assert.Panics(t, func() { natOne.sub(nat{0, 1}) })
}

func TestNatShifts(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, s := range []uint{0, 1, 13, 63, 64, 65, 200} {
		x := randNat(r, 5)
		requireNatEqual(t, new(stdbig.Int).Lsh(toStd(x), s), x.shl(s))
		requireNatEqual(t, new(stdbig.Int).Rsh(toStd(x), s), x.shr(s))
	}
	assert.True(t, nat{1}.shr(64).isZero())
	assert.True(t, nat(nil).shl(10).isZero())
}

func TestNatMulMatchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, sizes := range [][2]int{{1, 1}, {3, 7}, {39, 40}, {40, 40}, {64, 90}, {130, 45}, {41, 2}} {
		x, y := randNat(r, sizes[0]), randNat(r, sizes[1])
		want := new(stdbig.Int).Mul(toStd(x), toStd(y))
		requireNatEqual(t, want, x.mul(y))
	}
}

func TestKaratsubaAgreesWithSchoolbook(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	x, y := randNat(r, 3*karatsubaThreshold), randNat(r, 2*karatsubaThreshold+3)
	require.Equal(t, 0, karatsuba(x, y).cmp(mulBasic(x, y)))
}

func TestNatDivmod(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, sizes := range [][2]int{{1, 1}, {5, 1}, {5, 2}, {8, 3}, {20, 19}, {40, 20}, {3, 6}} {
		u, v := randNat(r, sizes[0]), randNat(r, sizes[1])
		q, rem := u.divmod(v)

		wq, wr := new(stdbig.Int).QuoRem(toStd(u), toStd(v), new(stdbig.Int))
		requireNatEqual(t, wq, q)
		requireNatEqual(t, wr, rem)
		require.Equal(t, -1, rem.cmp(v))
	}
}

func TestNatDivmodAddBack(t *testing.T) {
	// Divisor with a top limb of all ones and a dividend whose leading limbs
	// match it exercises the qhat = B-1 path and the add-back step.
	v := nat{1, ^uint64(0)}
	u := nat{0, 0, ^uint64(0) - 1, ^uint64(0)}
	q, rem := u.divmod(v)

	wq, wr := new(stdbig.Int).QuoRem(toStd(u), toStd(v), new(stdbig.Int))
	requireNatEqual(t, wq, q)
	requireNatEqual(t, wr, rem)
}

func TestNatDivmodByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { natOne.divmod(nil) })
}

func TestNatBytesRoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	x := natFromBytes(buf)
	assert.Equal(t, 65, x.bitLen())
	assert.Equal(t, buf, x.bytes())
	assert.Empty(t, nat(nil).bytes())
	assert.True(t, natFromBytes([]byte{0, 0}).isZero())
}

func TestNatText(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	x := randNat(r, 6)
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		s := x.text(radix)
		require.Equal(t, toStd(x).Text(radix), s, "radix %d", radix)

		back, bad := scanDigits(s, radix)
		require.Equal(t, -1, bad)
		require.Equal(t, 0, back.cmp(x), "radix %d", radix)
	}
	assert.Equal(t, "0", nat(nil).text(7))
}

func TestNatBits(t *testing.T) {
	x := nat(nil).setBit(130, 1)
	assert.Equal(t, 131, x.bitLen())
	assert.Equal(t, uint(1), x.bit(130))
	assert.Equal(t, uint(0), x.bit(129))
	assert.Equal(t, uint(130), x.trailingZeroBits())
	assert.True(t, x.setBit(130, 0).isZero())
}

func TestNatPow(t *testing.T) {
	x := nat{3}
	requireNatEqual(t, new(stdbig.Int).Exp(stdbig.NewInt(3), stdbig.NewInt(100), nil), x.pow(100))
	assert.Equal(t, 0, x.pow(0).cmp(natOne))
}
