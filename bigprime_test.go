package bigprime

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

func mustParse(t *testing.T, s string, radix int) *big.Int {
	t.Helper()
	v, err := ParseBigInt(s, radix)
	require.NoError(t, err)
	return v
}

func TestParseFormat(t *testing.T) {
	v := mustParse(t, "-ff", 16)
	assert.Equal(t, int64(-255), v.Int64())

	s, err := FormatBigInt(v, 16)
	require.NoError(t, err)
	assert.Equal(t, "-ff", s)

	s, err = FormatBigInt(v, 10)
	require.NoError(t, err)
	assert.Equal(t, "-255", s)

	s, err = FormatBigInt(mustParse(t, "0", 2), 36)
	require.NoError(t, err)
	assert.Equal(t, "0", s)

	_, err = ParseBigInt("12g", 16)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = ParseBigInt("", 10)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = ParseBigInt("10", 37)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	for _, radix := range []int{0, 1, 37} {
		_, err = FormatBigInt(v, radix)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "radix %d", radix)
	}
}

func TestArithmetic(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890", 10)
	b := mustParse(t, "-987654321", 10)

	assert.Equal(t, 0, Sub(Add(a, b), b).Cmp(a))
	assert.Equal(t, "-121932631124828532112482853211126352690", Mul(a, b).String())

	q, err := Div(big.NewInt(-7), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), q.Int64())

	r, err := Mod(big.NewInt(-7), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), r.Int64())

	assert.Equal(t, int64(6), GCD(big.NewInt(-12), big.NewInt(18)).Int64())
	assert.Equal(t, 0, GCD(big.NewInt(0), big.NewInt(0)).Sign())
}

func TestDivisionByZero(t *testing.T) {
	_, err := Div(big.NewInt(5), big.NewInt(0))
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = Mod(big.NewInt(5), big.NewInt(0))
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = ModPow(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestModPow(t *testing.T) {
	v, err := ModPow(big.NewInt(7), big.NewInt(5), big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, int64(11), v.Int64())

	v, err = ModPow(big.NewInt(-2), big.NewInt(3), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int64())

	v, err = ModPow(big.NewInt(4), big.NewInt(0), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	_, err = ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(5))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRandomBigInt(t *testing.T) {
	src := NewSecureRandomSource()
	for _, n := range []int{1, 8, 64, 65, 521} {
		v, err := RandomBigInt(n, src)
		require.NoError(t, err)
		assert.Equal(t, n, v.BitLen())
	}

	_, err := RandomBigInt(0, src)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	a, err := RandomBigInt(128, random.NewSeeded([]byte("facade")))
	require.NoError(t, err)
	b, err := RandomBigInt(128, random.NewSeeded([]byte("facade")))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
}

func TestRandomPrime(t *testing.T) {
	src := NewSecureRandomSource()
	p, err := RandomPrime(16, 20, src)
	require.NoError(t, err)
	assert.Equal(t, 16, p.BitLen())
	assert.True(t, p.Bit(0) == 1)

	ok, err := prime.ProbablyPrime(p, 40, src)
	require.NoError(t, err)
	assert.True(t, ok, p.String())

	_, err = RandomPrime(1, 20, src)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = RandomPrime(16, 0, src)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRandomPrimeContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RandomPrimeContext(ctx, 1024, 40, NewSecureRandomSource())
	assert.True(t, errors.Is(err, ErrCancelled))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestRandomPrimeEntropyFailure(t *testing.T) {
	_, err := RandomPrime(64, 20, random.NewSecure(random.WithEntropy(failingReader{})))
	assert.True(t, errors.Is(err, ErrEntropyUnavailable))
}

func TestSetLogger(t *testing.T) {
	previous := common.Logger
	defer SetLogger(previous)

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)

	_, err := RandomPrime(32, 20, NewSecureRandomSource())
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
