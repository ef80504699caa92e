package common

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minvws/bigprime/big"
)

func counterGen() (GenerateFunc, *int64) {
	var n int64
	return func(ctx context.Context, bits, certainty int) (*big.Int, error) {
		return big.NewInt(atomic.AddInt64(&n, 1)), nil
	}, &n
}

func TestBoltStorage(t *testing.T) {
	s, err := OpenBoltStorage(filepath.Join(t.TempDir(), BoltDBFile))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Fetch(64, 20)
	assert.True(t, errors.Is(err, ErrStorageEmpty))

	p, err := big.Parse("18446744073709551557", 10)
	require.NoError(t, err)
	q := big.NewInt(65537)

	require.NoError(t, s.Store(64, 20, p))
	require.NoError(t, s.Store(64, 20, p)) // duplicate collapses
	require.NoError(t, s.Store(17, 20, q))

	n, err := s.Count(64, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Fetch(64, 20)
	require.NoError(t, err)
	assert.Equal(t, p.String(), got.String())

	_, err = s.Fetch(64, 20)
	assert.True(t, errors.Is(err, ErrStorageEmpty))

	n, err = s.Count(17, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.Count(17, 40)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBoltStoragePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), BoltDBFile)
	s, err := OpenBoltStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Store(16, 10, big.NewInt(65521)))
	require.NoError(t, s.Close())

	s, err = OpenBoltStorage(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Fetch(16, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(65521), got.Int64())
}

func TestInMemoryStorageFills(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, _ := counterGen()
	s := NewInMemoryStorage(ctx, 4, 16, 20, gen)

	require.Eventually(t, func() bool {
		n, _ := s.Count(16, 20)
		return n == 4
	}, 2*time.Second, 5*time.Millisecond)

	p, err := s.Fetch(16, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Int64())

	_, err = s.Fetch(32, 20)
	assert.True(t, errors.Is(err, big.ErrInvalidArgument))
}

func TestInMemoryStorageDepleted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := func(ctx context.Context, bits, certainty int) (*big.Int, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	s := NewInMemoryStorage(ctx, 2, 16, 20, gen)

	_, err := s.Fetch(16, 20)
	assert.True(t, errors.Is(err, ErrStorageEmpty))

	require.NoError(t, s.Store(16, 20, big.NewInt(65521)))
	p, err := s.Fetch(16, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(65521), p.Int64())
}

func TestInMemoryStorageStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen, calls := counterGen()
	s := NewInMemoryStorage(ctx, 1, 16, 20, gen)

	require.Eventually(t, func() bool {
		n, _ := s.Count(16, 20)
		return n == 1
	}, 2*time.Second, 5*time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	// The filler has exited, so draining the buffer triggers no more calls.
	before := atomic.LoadInt64(calls)
	_, err := s.Fetch(16, 20)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, atomic.LoadInt64(calls))
}

func TestGeneratorStorage(t *testing.T) {
	gen, _ := counterGen()
	s := NewGeneratorStorage(gen)
	for want := int64(1); want <= 3; want++ {
		p, err := s.Fetch(16, 20)
		require.NoError(t, err)
		assert.Equal(t, want, p.Int64())
	}
	n, err := s.Count(16, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

var (
	_ PrimeStorage = (*BoltStorage)(nil)
	_ PrimeStorage = (*InMemoryStorage)(nil)
	_ PrimeStorage = (*GeneratorStorage)(nil)
)
