// Package random provides the byte sources consumed by the prime generator.
//
// There are two deliberately distinct source types. Secure is keyed from the
// operating system's entropy source and is the only type accepted where
// security matters. Seeded produces a reproducible stream from a fixed seed
// and exists for tests and reproducible experiments; its output must never be
// treated as secret.
package random

import (
	cryptorand "crypto/rand"
	"io"

	"github.com/go-errors/errors"
)

// ErrEntropyUnavailable is returned when the entropy source cannot be read.
// It is fatal: a Secure source that returned it keeps returning it.
var ErrEntropyUnavailable = errors.Errorf("random: entropy source unavailable")

// Source is the capability shared by Secure and Seeded: a stream of random
// bytes.
type Source interface {
	io.Reader
	// NextBytes returns n fresh random bytes.
	NextBytes(n int) ([]byte, error)
	// Consumed reports how many bytes have been drawn so far.
	Consumed() uint64
}

// Secure is a cryptographically secure source. It is safe for concurrent use.
type Secure struct {
	gen      *generator
	entropy  io.Reader
	interval uint64
}

// Option configures a Secure source.
type Option func(*Secure)

// WithEntropy replaces the operating system entropy reader. A nil reader
// leaves the default in place.
func WithEntropy(r io.Reader) Option {
	return func(s *Secure) {
		if r != nil {
			s.entropy = r
		}
	}
}

// WithReseedInterval sets how many output bytes are produced before fresh
// entropy is mixed into a new key.
func WithReseedInterval(n uint64) Option {
	return func(s *Secure) {
		s.interval = n
	}
}

// NewSecure returns a Secure source. The entropy source is first read on the
// first draw, so construction cannot fail.
func NewSecure(opts ...Option) *Secure {
	s := &Secure{entropy: cryptorand.Reader, interval: DefaultReseedInterval}
	for _, opt := range opts {
		opt(s)
	}
	s.gen = newGenerator("secure", s.interval, s.rekey)
	return s
}

// rekey mixes 32 fresh entropy bytes with the carried keystream block.
func (s *Secure) rekey(carry []byte) ([32]byte, error) {
	fresh := make([]byte, 32)
	if _, err := io.ReadFull(s.entropy, fresh); err != nil {
		return [32]byte{}, errors.WrapPrefix(ErrEntropyUnavailable, err.Error(), 0)
	}
	return hashKey(carry, fresh), nil
}

func (s *Secure) Read(p []byte) (int, error) {
	if err := s.gen.read(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Secure) NextBytes(n int) ([]byte, error) {
	return s.gen.nextBytes(n)
}

func (s *Secure) Consumed() uint64 {
	return s.gen.consumedBytes()
}

// Seeded is a deterministic source: equal seeds give equal streams in every
// process. It is not secure and is not accepted by prime.RandomPrime.
type Seeded struct {
	gen *generator
}

// NewSeeded returns a reproducible source derived from seed.
func NewSeeded(seed []byte) *Seeded {
	seed = append([]byte(nil), seed...)
	first := true
	return &Seeded{gen: newGenerator("seeded", DefaultReseedInterval, func(carry []byte) ([32]byte, error) {
		if first {
			first = false
			return hashKey([]byte("bigprime seeded source"), seed), nil
		}
		return hashKey(carry), nil
	})}
}

func (s *Seeded) Read(p []byte) (int, error) {
	if err := s.gen.read(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Seeded) NextBytes(n int) ([]byte, error) {
	return s.gen.nextBytes(n)
}

func (s *Seeded) Consumed() uint64 {
	return s.gen.consumedBytes()
}
