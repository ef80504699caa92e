package common

import (
	"context"
	"time"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/minvws/bigprime/big"
)

// InMemoryStorage buffers primes of a single shape. A background goroutine
// keeps the buffer full until the context passed to NewInMemoryStorage ends.
type InMemoryStorage struct {
	primes    chan *big.Int // Buffer with our new primes
	bits      int           // Bit length of generated primes
	certainty int
}

// NewInMemoryStorage starts filling a buffer of size primes with gen.
func NewInMemoryStorage(ctx context.Context, size, bits, certainty int, gen GenerateFunc) *InMemoryStorage {
	s := &InMemoryStorage{
		primes:    make(chan *big.Int, size),
		bits:      bits,
		certainty: certainty,
	}

	// Separate goroutine to fill buffer. It blocks while the buffer is full.
	go func() {
		for {
			p, err := gen(ctx, bits, certainty)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				Logger.WithError(err).Warn("storage: generating prime for buffer failed")
				select {
				case <-time.After(time.Second):
					continue
				case <-ctx.Done():
					return
				}
			}

			select {
			case s.primes <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	return s
}

// Fetch a new prime directly from our in-memory buffer
func (s *InMemoryStorage) Fetch(bits, certainty int) (*big.Int, error) {
	if err := s.check(bits, certainty); err != nil {
		return nil, err
	}

	select {
	case p := <-s.primes:
		return p, nil
	default:
		Logger.WithFields(logrus.Fields{
			"size": cap(s.primes),
			"bits": bits,
		}).Warn("storage: the buffer has depleted")
		return nil, emptyError(bits, certainty)
	}
}

// Store adds p to the buffer if there is room; a full buffer drops it.
func (s *InMemoryStorage) Store(bits, certainty int, p *big.Int) error {
	if err := s.check(bits, certainty); err != nil {
		return err
	}
	select {
	case s.primes <- p:
	default:
	}
	return nil
}

func (s *InMemoryStorage) Count(bits, certainty int) (int, error) {
	if bits != s.bits || certainty != s.certainty {
		return 0, nil
	}
	return len(s.primes), nil
}

func (s *InMemoryStorage) check(bits, certainty int) error {
	if bits != s.bits || certainty != s.certainty {
		return errors.WrapPrefix(big.ErrInvalidArgument, "storage: buffer holds a different prime shape", 1)
	}
	return nil
}
